package anim

import (
	"sync"
	"time"
)

// Frame is the counter state after one animation step.
type Frame struct {
	Value float64
	Text  string
	Done  bool
}

type CounterOptions struct {
	Duration  time.Duration
	Decimals  int
	Prefix    string
	Suffix    string
	Formatter *Formatter
	OnFrame   func(Frame)
}

// Counter animates one displayed number toward its target with an ease-out-cubic curve.
// At most one session runs at a time; a new target restarts from the value currently shown.
type Counter struct {
	mu    sync.Mutex
	sched Scheduler
	opts  CounterOptions

	value   float64
	start   float64
	target  float64
	startAt time.Time
	frame   FrameID
	active  bool
	session uint64
}

func NewCounter(sched Scheduler, opts CounterOptions) *Counter {
	if opts.Formatter == nil {
		f := defaultFormatter
		opts.Formatter = &f
	}
	return &Counter{sched: sched, opts: opts}
}

// SetTarget starts a session from the currently displayed value to v.
func (c *Counter) SetTarget(v float64) {
	c.mu.Lock()
	c.cancelLocked()
	if v == c.value {
		c.target = v
		c.mu.Unlock()
		return
	}

	c.start = c.value
	c.target = v
	if c.opts.Duration <= 0 {
		c.value = v
		frame := c.frameLocked(true)
		c.mu.Unlock()
		c.emit(frame)
		return
	}

	c.startAt = c.sched.Now()
	c.active = true
	c.scheduleLocked()
	c.mu.Unlock()
}

// Stop cancels any pending frame and leaves the display where it is.
func (c *Counter) Stop() {
	c.mu.Lock()
	c.cancelLocked()
	c.mu.Unlock()
}

func (c *Counter) Value() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *Counter) Target() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *Counter) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.textLocked()
}

func (c *Counter) Animating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Counter) scheduleLocked() {
	session := c.session
	c.frame = c.sched.RequestFrame(func(now time.Time) { c.step(session, now) })
}

func (c *Counter) cancelLocked() {
	if c.active {
		c.sched.CancelFrame(c.frame)
	}
	c.active = false
	c.frame = 0
	c.session++
}

func (c *Counter) step(session uint64, now time.Time) {
	c.mu.Lock()
	if !c.active || session != c.session {
		c.mu.Unlock()
		return
	}

	t := Progress(now.Sub(c.startAt), c.opts.Duration)
	c.value = Interpolate(c.start, c.target, t)
	done := t >= 1
	if done {
		c.active = false
		c.frame = 0
	} else {
		c.scheduleLocked()
	}
	frame := c.frameLocked(done)
	c.mu.Unlock()

	c.emit(frame)
}

func (c *Counter) frameLocked(done bool) Frame {
	return Frame{Value: c.value, Text: c.textLocked(), Done: done}
}

func (c *Counter) textLocked() string {
	return c.opts.Formatter.Format(c.value, c.opts.Decimals, c.opts.Prefix, c.opts.Suffix)
}

func (c *Counter) emit(f Frame) {
	if c.opts.OnFrame != nil {
		c.opts.OnFrame(f)
	}
}
