package gauge

import (
	"sync"
	"time"

	"github.com/riskibarqy/courtside/internal/view/anim"
)

// Animator drives the gauge from an animated home probability so the needle sweeps instead of
// jumping to each new prediction.
type Animator struct {
	geometry Geometry
	counter  *anim.Counter

	mu      sync.Mutex
	onFrame func(Layout)
}

func NewAnimator(sched anim.Scheduler, duration time.Duration, g Geometry) *Animator {
	a := &Animator{geometry: g}
	a.counter = anim.NewCounter(sched, anim.CounterOptions{
		Duration: duration,
		Decimals: 4,
		OnFrame:  a.handleFrame,
	})
	return a
}

// OnFrame registers a listener that receives the layout after every animation step.
func (a *Animator) OnFrame(fn func(Layout)) {
	a.mu.Lock()
	a.onFrame = fn
	a.mu.Unlock()
}

// SetProbability retargets the needle to the raw home win probability p.
func (a *Animator) SetProbability(p float64) {
	a.counter.SetTarget(clamp01(p))
}

// Layout is the gauge at the currently animated probability.
func (a *Animator) Layout() Layout {
	return Compute(a.counter.Value(), a.geometry)
}

func (a *Animator) AnimatedHome() float64 {
	return a.counter.Value()
}

func (a *Animator) Animating() bool {
	return a.counter.Animating()
}

func (a *Animator) Geometry() Geometry {
	return a.geometry
}

func (a *Animator) Stop() {
	a.counter.Stop()
}

func (a *Animator) handleFrame(f anim.Frame) {
	a.mu.Lock()
	fn := a.onFrame
	a.mu.Unlock()
	if fn != nil {
		fn(Compute(f.Value, a.geometry))
	}
}
