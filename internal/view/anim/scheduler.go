package anim

import (
	"sort"
	"sync"
	"time"
)

// FrameID identifies a pending frame callback. The zero value is never issued.
type FrameID uint64

// Scheduler calls back roughly once per display refresh. Pending callbacks can be cancelled.
type Scheduler interface {
	RequestFrame(cb func(now time.Time)) FrameID
	CancelFrame(id FrameID)
	Now() time.Time
}

type frameQueue struct {
	mu      sync.Mutex
	nextID  FrameID
	pending map[FrameID]func(time.Time)
}

func (q *frameQueue) add(cb func(time.Time)) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pending == nil {
		q.pending = make(map[FrameID]func(time.Time))
	}
	q.nextID++
	q.pending[q.nextID] = cb
	return q.nextID
}

func (q *frameQueue) cancel(id FrameID) {
	q.mu.Lock()
	delete(q.pending, id)
	q.mu.Unlock()
}

// drain removes every pending callback and returns them in request order.
func (q *frameQueue) drain() []func(time.Time) {
	q.mu.Lock()
	ids := make([]FrameID, 0, len(q.pending))
	for id := range q.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]func(time.Time), 0, len(ids))
	for _, id := range ids {
		out = append(out, q.pending[id])
		delete(q.pending, id)
	}
	q.mu.Unlock()
	return out
}

func (q *frameQueue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// ManualScheduler is driven by an explicit clock. Each Advance runs the callbacks that were
// pending when it was called; callbacks they request wait for the next Advance.
type ManualScheduler struct {
	queue frameQueue
	mu    sync.Mutex
	now   time.Time
}

func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

func (s *ManualScheduler) RequestFrame(cb func(now time.Time)) FrameID {
	return s.queue.add(cb)
}

func (s *ManualScheduler) CancelFrame(id FrameID) {
	s.queue.cancel(id)
}

func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Advance moves the clock forward by d and runs one frame.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now = s.now.Add(d)
	now := s.now
	s.mu.Unlock()

	for _, cb := range s.queue.drain() {
		cb(now)
	}
}

func (s *ManualScheduler) Pending() int {
	return s.queue.size()
}

// TickerScheduler runs pending callbacks from a single goroutine at a fixed interval.
type TickerScheduler struct {
	queue    frameQueue
	interval time.Duration
	done     chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	s := &TickerScheduler{interval: interval, done: make(chan struct{})}
	s.wg.Add(1)
	go s.loop()
	return s
}

func (s *TickerScheduler) loop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			for _, cb := range s.queue.drain() {
				cb(now)
			}
		}
	}
}

func (s *TickerScheduler) RequestFrame(cb func(now time.Time)) FrameID {
	return s.queue.add(cb)
}

func (s *TickerScheduler) CancelFrame(id FrameID) {
	s.queue.cancel(id)
}

func (s *TickerScheduler) Now() time.Time {
	return time.Now()
}

// Close stops the frame loop. Pending callbacks are dropped.
func (s *TickerScheduler) Close() {
	s.once.Do(func() { close(s.done) })
	s.wg.Wait()
}
