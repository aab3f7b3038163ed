package usecase

import "sync"

// Store owns one page state. Dispatch applies actions one at a time in call order and then
// notifies subscribers in the same order. Subscribers must not dispatch synchronously.
type Store[S any, A any] struct {
	mu       sync.Mutex
	notifyMu sync.Mutex
	state    S
	reduce   func(S, A) (S, error)
	subs     map[int]func(S)
	nextSub  int
}

func NewStore[S any, A any](initial S, reduce func(S, A) (S, error)) *Store[S, A] {
	return &Store[S, A]{
		state:  initial,
		reduce: reduce,
		subs:   make(map[int]func(S)),
	}
}

// Dispatch returns the resulting state. A rejected action leaves the state untouched, returns
// the error and notifies nobody.
func (s *Store[S, A]) Dispatch(a A) (S, error) {
	s.mu.Lock()
	next, err := s.reduce(s.state, a)
	if err != nil {
		current := s.state
		s.mu.Unlock()
		return current, err
	}
	s.state = next
	subs := make([]func(S), 0, len(s.subs))
	for i := 0; i < s.nextSub; i++ {
		if fn, ok := s.subs[i]; ok {
			subs = append(subs, fn)
		}
	}
	// Take the notify lock before releasing the state lock so notifications keep dispatch order.
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next, nil
}

func (s *Store[S, A]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for every applied action and returns a function that removes it.
func (s *Store[S, A]) Subscribe(fn func(S)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
