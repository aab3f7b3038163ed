package usecase

import (
	"errors"
	"sync"
	"testing"
)

type counterAction struct{ delta int }

var errNegative = errors.New("negative")

func counterReduce(s int, a counterAction) (int, error) {
	if s+a.delta < 0 {
		return s, errNegative
	}
	return s + a.delta, nil
}

func TestStore_DispatchAppliesInOrderAndNotifies(t *testing.T) {
	store := NewStore(0, counterReduce)
	var seen []int
	unsubscribe := store.Subscribe(func(s int) { seen = append(seen, s) })

	for _, d := range []int{1, 2, 3} {
		if _, err := store.Dispatch(counterAction{delta: d}); err != nil {
			t.Fatalf("dispatch: %v", err)
		}
	}
	if got := store.State(); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
	if len(seen) != 3 || seen[0] != 1 || seen[2] != 6 {
		t.Fatalf("unexpected notifications %v", seen)
	}

	unsubscribe()
	_, _ = store.Dispatch(counterAction{delta: 1})
	if len(seen) != 3 {
		t.Fatalf("unsubscribed listener still notified")
	}
}

func TestStore_RejectedActionKeepsStateAndSkipsSubscribers(t *testing.T) {
	store := NewStore(1, counterReduce)
	notified := false
	store.Subscribe(func(int) { notified = true })

	got, err := store.Dispatch(counterAction{delta: -5})
	if !errors.Is(err, errNegative) {
		t.Fatalf("expected rejection, got %v", err)
	}
	if got != 1 || store.State() != 1 || notified {
		t.Fatalf("rejected action leaked: state=%d notified=%v", store.State(), notified)
	}
}

func TestStore_ConcurrentDispatchIsSerialized(t *testing.T) {
	store := NewStore(0, counterReduce)
	var mu sync.Mutex
	last := 0
	ordered := true
	store.Subscribe(func(s int) {
		mu.Lock()
		if s != last+1 {
			ordered = false
		}
		last = s
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Dispatch(counterAction{delta: 1})
		}()
	}
	wg.Wait()

	if store.State() != 100 {
		t.Fatalf("expected 100, got %d", store.State())
	}
	if !ordered {
		t.Fatalf("notifications delivered out of dispatch order")
	}
}
