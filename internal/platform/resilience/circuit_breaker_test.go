package resilience

import (
	"errors"
	"testing"
	"time"
)

func newTestBreaker(now *time.Time) *CircuitBreaker {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   1,
	})
	b.now = func() time.Time { return *now }
	return b
}

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second probe to be rejected, got %v", err)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_DoSkipsNonCircuitFailures(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)
	errBadRequest := errors.New("bad request")

	onlyTransient := func(err error) bool { return !errors.Is(err, errBadRequest) }
	for i := 0; i < 5; i++ {
		if err := b.Do(func() error { return errBadRequest }, onlyTransient); !errors.Is(err, errBadRequest) {
			t.Fatalf("expected passthrough error, got %v", err)
		}
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("client errors must not open the breaker, got %s", state)
	}

	transient := errors.New("503")
	_ = b.Do(func() error { return transient }, onlyTransient)
	_ = b.Do(func() error { return transient }, onlyTransient)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after transient failures, got %s", state)
	}

	called := false
	err := b.Do(func() error { called = true; return nil }, nil)
	if !errors.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("expected short-circuit, err=%v called=%v", err, called)
	}
}

func TestCircuitBreaker_DisabledAlwaysRuns(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 3; i++ {
		_ = b.Do(func() error { return errors.New("x") }, nil)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("disabled breaker should stay closed, got %s", state)
	}
}
