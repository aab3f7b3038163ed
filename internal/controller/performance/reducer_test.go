package performance

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/controller"
	"github.com/riskibarqy/courtside/internal/domain/monitoring"
)

var at = time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

func snapshot() Snapshot {
	return Snapshot{
		Models: []monitoring.ModelInfo{{Name: "game_logistic", Version: "v1"}, {Name: "game_xgboost", Version: "v1"}},
		Performance: []monitoring.ModelPerformance{
			{Model: "game_logistic", Accuracy: 0.64, F1: 0.6},
			{Model: "game_xgboost", Accuracy: 0.68, F1: 0.7},
			{Model: "game_random_forest", Accuracy: 0.66, F1: 0.65},
		},
		Drift: monitoring.DriftStatus{DriftDetected: true, Score: 0.31, Threshold: 0.25},
		Alerts: []monitoring.Alert{
			{ID: "a1", Severity: monitoring.SeverityWarning, CreatedAt: at.Add(-time.Hour)},
			{ID: "a2", Severity: monitoring.SeverityCritical, CreatedAt: at.Add(-2 * time.Hour)},
			{ID: "a3", Severity: monitoring.SeverityCritical, CreatedAt: at.Add(-3 * time.Hour), Resolved: true},
			{ID: "a4", Severity: monitoring.SeverityWarning, CreatedAt: at},
		},
	}
}

func mustReduce(t *testing.T, s State, a Action) State {
	t.Helper()
	next, err := Reduce(s, a)
	if err != nil {
		t.Fatalf("reduce %T: %v", a, err)
	}
	return next
}

func TestReduce_FetchLifecycle(t *testing.T) {
	s := mustReduce(t, Initial(), FetchStart{})
	if !s.Loading {
		t.Fatalf("expected loading")
	}
	s = mustReduce(t, s, FetchSuccess{Seq: s.Seq, Snapshot: snapshot(), At: at})
	if s.Loading || s.Snapshot == nil || len(s.Snapshot.Performance) != 3 || !s.FetchedAt.Equal(at) {
		t.Fatalf("unexpected state %+v", s)
	}

	s = mustReduce(t, s, FetchStart{})
	if s.Snapshot == nil {
		t.Fatalf("previous snapshot should stay visible while refreshing")
	}
	s = mustReduce(t, s, FetchError{Seq: s.Seq, Message: "drift endpoint failed"})
	if s.Loading || s.Error != "drift endpoint failed" {
		t.Fatalf("unexpected state %+v", s)
	}
}

func TestReduce_StaleFetchIgnored(t *testing.T) {
	s := mustReduce(t, Initial(), FetchStart{})
	stale := s.Seq
	s = mustReduce(t, s, FetchStart{})
	s = mustReduce(t, s, FetchError{Seq: stale, Message: "old"})
	if !s.Loading || s.Error != "" {
		t.Fatalf("stale error applied: %+v", s)
	}
}

func TestReduce_AlertWindow(t *testing.T) {
	s := mustReduce(t, Initial(), SetAlertWindow{Hours: 72})
	if s.AlertHours != 72 {
		t.Fatalf("expected 72, got %d", s.AlertHours)
	}
	if _, err := Reduce(s, SetAlertWindow{Hours: 0}); !errors.Is(err, controller.ErrRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	s := mustReduce(t, Initial(), FetchStart{})
	s = mustReduce(t, s, FetchSuccess{Seq: s.Seq, Snapshot: snapshot(), At: at})

	sum := Summarize(s)
	if sum.BestModel != "game_xgboost" || sum.BestAccuracy != 0.68 {
		t.Fatalf("unexpected best model %+v", sum)
	}
	if math.Abs(sum.MeanAccuracy-0.66) > 1e-9 || math.Abs(sum.MeanF1-0.65) > 1e-9 {
		t.Fatalf("unexpected means %+v", sum)
	}
	if sum.ActiveAlerts != 3 || sum.CriticalAlerts != 1 || !sum.DriftDetected {
		t.Fatalf("unexpected alert summary %+v", sum)
	}

	if got := Summarize(Initial()); got != (Summary{}) {
		t.Fatalf("expected zero summary before first fetch, got %+v", got)
	}
}

func TestAlertsBySeverity(t *testing.T) {
	s := mustReduce(t, Initial(), FetchStart{})
	s = mustReduce(t, s, FetchSuccess{Seq: s.Seq, Snapshot: snapshot(), At: at})

	got := AlertsBySeverity(s)
	want := []string{"a2", "a4", "a1"}
	if len(got) != len(want) {
		t.Fatalf("expected %d alerts, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}
