package performance

import (
	"fmt"
	"slices"

	"github.com/riskibarqy/courtside/internal/controller"
	"github.com/riskibarqy/courtside/internal/domain/monitoring"
	"gonum.org/v1/gonum/stat"
)

func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case FetchStart:
		s.Loading = true
		s.Error = ""
		s.Seq++
		return s, nil

	case FetchSuccess:
		if !s.Loading || a.Seq != s.Seq {
			return s, nil
		}
		snap := Snapshot{
			Models:      slices.Clone(a.Snapshot.Models),
			Performance: slices.Clone(a.Snapshot.Performance),
			Drift:       a.Snapshot.Drift,
			Alerts:      slices.Clone(a.Snapshot.Alerts),
		}
		snap.Drift.Features = slices.Clone(a.Snapshot.Drift.Features)
		s.Loading = false
		s.Snapshot = &snap
		s.FetchedAt = a.At
		return s, nil

	case FetchError:
		if !s.Loading || a.Seq != s.Seq {
			return s, nil
		}
		s.Loading = false
		s.Error = a.Message
		return s, nil

	case SetAlertWindow:
		if a.Hours < 1 || a.Hours > MaxAlertHours {
			return s, ErrInvalidAlertWindow
		}
		s.AlertHours = a.Hours
		return s, nil

	default:
		return s, fmt.Errorf("%w: %T", controller.ErrUnknownAction, a)
	}
}

// Summary is the headline row above the performance charts.
type Summary struct {
	BestModel      string
	BestAccuracy   float64
	MeanAccuracy   float64
	MeanF1         float64
	ActiveAlerts   int
	CriticalAlerts int
	DriftDetected  bool
}

func Summarize(s State) Summary {
	if s.Snapshot == nil {
		return Summary{}
	}

	var sum Summary
	accuracy := make([]float64, 0, len(s.Snapshot.Performance))
	f1 := make([]float64, 0, len(s.Snapshot.Performance))
	for _, p := range s.Snapshot.Performance {
		accuracy = append(accuracy, p.Accuracy)
		f1 = append(f1, p.F1)
		if sum.BestModel == "" || p.Accuracy > sum.BestAccuracy {
			sum.BestModel = p.Model
			sum.BestAccuracy = p.Accuracy
		}
	}
	if len(accuracy) > 0 {
		sum.MeanAccuracy = stat.Mean(accuracy, nil)
		sum.MeanF1 = stat.Mean(f1, nil)
	}

	for _, alert := range s.Snapshot.Alerts {
		if alert.Resolved {
			continue
		}
		sum.ActiveAlerts++
		if alert.Severity == monitoring.SeverityCritical {
			sum.CriticalAlerts++
		}
	}
	sum.DriftDetected = s.Snapshot.Drift.DriftDetected
	return sum
}

// AlertsBySeverity orders unresolved alerts most severe first, newest first within a severity.
func AlertsBySeverity(s State) []monitoring.Alert {
	if s.Snapshot == nil {
		return nil
	}
	out := make([]monitoring.Alert, 0, len(s.Snapshot.Alerts))
	for _, a := range s.Snapshot.Alerts {
		if !a.Resolved {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b monitoring.Alert) int {
		if a.Severity.Rank() != b.Severity.Rank() {
			return b.Severity.Rank() - a.Severity.Rank()
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}
