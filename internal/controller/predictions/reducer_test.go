package predictions

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/controller"
	"github.com/riskibarqy/courtside/internal/domain/prediction"
)

var at = time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

func mustReduce(t *testing.T, s State, a Action) State {
	t.Helper()
	next, err := Reduce(s, a)
	if err != nil {
		t.Fatalf("reduce %T: %v", a, err)
	}
	return next
}

func bosLal() prediction.Result {
	return prediction.Result{
		Prediction:         prediction.OutcomeHome,
		Confidence:         0.67,
		HomeWinProbability: 0.67,
		AwayWinProbability: 0.33,
		HomeTeam:           "BOS",
		AwayTeam:           "LAL",
	}
}

func TestReduce_SubmitSuccessAppendsHistory(t *testing.T) {
	s := mustReduce(t, Initial(), SetTeams{Home: "BOS", Away: "LAL"})
	s = mustReduce(t, s, Submit{})
	if !s.Loading || s.Prediction != nil || s.Error != "" {
		t.Fatalf("expected predicting state, got %+v", s)
	}

	s = mustReduce(t, s, PredictSuccess{Seq: s.PredictSeq, Result: bosLal(), At: at})
	if s.Loading {
		t.Fatalf("expected loading cleared")
	}
	if s.Prediction == nil || s.Prediction.Confidence != 0.67 {
		t.Fatalf("unexpected prediction %+v", s.Prediction)
	}
	if len(s.History) != 1 {
		t.Fatalf("expected one history entry, got %d", len(s.History))
	}
	entry := s.History[0]
	if entry.HomeTeam != "BOS" || entry.AwayTeam != "LAL" || !entry.Timestamp.Equal(at) {
		t.Fatalf("unexpected history entry %+v", entry)
	}
}

func TestReduce_SubmitRejectsInvalidMatchup(t *testing.T) {
	cases := []struct {
		name    string
		matchup SetTeams
		want    error
	}{
		{name: "same team", matchup: SetTeams{Home: "BOS", Away: "bos"}, want: ErrSameTeam},
		{name: "missing away", matchup: SetTeams{Home: "BOS"}, want: ErrTeamRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustReduce(t, Initial(), tc.matchup)
			for _, a := range []Action{Submit{}, CompareAll{}} {
				next, err := Reduce(s, a)
				if !errors.Is(err, tc.want) || !errors.Is(err, controller.ErrRejected) {
					t.Fatalf("%T: expected %v, got %v", a, tc.want, err)
				}
				if !reflect.DeepEqual(next, s) {
					t.Fatalf("%T: rejected action changed state: %+v", a, next)
				}
			}
		})
	}
}

func TestReduce_PredictErrorKeepsPredictionEmpty(t *testing.T) {
	s := mustReduce(t, Initial(), SetTeams{Home: "MIA", Away: "NYK"})
	s = mustReduce(t, s, Submit{})
	s = mustReduce(t, s, PredictError{Seq: s.PredictSeq, Message: "service unavailable"})

	if s.Loading || s.Error != "service unavailable" || s.Prediction != nil || len(s.History) != 0 {
		t.Fatalf("unexpected state after error: %+v", s)
	}

	s = mustReduce(t, s, Submit{})
	if s.Error != "" {
		t.Fatalf("retry must clear error, got %q", s.Error)
	}
}

func TestReduce_IgnoresStaleCompletions(t *testing.T) {
	s := mustReduce(t, Initial(), SetTeams{Home: "BOS", Away: "LAL"})
	s = mustReduce(t, s, Submit{})
	stale := s.PredictSeq
	s = mustReduce(t, s, SetTeams{Home: "DEN", Away: "PHX"})
	s = mustReduce(t, s, Submit{})

	s = mustReduce(t, s, PredictSuccess{Seq: stale, Result: bosLal(), At: at})
	if !s.Loading || len(s.History) != 0 {
		t.Fatalf("stale success must be ignored, got %+v", s)
	}

	fresh := bosLal()
	fresh.HomeTeam, fresh.AwayTeam = "DEN", "PHX"
	s = mustReduce(t, s, PredictSuccess{Seq: s.PredictSeq, Result: fresh, At: at})
	if len(s.History) != 1 || s.History[0].HomeTeam != "DEN" {
		t.Fatalf("expected fresh result recorded, got %+v", s.History)
	}

	// A duplicate completion after the request settled is ignored too.
	again := mustReduce(t, s, PredictSuccess{Seq: s.PredictSeq, Result: fresh, At: at})
	if len(again.History) != 1 {
		t.Fatalf("settled request must not append twice")
	}
}

func TestReduce_HistoryIsAppendOnly(t *testing.T) {
	s := mustReduce(t, Initial(), SetTeams{Home: "BOS", Away: "LAL"})
	s = mustReduce(t, s, Submit{})
	s = mustReduce(t, s, PredictSuccess{Seq: s.PredictSeq, Result: bosLal(), At: at})
	first := s

	s = mustReduce(t, s, Swap{})
	s = mustReduce(t, s, Submit{})
	s = mustReduce(t, s, PredictSuccess{Seq: s.PredictSeq, Result: bosLal(), At: at.Add(time.Minute)})

	if len(first.History) != 1 || len(s.History) != 2 {
		t.Fatalf("expected 1 and 2 entries, got %d and %d", len(first.History), len(s.History))
	}
	if s.History[1].HomeTeam != "LAL" || s.History[1].AwayTeam != "BOS" {
		t.Fatalf("second entry should reflect swapped matchup, got %+v", s.History[1])
	}
	if !reflect.DeepEqual(first.History[0], s.History[0]) {
		t.Fatalf("earlier entry changed")
	}
}

func TestReduce_CompareAll(t *testing.T) {
	s := mustReduce(t, Initial(), SetTeams{Home: "GSW", Away: "SAC"})
	s = mustReduce(t, s, CompareAll{})
	if !s.Comparing || s.Loading {
		t.Fatalf("expected comparing state, got %+v", s)
	}

	list := []prediction.ModelComparison{{Model: "game_logistic"}, {Model: "game_xgboost"}}
	s = mustReduce(t, s, CompareSuccess{Seq: s.CompareSeq, Comparisons: list})
	if s.Comparing || len(s.Comparisons) != 2 {
		t.Fatalf("unexpected state %+v", s)
	}
	list[0].Model = "mutated"
	if s.Comparisons[0].Model != "game_logistic" {
		t.Fatalf("state must not alias the action payload")
	}

	s = mustReduce(t, s, CompareAll{})
	s = mustReduce(t, s, CompareError{Seq: s.CompareSeq, Message: "timeout"})
	if s.Comparing || s.Error != "timeout" {
		t.Fatalf("unexpected state %+v", s)
	}
	s = mustReduce(t, s, DismissError{})
	if s.Error != "" {
		t.Fatalf("expected error dismissed")
	}
}

func TestReduce_FieldUpdatesDoNotFetch(t *testing.T) {
	s := mustReduce(t, Initial(), SetHome{Team: " bos "})
	s = mustReduce(t, s, SetAway{Team: "lal"})
	if s.Matchup != (Matchup{Home: "BOS", Away: "LAL"}) {
		t.Fatalf("unexpected matchup %+v", s.Matchup)
	}
	if s.Loading || s.Comparing || s.PredictSeq != 0 {
		t.Fatalf("field updates must not start requests")
	}
}

type bogus struct{}

func (bogus) isAction() {}

func TestReduce_UnknownAction(t *testing.T) {
	if _, err := Reduce(Initial(), bogus{}); !errors.Is(err, controller.ErrUnknownAction) {
		t.Fatalf("expected unknown action error, got %v", err)
	}
}
