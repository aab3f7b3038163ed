package prediction

import (
	"fmt"
	"math"
	"time"
)

// Outcome names the predicted winner side.
type Outcome string

const (
	OutcomeHome Outcome = "home"
	OutcomeAway Outcome = "away"
)

// ProbabilityTolerance bounds how far home+away may drift from 1.
const ProbabilityTolerance = 0.02

// Result is a single model prediction for a matchup.
type Result struct {
	Prediction         Outcome
	Confidence         float64
	HomeWinProbability float64
	AwayWinProbability float64
	HomeTeam           string
	AwayTeam           string
	ModelUsed          string
	Timestamp          time.Time
}

func (r Result) Validate() error {
	if r.Prediction != OutcomeHome && r.Prediction != OutcomeAway {
		return fmt.Errorf("invalid prediction outcome: %q", r.Prediction)
	}
	for name, v := range map[string]float64{
		"confidence":           r.Confidence,
		"home win probability": r.HomeWinProbability,
		"away win probability": r.AwayWinProbability,
	} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%s out of range: %v", name, v)
		}
	}
	if math.Abs(r.HomeWinProbability+r.AwayWinProbability-1) > ProbabilityTolerance {
		return fmt.Errorf("win probabilities do not sum to 1: %v + %v", r.HomeWinProbability, r.AwayWinProbability)
	}
	return nil
}

// Winner returns the abbreviation of the predicted winning team.
func (r Result) Winner() string {
	if r.Prediction == OutcomeHome {
		return r.HomeTeam
	}
	return r.AwayTeam
}

// ModelComparison pairs a model name with its prediction for the same matchup.
type ModelComparison struct {
	Model  string
	Result Result
}

// HistoryEntry is an immutable record of a prediction made during a session.
type HistoryEntry struct {
	Result    Result
	HomeTeam  string
	AwayTeam  string
	Timestamp time.Time
}
