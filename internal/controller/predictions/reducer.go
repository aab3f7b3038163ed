package predictions

import (
	"fmt"
	"slices"

	"github.com/riskibarqy/courtside/internal/controller"
	"github.com/riskibarqy/courtside/internal/domain/prediction"
	"github.com/riskibarqy/courtside/internal/domain/team"
)

// Reduce applies a to s. A non-nil error means the action was rejected and s is returned as is.
// Completions whose Seq no longer matches the latest request are ignored.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case SetHome:
		s.Matchup.Home = team.Normalize(a.Team)
		return s, nil

	case SetAway:
		s.Matchup.Away = team.Normalize(a.Team)
		return s, nil

	case SetTeams:
		s.Matchup = Matchup{Home: team.Normalize(a.Home), Away: team.Normalize(a.Away)}
		return s, nil

	case Swap:
		s.Matchup = Matchup{Home: s.Matchup.Away, Away: s.Matchup.Home}
		return s, nil

	case Submit:
		if err := s.Matchup.Validate(); err != nil {
			return s, err
		}
		s.Loading = true
		s.Error = ""
		s.Prediction = nil
		s.Requested = s.Matchup
		s.PredictSeq++
		return s, nil

	case PredictSuccess:
		if !s.Loading || a.Seq != s.PredictSeq {
			return s, nil
		}
		result := a.Result
		s.Loading = false
		s.Prediction = &result
		s.History = append(slices.Clip(s.History), prediction.HistoryEntry{
			Result:    result,
			HomeTeam:  s.Requested.Home,
			AwayTeam:  s.Requested.Away,
			Timestamp: a.At,
		})
		return s, nil

	case PredictError:
		if !s.Loading || a.Seq != s.PredictSeq {
			return s, nil
		}
		s.Loading = false
		s.Error = a.Message
		return s, nil

	case CompareAll:
		if err := s.Matchup.Validate(); err != nil {
			return s, err
		}
		s.Comparing = true
		s.Error = ""
		s.Comparisons = nil
		s.CompareSeq++
		return s, nil

	case CompareSuccess:
		if !s.Comparing || a.Seq != s.CompareSeq {
			return s, nil
		}
		s.Comparing = false
		s.Comparisons = slices.Clone(a.Comparisons)
		return s, nil

	case CompareError:
		if !s.Comparing || a.Seq != s.CompareSeq {
			return s, nil
		}
		s.Comparing = false
		s.Error = a.Message
		return s, nil

	case DismissError:
		s.Error = ""
		return s, nil

	default:
		return s, fmt.Errorf("%w: %T", controller.ErrUnknownAction, a)
	}
}

// Latest is the most recent history entry.
func Latest(s State) (prediction.HistoryEntry, bool) {
	if len(s.History) == 0 {
		return prediction.HistoryEntry{}, false
	}
	return s.History[len(s.History)-1], true
}
