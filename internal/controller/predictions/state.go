package predictions

import (
	"fmt"
	"time"

	"github.com/riskibarqy/courtside/internal/controller"
	"github.com/riskibarqy/courtside/internal/domain/prediction"
)

var (
	ErrTeamRequired = fmt.Errorf("%w: both home and away teams are required", controller.ErrRejected)
	ErrSameTeam     = fmt.Errorf("%w: home and away teams must differ", controller.ErrRejected)
)

// Matchup is the pair of teams a prediction is requested for.
type Matchup struct {
	Home string
	Away string
}

func (m Matchup) Validate() error {
	if m.Home == "" || m.Away == "" {
		return ErrTeamRequired
	}
	if m.Home == m.Away {
		return ErrSameTeam
	}
	return nil
}

type State struct {
	Matchup     Matchup
	Loading     bool
	Comparing   bool
	Error       string
	Prediction  *prediction.Result
	Comparisons []prediction.ModelComparison
	History     []prediction.HistoryEntry

	// Requested is the matchup of the in-flight prediction, recorded into history on success.
	Requested  Matchup
	PredictSeq uint64
	CompareSeq uint64
}

func Initial() State {
	return State{}
}

// Action is one of the predictions page actions declared in this package.
type Action interface {
	isAction()
}

type SetHome struct{ Team string }

type SetAway struct{ Team string }

type SetTeams struct{ Home, Away string }

// Swap exchanges home and away.
type Swap struct{}

type Submit struct{}

type PredictSuccess struct {
	Seq    uint64
	Result prediction.Result
	At     time.Time
}

type PredictError struct {
	Seq     uint64
	Message string
}

type CompareAll struct{}

type CompareSuccess struct {
	Seq         uint64
	Comparisons []prediction.ModelComparison
}

type CompareError struct {
	Seq     uint64
	Message string
}

type DismissError struct{}

func (SetHome) isAction()        {}
func (SetAway) isAction()        {}
func (SetTeams) isAction()       {}
func (Swap) isAction()           {}
func (Submit) isAction()         {}
func (PredictSuccess) isAction() {}
func (PredictError) isAction()   {}
func (CompareAll) isAction()     {}
func (CompareSuccess) isAction() {}
func (CompareError) isAction()   {}
func (DismissError) isAction()   {}
