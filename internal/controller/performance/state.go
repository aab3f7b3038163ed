package performance

import (
	"fmt"
	"time"

	"github.com/riskibarqy/courtside/internal/controller"
	"github.com/riskibarqy/courtside/internal/domain/monitoring"
)

const (
	DefaultAlertHours = 24
	MaxAlertHours     = 24 * 7
)

var ErrInvalidAlertWindow = fmt.Errorf("%w: alert window must be between 1 and %d hours", controller.ErrRejected, MaxAlertHours)

// Snapshot aggregates the four monitoring sub-fetches.
type Snapshot struct {
	Models      []monitoring.ModelInfo
	Performance []monitoring.ModelPerformance
	Drift       monitoring.DriftStatus
	Alerts      []monitoring.Alert
}

type State struct {
	Snapshot   *Snapshot
	FetchedAt  time.Time
	AlertHours int
	Loading    bool
	Error      string
	Seq        uint64
}

func Initial() State {
	return State{AlertHours: DefaultAlertHours}
}

// Action is one of the performance page actions declared in this package.
type Action interface {
	isAction()
}

type FetchStart struct{}

type FetchSuccess struct {
	Seq      uint64
	Snapshot Snapshot
	At       time.Time
}

type FetchError struct {
	Seq     uint64
	Message string
}

// SetAlertWindow changes how many hours of alerts the next fetch asks for.
type SetAlertWindow struct{ Hours int }

func (FetchStart) isAction()     {}
func (FetchSuccess) isAction()   {}
func (FetchError) isAction()     {}
func (SetAlertWindow) isAction() {}
