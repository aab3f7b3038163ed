package explorer

import (
	"fmt"

	"github.com/riskibarqy/courtside/internal/controller"
	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/view/pagination"
	"github.com/riskibarqy/courtside/internal/view/sorting"
)

const DefaultSeason = "2024-25"

var (
	ErrInvalidPage     = fmt.Errorf("%w: page must be at least 1", controller.ErrRejected)
	ErrInvalidPageSize = fmt.Errorf("%w: page size must be one of %v", controller.ErrRejected, pagination.PageSizes)
	ErrSeasonRequired  = fmt.Errorf("%w: season is required", controller.ErrRejected)
)

type State struct {
	Team   string
	Season string

	Games      []game.Game
	TotalGames int
	TotalPages int
	TotalExact bool
	Loaded     bool

	CurrentPage int
	PageSize    int

	SortColumn    sorting.Column
	SortDirection sorting.Direction

	Loading bool
	Error   string
	Seq     uint64
}

func Initial() State {
	return State{
		Season:        DefaultSeason,
		CurrentPage:   1,
		PageSize:      pagination.DefaultPageSize,
		SortColumn:    sorting.ColumnDate,
		SortDirection: sorting.Desc,
	}
}

// Action is one of the explorer page actions declared in this package.
type Action interface {
	isAction()
}

type SetTeam struct{ Team string }

type SetSeason struct{ Season string }

type SetPage struct{ Page int }

type SetPageSize struct{ Size int }

type LoadStart struct{ ResetPage bool }

// LoadSuccess carries the page and page size the games were fetched for.
type LoadSuccess struct {
	Seq      uint64
	Games    []game.Game
	Page     int
	PageSize int
	Total    *int
}

type LoadError struct {
	Seq     uint64
	Message string
}

// SetSort picks the sort column. An empty Direction toggles when the column is unchanged and
// starts ascending otherwise.
type SetSort struct {
	Column    sorting.Column
	Direction sorting.Direction
}

func (SetTeam) isAction()     {}
func (SetSeason) isAction()   {}
func (SetPage) isAction()     {}
func (SetPageSize) isAction() {}
func (LoadStart) isAction()   {}
func (LoadSuccess) isAction() {}
func (LoadError) isAction()   {}
func (SetSort) isAction()     {}
