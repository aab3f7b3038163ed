package players

import (
	"fmt"

	"github.com/riskibarqy/courtside/internal/controller"
	"github.com/riskibarqy/courtside/internal/domain/player"
)

const (
	DefaultSeason      = "2024-25"
	DefaultSearchLimit = 20
)

var (
	ErrQueryRequired    = fmt.Errorf("%w: search query is required", controller.ErrRejected)
	ErrNoPlayerSelected = fmt.Errorf("%w: select a player first", controller.ErrRejected)
	ErrSeasonRequired   = fmt.Errorf("%w: season is required", controller.ErrRejected)
)

type State struct {
	Query string
	// SearchedQuery is the query of the latest search request.
	SearchedQuery string
	Players       []player.Player
	DataSource    string
	Searching     bool
	NoResults     bool
	SearchNotice  string
	Error         string
	SearchSeq     uint64

	Selected     *player.Player
	Season       string
	Stats        *player.Stats
	StatsLoading bool
	StatsNotice  string
	StatsError   string
	StatsSeq     uint64

	Recent []string
}

func Initial() State {
	return State{Season: DefaultSeason}
}

// Action is one of the players page actions declared in this package.
type Action interface {
	isAction()
}

type SetQuery struct{ Query string }

// SearchStart searches for the current query and records it in the recent list.
type SearchStart struct{}

type SearchSuccess struct {
	Seq    uint64
	Result player.SearchResult
}

type SearchNoResults struct {
	Seq uint64
}

type SearchError struct {
	Seq     uint64
	Message string
}

type SelectPlayer struct{ Player player.Player }

type StatsStart struct{}

type StatsSuccess struct {
	Seq   uint64
	Stats player.Stats
}

type StatsError struct {
	Seq     uint64
	Message string
}

type SetSeason struct{ Season string }

// RecentLoaded replaces the in-memory recent list with the durable copy.
type RecentLoaded struct{ List []string }

type ClearRecent struct{}

func (SetQuery) isAction()        {}
func (SearchStart) isAction()     {}
func (SearchSuccess) isAction()   {}
func (SearchNoResults) isAction() {}
func (SearchError) isAction()     {}
func (SelectPlayer) isAction()    {}
func (StatsStart) isAction()      {}
func (StatsSuccess) isAction()    {}
func (StatsError) isAction()      {}
func (SetSeason) isAction()       {}
func (RecentLoaded) isAction()    {}
func (ClearRecent) isAction()     {}
