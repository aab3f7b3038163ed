package explorer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/courtside/internal/controller"
	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/view/pagination"
	"github.com/riskibarqy/courtside/internal/view/sorting"
)

// Reducer is the explorer state machine. Estimator decides listing totals after each load.
type Reducer struct {
	Estimator pagination.Estimator
}

func NewReducer(est pagination.Estimator) Reducer {
	if est == nil {
		est = pagination.NewHeuristic()
	}
	return Reducer{Estimator: est}
}

// Reduce uses the default pagination heuristic.
func Reduce(s State, a Action) (State, error) {
	return NewReducer(nil).Reduce(s, a)
}

func (r Reducer) Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case SetTeam:
		s.Team = team.Normalize(a.Team)
		return resetResults(s), nil

	case SetSeason:
		season := strings.TrimSpace(a.Season)
		if season == "" {
			return s, ErrSeasonRequired
		}
		s.Season = season
		return resetResults(s), nil

	case SetPage:
		if a.Page < 1 {
			return s, ErrInvalidPage
		}
		page := pagination.Clamp(a.Page, s.TotalPages)
		if page != s.CurrentPage && s.Loading {
			s.Loading = false
			s.Seq++
		}
		s.CurrentPage = page
		return s, nil

	case SetPageSize:
		if !pagination.ValidPageSize(a.Size) {
			return s, ErrInvalidPageSize
		}
		s.PageSize = a.Size
		return resetResults(s), nil

	case LoadStart:
		if a.ResetPage {
			s.CurrentPage = 1
		}
		s.Loading = true
		s.Error = ""
		s.Seq++
		return s, nil

	case LoadSuccess:
		if !s.Loading || a.Seq != s.Seq || a.Page != s.CurrentPage || a.PageSize != s.PageSize {
			return s, nil
		}
		est := r.Estimator.Estimate(pagination.Input{
			PageSize:      a.PageSize,
			Returned:      len(a.Games),
			Authoritative: a.Total,
		})
		s.Loading = false
		s.Loaded = true
		s.Games = slices.Clone(a.Games)
		s.TotalGames = est.Total
		s.TotalPages = est.Pages
		s.TotalExact = est.Exact
		if s.TotalGames > 0 {
			s.CurrentPage = pagination.Clamp(s.CurrentPage, s.TotalPages)
		}
		return s, nil

	case LoadError:
		if !s.Loading || a.Seq != s.Seq {
			return s, nil
		}
		s.Loading = false
		s.Error = a.Message
		return s, nil

	case SetSort:
		dir := a.Direction
		if dir == "" {
			dir = sorting.Asc
			if a.Column == s.SortColumn {
				dir = sorting.Toggle(s.SortDirection)
			}
		}
		s.SortColumn = a.Column
		s.SortDirection = dir
		return s, nil

	default:
		return s, fmt.Errorf("%w: %T", controller.ErrUnknownAction, a)
	}
}

// resetResults drops results that belong to the previous filter or page size and abandons
// any in-flight load for them.
func resetResults(s State) State {
	s.CurrentPage = 1
	s.Games = nil
	s.TotalGames = 0
	s.TotalPages = 0
	s.TotalExact = false
	s.Loaded = false
	if s.Loading {
		s.Loading = false
		s.Seq++
	}
	return s
}

// Visible is the current page in display order.
func Visible(s State) []game.Game {
	return sorting.Games(s.Games, s.SortColumn, s.SortDirection)
}

// Empty reports a settled load that found nothing. It is distinct from an error.
func Empty(s State) bool {
	return s.Loaded && !s.Loading && s.Error == "" && len(s.Games) == 0
}

// Query is the games request for the current filters and page.
func Query(s State) game.Filter {
	return game.Filter{
		Team:   s.Team,
		Season: s.Season,
		Limit:  s.PageSize,
		Offset: pagination.Offset(s.CurrentPage, s.PageSize),
	}
}
