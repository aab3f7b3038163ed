package players

import (
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/courtside/internal/controller"
	"github.com/riskibarqy/courtside/internal/controller/recent"
)

func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case SetQuery:
		s.Query = a.Query
		return s, nil

	case SearchStart:
		q := strings.TrimSpace(s.Query)
		if q == "" {
			return s, ErrQueryRequired
		}
		s.SearchedQuery = q
		s.Searching = true
		s.Error = ""
		s.NoResults = false
		s.SearchNotice = ""
		s.Players = nil
		s.DataSource = ""
		s.Recent = recent.Add(s.Recent, q)
		s.SearchSeq++
		return s, nil

	case SearchSuccess:
		if !s.Searching || a.Seq != s.SearchSeq {
			return s, nil
		}
		if len(a.Result.Players) == 0 {
			return noResults(s), nil
		}
		s.Searching = false
		s.Players = slices.Clone(a.Result.Players)
		s.DataSource = a.Result.DataSource
		return s, nil

	case SearchNoResults:
		if !s.Searching || a.Seq != s.SearchSeq {
			return s, nil
		}
		return noResults(s), nil

	case SearchError:
		if !s.Searching || a.Seq != s.SearchSeq {
			return s, nil
		}
		s.Searching = false
		s.Error = a.Message
		return s, nil

	case SelectPlayer:
		p := a.Player
		s.Selected = &p
		return clearStats(s), nil

	case StatsStart:
		if s.Selected == nil {
			return s, ErrNoPlayerSelected
		}
		s = clearStats(s)
		s.StatsLoading = true
		return s, nil

	case StatsSuccess:
		if !s.StatsLoading || a.Seq != s.StatsSeq || s.Selected == nil || a.Stats.PlayerID != s.Selected.ID {
			return s, nil
		}
		stats := a.Stats
		s.StatsLoading = false
		s.Stats = &stats
		if stats.Empty() {
			s.StatsNotice = fmt.Sprintf("%s has no games played in %s", s.Selected.Name, seasonOf(stats.Season, s.Season))
		}
		return s, nil

	case StatsError:
		if !s.StatsLoading || a.Seq != s.StatsSeq {
			return s, nil
		}
		s.StatsLoading = false
		s.StatsError = a.Message
		return s, nil

	case SetSeason:
		season := strings.TrimSpace(a.Season)
		if season == "" {
			return s, ErrSeasonRequired
		}
		s.Season = season
		return clearStats(s), nil

	case RecentLoaded:
		s.Recent = recent.Normalize(a.List)
		return s, nil

	case ClearRecent:
		s.Recent = nil
		return s, nil

	default:
		return s, fmt.Errorf("%w: %T", controller.ErrUnknownAction, a)
	}
}

func noResults(s State) State {
	s.Searching = false
	s.Players = nil
	s.NoResults = true
	s.SearchNotice = fmt.Sprintf("No players found for %q", s.SearchedQuery)
	return s
}

// clearStats drops detail state for the previous selection and invalidates its in-flight fetch.
func clearStats(s State) State {
	s.Stats = nil
	s.StatsNotice = ""
	s.StatsError = ""
	s.StatsLoading = false
	s.StatsSeq++
	return s
}

func seasonOf(reported, selected string) string {
	if reported != "" {
		return reported
	}
	return selected
}
