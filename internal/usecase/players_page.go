package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/courtside/internal/controller/players"
	"github.com/riskibarqy/courtside/internal/domain/player"
)

type PlayersPage struct {
	deps  PageDeps
	owner string
	store *Store[players.State, players.Action]
}

func NewPlayersPage(deps PageDeps, owner string) *PlayersPage {
	deps = deps.normalized()
	return &PlayersPage{
		deps:  deps,
		owner: ownerKey(owner),
		store: NewStore(players.Initial(), players.Reduce),
	}
}

func (p *PlayersPage) State() players.State {
	return p.store.State()
}

// LoadRecent seeds the page with the durable recent-search list.
func (p *PlayersPage) LoadRecent(ctx context.Context) error {
	if p.deps.Recent == nil {
		return nil
	}
	list, err := p.deps.Recent.Load(ctx, p.owner)
	if err != nil {
		return err
	}
	p.dispatch(players.RecentLoaded{List: list})
	return nil
}

// Search runs query and records it as a recent search.
func (p *PlayersPage) Search(ctx context.Context, query string) (players.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayersPage.Search")
	defer span.End()

	if _, err := p.store.Dispatch(players.SetQuery{Query: query}); err != nil {
		return p.store.State(), fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	st, err := p.store.Dispatch(players.SearchStart{})
	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	seq, q := st.SearchSeq, st.SearchedQuery

	// Saved before the fetch starts so the stored order follows submission order.
	p.persistRecent(ctx, q)

	p.deps.launcher().launch(ctx, "search_players",
		func(ctx context.Context) {
			result, err := p.deps.Port.SearchPlayers(ctx, q, p.deps.SearchLimit)
			if err != nil {
				p.deps.Logger.WarnContext(ctx, "player search failed", "query", q, "error", err)
				p.dispatch(players.SearchError{Seq: seq, Message: failureMessage(err)})
				return
			}
			if len(result.Players) == 0 {
				p.dispatch(players.SearchNoResults{Seq: seq})
				return
			}
			p.dispatch(players.SearchSuccess{Seq: seq, Result: result})
		},
		func(message string) {
			p.dispatch(players.SearchError{Seq: seq, Message: message})
		},
	)
	return p.store.State(), nil
}

// Select picks a player from the current results by id and loads their stats.
func (p *PlayersPage) Select(ctx context.Context, playerID string) (players.State, error) {
	playerID = strings.TrimSpace(playerID)
	var found *player.Player
	for _, candidate := range p.store.State().Players {
		if candidate.ID == playerID {
			c := candidate
			found = &c
			break
		}
	}
	if found == nil {
		return p.store.State(), fmt.Errorf("%w: player %q is not in the current results", ErrNotFound, playerID)
	}
	if _, err := p.store.Dispatch(players.SelectPlayer{Player: *found}); err != nil {
		return p.store.State(), fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return p.LoadStats(ctx)
}

// SetSeason switches season and refetches stats for the selected player.
func (p *PlayersPage) SetSeason(ctx context.Context, season string) (players.State, error) {
	st, err := p.store.Dispatch(players.SetSeason{Season: season})
	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if st.Selected == nil {
		return st, nil
	}
	return p.LoadStats(ctx)
}

func (p *PlayersPage) LoadStats(ctx context.Context) (players.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayersPage.LoadStats")
	defer span.End()

	st, err := p.store.Dispatch(players.StatsStart{})
	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	seq, playerID, season := st.StatsSeq, st.Selected.ID, st.Season

	p.deps.launcher().launch(ctx, "get_player_stats",
		func(ctx context.Context) {
			stats, err := p.deps.Port.GetPlayerStats(ctx, playerID, season)
			if err != nil {
				p.deps.Logger.WarnContext(ctx, "player stats failed", "player_id", playerID, "season", season, "error", err)
				p.dispatch(players.StatsError{Seq: seq, Message: failureMessage(err)})
				return
			}
			if stats.PlayerID == "" {
				stats.PlayerID = playerID
			}
			if stats.Season == "" {
				stats.Season = season
			}
			p.dispatch(players.StatsSuccess{Seq: seq, Stats: stats})
		},
		func(message string) {
			p.dispatch(players.StatsError{Seq: seq, Message: message})
		},
	)
	return p.store.State(), nil
}

func (p *PlayersPage) ClearRecent(ctx context.Context) (players.State, error) {
	if p.deps.Recent != nil {
		if err := p.deps.Recent.Clear(ctx, p.owner); err != nil {
			return p.store.State(), fmt.Errorf("%w: %v", ErrResourceDenied, err)
		}
	}
	return p.store.Dispatch(players.ClearRecent{})
}

// persistRecent saves q durably and syncs the page with what was stored. A storage failure
// keeps the in-memory list and is only logged.
func (p *PlayersPage) persistRecent(ctx context.Context, q string) {
	if p.deps.Recent == nil {
		return
	}
	list, err := p.deps.Recent.Record(ctx, p.owner, q)
	if err != nil {
		p.deps.Logger.WarnContext(ctx, "recent search not saved", "owner", p.owner, "error", err)
		return
	}
	p.dispatch(players.RecentLoaded{List: list})
}

func (p *PlayersPage) dispatch(a players.Action) {
	if _, err := p.store.Dispatch(a); err != nil {
		p.deps.Logger.Error("players dispatch failed", "action", fmt.Sprintf("%T", a), "error", err)
	}
}
