package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/courtside/internal/controller/explorer"
	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/view/sorting"
)

type ExplorerPage struct {
	deps  PageDeps
	store *Store[explorer.State, explorer.Action]
}

// ExplorerView is the page state with the current page in display order.
type ExplorerView struct {
	State   explorer.State
	Visible []game.Game
	Empty   bool
}

func NewExplorerPage(deps PageDeps) *ExplorerPage {
	deps = deps.normalized()
	return &ExplorerPage{
		deps:  deps,
		store: NewStore(explorer.Initial(), explorer.NewReducer(deps.Estimator).Reduce),
	}
}

func (p *ExplorerPage) State() explorer.State {
	return p.store.State()
}

func (p *ExplorerPage) View() ExplorerView {
	st := p.store.State()
	return ExplorerView{State: st, Visible: explorer.Visible(st), Empty: explorer.Empty(st)}
}

// SetFilters applies team and season and reloads from the first page.
func (p *ExplorerPage) SetFilters(ctx context.Context, team, season string) (explorer.State, error) {
	if _, err := p.dispatchInput(explorer.SetSeason{Season: season}); err != nil {
		return p.store.State(), err
	}
	if _, err := p.dispatchInput(explorer.SetTeam{Team: team}); err != nil {
		return p.store.State(), err
	}
	return p.Load(ctx, true)
}

func (p *ExplorerPage) SetPage(ctx context.Context, page int) (explorer.State, error) {
	if _, err := p.dispatchInput(explorer.SetPage{Page: page}); err != nil {
		return p.store.State(), err
	}
	return p.Load(ctx, false)
}

func (p *ExplorerPage) SetPageSize(ctx context.Context, size int) (explorer.State, error) {
	if _, err := p.dispatchInput(explorer.SetPageSize{Size: size}); err != nil {
		return p.store.State(), err
	}
	return p.Load(ctx, true)
}

// SetSort only reorders what is already loaded.
func (p *ExplorerPage) SetSort(column sorting.Column, dir sorting.Direction) (explorer.State, error) {
	return p.dispatchInput(explorer.SetSort{Column: column, Direction: dir})
}

// Load fetches the current page. resetPage starts over from page one.
func (p *ExplorerPage) Load(ctx context.Context, resetPage bool) (explorer.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerPage.Load")
	defer span.End()

	st, err := p.dispatchInput(explorer.LoadStart{ResetPage: resetPage})
	if err != nil {
		return st, err
	}
	seq, page, size := st.Seq, st.CurrentPage, st.PageSize
	filter := explorer.Query(st)

	p.deps.launcher().launch(ctx, "get_games",
		func(ctx context.Context) {
			result, err := p.deps.Port.GetGames(ctx, filter)
			if err != nil {
				p.deps.Logger.WarnContext(ctx, "games load failed", "team", filter.Team, "season", filter.Season, "page", page, "error", err)
				p.dispatch(explorer.LoadError{Seq: seq, Message: failureMessage(err)})
				return
			}
			p.dispatch(explorer.LoadSuccess{Seq: seq, Games: result.Games, Page: page, PageSize: size, Total: result.Total})
		},
		func(message string) {
			p.dispatch(explorer.LoadError{Seq: seq, Message: message})
		},
	)
	return p.store.State(), nil
}

func (p *ExplorerPage) dispatchInput(a explorer.Action) (explorer.State, error) {
	st, err := p.store.Dispatch(a)
	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return st, nil
}

func (p *ExplorerPage) dispatch(a explorer.Action) {
	if _, err := p.store.Dispatch(a); err != nil {
		p.deps.Logger.Error("explorer dispatch failed", "action", fmt.Sprintf("%T", a), "error", err)
	}
}
