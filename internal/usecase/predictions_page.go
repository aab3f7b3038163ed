package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/courtside/internal/controller/predictions"
	"github.com/riskibarqy/courtside/internal/domain/prediction"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/view/anim"
	"github.com/riskibarqy/courtside/internal/view/gauge"
	"github.com/sourcegraph/conc"
)

// PredictionsPage runs the predictions state machine and the gauge and confidence animations
// that follow it.
type PredictionsPage struct {
	deps       PageDeps
	store      *Store[predictions.State, predictions.Action]
	gauge      *gauge.Animator
	confidence *anim.Counter
	unsub      func()
	last       *prediction.Result
}

// PredictionsView is the page state plus the values the animations currently display.
type PredictionsView struct {
	State          predictions.State
	Gauge          gauge.Layout
	Theme          gauge.Theme
	ConfidenceText string
	Animating      bool
}

func NewPredictionsPage(deps PageDeps) *PredictionsPage {
	deps = deps.normalized()
	p := &PredictionsPage{
		deps:  deps,
		store: NewStore(predictions.Initial(), predictions.Reduce),
		gauge: gauge.NewAnimator(deps.Scheduler, deps.AnimationDuration, deps.Geometry),
		confidence: anim.NewCounter(deps.Scheduler, anim.CounterOptions{
			Duration: deps.AnimationDuration,
			Decimals: 1,
			Suffix:   "%",
		}),
	}
	p.unsub = p.store.Subscribe(p.retarget)
	return p
}

func (p *PredictionsPage) State() predictions.State {
	return p.store.State()
}

func (p *PredictionsPage) View() PredictionsView {
	st := p.store.State()
	return PredictionsView{
		State:          st,
		Gauge:          p.gauge.Layout(),
		Theme:          p.Theme(),
		ConfidenceText: p.confidence.Text(),
		Animating:      p.gauge.Animating() || p.confidence.Animating(),
	}
}

// Theme colours the gauge for the matchup of the displayed prediction, or the selected one.
func (p *PredictionsPage) Theme() gauge.Theme {
	st := p.store.State()
	if st.Prediction != nil {
		return gauge.ThemeFor(st.Prediction.HomeTeam, st.Prediction.AwayTeam)
	}
	return gauge.ThemeFor(st.Matchup.Home, st.Matchup.Away)
}

func (p *PredictionsPage) Geometry() gauge.Geometry {
	return p.gauge.Geometry()
}

func (p *PredictionsPage) SetMatchup(home, away string) (predictions.State, error) {
	return p.store.Dispatch(predictions.SetTeams{Home: home, Away: away})
}

func (p *PredictionsPage) Swap() (predictions.State, error) {
	return p.store.Dispatch(predictions.Swap{})
}

func (p *PredictionsPage) DismissError() (predictions.State, error) {
	return p.store.Dispatch(predictions.DismissError{})
}

// Submit starts a prediction for the selected matchup. Validation errors are returned and
// nothing is fetched.
func (p *PredictionsPage) Submit(ctx context.Context) (predictions.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionsPage.Submit")
	defer span.End()

	st, err := p.store.Dispatch(predictions.Submit{})
	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	seq, matchup := st.PredictSeq, st.Requested

	p.deps.launcher().launch(ctx, "predict_simple",
		func(ctx context.Context) {
			result, err := p.deps.Port.PredictSimple(ctx, matchup.Home, matchup.Away)
			if err == nil {
				err = result.Validate()
			}
			if err != nil {
				p.deps.Logger.WarnContext(ctx, "prediction failed", "home", matchup.Home, "away", matchup.Away, "error", err)
				p.dispatch(predictions.PredictError{Seq: seq, Message: failureMessage(err)})
				return
			}
			p.dispatch(predictions.PredictSuccess{Seq: seq, Result: result, At: p.deps.Now()})
		},
		func(message string) {
			p.dispatch(predictions.PredictError{Seq: seq, Message: message})
		},
	)
	return p.store.State(), nil
}

// Compare asks every available model for the selected matchup.
func (p *PredictionsPage) Compare(ctx context.Context) (predictions.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionsPage.Compare")
	defer span.End()

	st, err := p.store.Dispatch(predictions.CompareAll{})
	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	seq, matchup := st.CompareSeq, st.Matchup

	p.deps.launcher().launch(ctx, "compare_models",
		func(ctx context.Context) {
			list, err := p.deps.Port.CompareModels(ctx, matchup.Home, matchup.Away)
			if err != nil {
				p.deps.Logger.WarnContext(ctx, "model comparison failed", "home", matchup.Home, "away", matchup.Away, "error", err)
				p.dispatch(predictions.CompareError{Seq: seq, Message: failureMessage(err)})
				return
			}
			p.dispatch(predictions.CompareSuccess{Seq: seq, Comparisons: list})
		},
		func(message string) {
			p.dispatch(predictions.CompareError{Seq: seq, Message: message})
		},
	)
	return p.store.State(), nil
}

// MatchupStats fetches both teams' season records concurrently.
func (p *PredictionsPage) MatchupStats(ctx context.Context, season string) (home, away team.Stats, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionsPage.MatchupStats")
	defer span.End()

	m := p.store.State().Matchup
	if err := m.Validate(); err != nil {
		return team.Stats{}, team.Stats{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	season = strings.TrimSpace(season)
	if season == "" {
		return team.Stats{}, team.Stats{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	var homeErr, awayErr error
	var wg conc.WaitGroup
	wg.Go(func() { home, homeErr = p.deps.Port.GetTeamStats(ctx, m.Home, season) })
	wg.Go(func() { away, awayErr = p.deps.Port.GetTeamStats(ctx, m.Away, season) })
	if r := wg.WaitAndRecover(); r != nil {
		return team.Stats{}, team.Stats{}, dependencyError("team stats", r.AsError())
	}
	if homeErr != nil {
		return team.Stats{}, team.Stats{}, dependencyError("team stats "+m.Home, homeErr)
	}
	if awayErr != nil {
		return team.Stats{}, team.Stats{}, dependencyError("team stats "+m.Away, awayErr)
	}
	return home, away, nil
}

// Close stops the animations. The page must not be used afterwards.
func (p *PredictionsPage) Close() {
	p.unsub()
	p.gauge.Stop()
	p.confidence.Stop()
}

func (p *PredictionsPage) dispatch(a predictions.Action) {
	if _, err := p.store.Dispatch(a); err != nil {
		p.deps.Logger.Error("predictions dispatch failed", "action", fmt.Sprintf("%T", a), "error", err)
	}
}

// retarget points the gauge and confidence counter at each newly displayed prediction.
func (p *PredictionsPage) retarget(st predictions.State) {
	if st.Prediction == nil || st.Prediction == p.last {
		return
	}
	p.last = st.Prediction
	p.gauge.SetProbability(st.Prediction.HomeWinProbability)
	p.confidence.SetTarget(st.Prediction.Confidence * 100)
}
