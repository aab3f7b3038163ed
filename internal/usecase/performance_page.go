package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/courtside/internal/controller/performance"
	"github.com/riskibarqy/courtside/internal/domain/monitoring"
	"github.com/sourcegraph/conc/pool"
)

type PerformancePage struct {
	deps  PageDeps
	store *Store[performance.State, performance.Action]
}

type PerformanceView struct {
	State   performance.State
	Summary performance.Summary
	Alerts  []monitoring.Alert
}

func NewPerformancePage(deps PageDeps) *PerformancePage {
	deps = deps.normalized()
	return &PerformancePage{
		deps:  deps,
		store: NewStore(performance.Initial(), performance.Reduce),
	}
}

func (p *PerformancePage) State() performance.State {
	return p.store.State()
}

func (p *PerformancePage) View() PerformanceView {
	st := p.store.State()
	return PerformanceView{State: st, Summary: performance.Summarize(st), Alerts: performance.AlertsBySeverity(st)}
}

func (p *PerformancePage) SetAlertWindow(ctx context.Context, hours int) (performance.State, error) {
	if _, err := p.store.Dispatch(performance.SetAlertWindow{Hours: hours}); err != nil {
		return p.store.State(), fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return p.Refresh(ctx)
}

// Refresh runs the four monitoring fetches in parallel. Any failure fails the whole refresh.
func (p *PerformancePage) Refresh(ctx context.Context) (performance.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformancePage.Refresh")
	defer span.End()

	st, err := p.store.Dispatch(performance.FetchStart{})
	if err != nil {
		return st, err
	}
	seq, hours := st.Seq, st.AlertHours

	p.deps.launcher().launch(ctx, "performance_snapshot",
		func(ctx context.Context) {
			snap, err := p.fetchSnapshot(ctx, hours)
			if err != nil {
				p.deps.Logger.WarnContext(ctx, "performance refresh failed", "error", err)
				p.dispatch(performance.FetchError{Seq: seq, Message: failureMessage(err)})
				return
			}
			p.dispatch(performance.FetchSuccess{Seq: seq, Snapshot: snap, At: p.deps.Now()})
		},
		func(message string) {
			p.dispatch(performance.FetchError{Seq: seq, Message: message})
		},
	)
	return p.store.State(), nil
}

func (p *PerformancePage) fetchSnapshot(ctx context.Context, hours int) (performance.Snapshot, error) {
	var snap performance.Snapshot
	port := p.deps.Port

	wp := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	wp.Go(func(ctx context.Context) error {
		models, err := port.ListModels(ctx)
		if err != nil {
			return fmt.Errorf("list models: %w", err)
		}
		snap.Models = models
		return nil
	})
	wp.Go(func(ctx context.Context) error {
		perf, err := port.GetModelPerformance(ctx)
		if err != nil {
			return fmt.Errorf("model performance: %w", err)
		}
		snap.Performance = perf
		return nil
	})
	wp.Go(func(ctx context.Context) error {
		drift, err := port.GetDriftStatus(ctx)
		if err != nil {
			return fmt.Errorf("drift status: %w", err)
		}
		snap.Drift = drift
		return nil
	})
	wp.Go(func(ctx context.Context) error {
		alerts, err := port.GetMonitoringAlerts(ctx, hours)
		if err != nil {
			return fmt.Errorf("monitoring alerts: %w", err)
		}
		snap.Alerts = alerts
		return nil
	})
	if err := wp.Wait(); err != nil {
		return performance.Snapshot{}, err
	}
	return snap, nil
}

func (p *PerformancePage) dispatch(a performance.Action) {
	if _, err := p.store.Dispatch(a); err != nil {
		p.deps.Logger.Error("performance dispatch failed", "action", fmt.Sprintf("%T", a), "error", err)
	}
}
