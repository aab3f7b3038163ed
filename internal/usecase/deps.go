package usecase

import (
	"time"

	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/platform/runner"
	"github.com/riskibarqy/courtside/internal/view/anim"
	"github.com/riskibarqy/courtside/internal/view/gauge"
	"github.com/riskibarqy/courtside/internal/view/pagination"
)

// PageDeps are the collaborators every page of a session shares.
type PageDeps struct {
	Port              DataPort
	Runner            runner.Runner
	Scheduler         anim.Scheduler
	Recent            *RecentSearches
	Exporter          HistoryExporter
	Estimator         pagination.Estimator
	Logger            *logging.Logger
	Geometry          gauge.Geometry
	AnimationDuration time.Duration
	PortTimeout       time.Duration
	SearchLimit       int
	Now               func() time.Time
}

func (d PageDeps) normalized() PageDeps {
	if d.Runner == nil {
		d.Runner = runner.Inline{}
	}
	if d.Logger == nil {
		d.Logger = logging.Default()
	}
	if d.Estimator == nil {
		d.Estimator = pagination.NewHeuristic()
	}
	if d.Geometry == (gauge.Geometry{}) {
		d.Geometry = gauge.DefaultGeometry()
	}
	if d.PortTimeout <= 0 {
		d.PortTimeout = 15 * time.Second
	}
	if d.SearchLimit <= 0 {
		d.SearchLimit = 20
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Scheduler == nil {
		// Without a frame loop counters jump straight to their target.
		d.Scheduler = anim.NewManualScheduler(d.Now())
		d.AnimationDuration = 0
	}
	return d
}

func (d PageDeps) launcher() launcher {
	return launcher{runner: d.Runner, logger: d.Logger, timeout: d.PortTimeout}
}
