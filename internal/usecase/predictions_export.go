package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/prediction"
	"github.com/riskibarqy/courtside/internal/view/anim"
)

var errNothingToExport = fmt.Errorf("%w: no predictions in this session yet", ErrNotFound)

// Notification is a transient message for the user. It never changes page state.
type Notification struct {
	Level   string
	Message string
}

// NotificationFor describes an export or share failure.
func NotificationFor(err error) Notification {
	switch {
	case err == nil:
		return Notification{Level: "success", Message: "Done."}
	case errors.Is(err, ErrNotFound):
		return Notification{Level: "info", Message: "Make a prediction first."}
	case errors.Is(err, ErrResourceDenied):
		return Notification{Level: "error", Message: "The file could not be created. Please try again."}
	case errors.Is(err, ErrDependencyUnavailable):
		return Notification{Level: "error", Message: "The prediction service is unavailable. Please try again."}
	default:
		return Notification{Level: "error", Message: "Something went wrong. Please try again."}
	}
}

// ExportCSV asks the service to render the session history as CSV. It only reads state.
func (p *PredictionsPage) ExportCSV(ctx context.Context) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionsPage.ExportCSV")
	defer span.End()

	history := p.store.State().History
	if len(history) == 0 {
		return nil, errNothingToExport
	}
	data, err := p.deps.Port.ExportPredictionsCSV(ctx, history)
	if err != nil {
		p.deps.Logger.WarnContext(ctx, "csv export failed", "entries", len(history), "error", err)
		return nil, dependencyError("export predictions csv", err)
	}
	return data, nil
}

// ExportXLSX renders the session history locally.
func (p *PredictionsPage) ExportXLSX(ctx context.Context) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionsPage.ExportXLSX")
	defer span.End()

	history := p.store.State().History
	if len(history) == 0 {
		return nil, errNothingToExport
	}
	if p.deps.Exporter == nil {
		return nil, fmt.Errorf("%w: spreadsheet export is not configured", ErrResourceDenied)
	}
	data, err := p.deps.Exporter.ExportXLSX(history)
	if err != nil {
		p.deps.Logger.WarnContext(ctx, "xlsx export failed", "entries", len(history), "error", err)
		return nil, fmt.Errorf("%w: %v", ErrResourceDenied, err)
	}
	return data, nil
}

// ShareText is the shareable summary of the displayed prediction.
func (p *PredictionsPage) ShareText() (string, error) {
	st := p.store.State()
	if st.Prediction == nil {
		return "", errNothingToExport
	}
	return shareText(*st.Prediction), nil
}

func shareText(r prediction.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s: %s to win", r.HomeTeam, r.AwayTeam, r.Winner())
	fmt.Fprintf(&b, " (%s confidence)", anim.Format(r.Confidence*100, 1, "", "%"))
	if r.ModelUsed != "" {
		fmt.Fprintf(&b, " via %s", r.ModelUsed)
	}
	return b.String()
}
