package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/usecase"
)

func (h *Handler) GetPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPredictions")
	defer span.End()

	page := mustSession(ctx).Predictions
	writeSuccess(ctx, w, http.StatusOK, predictionsViewToDTO(page.View()))
}

func (h *Handler) SetMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetMatchup")
	defer span.End()

	var req matchupRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	page := mustSession(ctx).Predictions
	if _, err := page.SetMatchup(team.Normalize(req.HomeTeam), team.Normalize(req.AwayTeam)); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionsViewToDTO(page.View()))
}

func (h *Handler) SwapMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SwapMatchup")
	defer span.End()

	page := mustSession(ctx).Predictions
	if _, err := page.Swap(); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionsViewToDTO(page.View()))
}

func (h *Handler) DismissPredictionError(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DismissPredictionError")
	defer span.End()

	page := mustSession(ctx).Predictions
	if _, err := page.DismissError(); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionsViewToDTO(page.View()))
}

func (h *Handler) SubmitPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPrediction")
	defer span.End()

	page := mustSession(ctx).Predictions
	st, err := page.Submit(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, acceptedStatus(st.Loading), predictionsViewToDTO(page.View()))
}

func (h *Handler) CompareModels(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareModels")
	defer span.End()

	page := mustSession(ctx).Predictions
	st, err := page.Compare(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, acceptedStatus(st.Comparing), predictionsViewToDTO(page.View()))
}

func (h *Handler) GetMatchupStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchupStats")
	defer span.End()

	page := mustSession(ctx).Predictions
	home, away, err := page.MatchupStats(ctx, r.URL.Query().Get("season"))
	if err != nil {
		h.logger.WarnContext(ctx, "matchup stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]teamStatsDTO{
		"home": teamStatsToDTO(home),
		"away": teamStatsToDTO(away),
	})
}

func (h *Handler) GetPredictionGauge(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPredictionGauge")
	defer span.End()

	page := mustSession(ctx).Predictions
	view := page.View()
	h.writeGauge(w, r.WithContext(ctx), view.Gauge, page.Geometry(), view.Theme, strings.HasSuffix(r.URL.Path, ".png"))
}

func (h *Handler) ExportPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportPredictions")
	defer span.End()

	page := mustSession(ctx).Predictions
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = "csv"
	}

	var (
		data        []byte
		err         error
		contentType string
	)
	switch format {
	case "csv":
		data, err = page.ExportCSV(ctx)
		contentType = "text/csv; charset=utf-8"
	case "xlsx":
		data, err = page.ExportXLSX(ctx)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		writeError(ctx, w, fmt.Errorf("%w: unsupported export format %q", usecase.ErrInvalidInput, format))
		return
	}
	if err != nil {
		writeError(ctx, w, notifiedError{cause: err})
		return
	}

	writeFile(w, contentType, "predictions."+format, data)
}

func (h *Handler) SharePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SharePrediction")
	defer span.End()

	text, err := mustSession(ctx).Predictions.ShareText()
	if err != nil {
		writeError(ctx, w, notifiedError{cause: err})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"text": text})
}
