package httpapi

import (
	"bytes"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/usecase"
	"github.com/riskibarqy/courtside/internal/view/gauge"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": h.sessions.Len(),
	})
}

func (h *Handler) UpstreamHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpstreamHealth")
	defer span.End()

	health, err := h.sessions.UpstreamHealth(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "upstream health failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, healthToDTO(health))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	catalog := team.Catalog()
	items := make([]teamDTO, 0, len(catalog))
	for _, t := range catalog {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// RenderGauge draws a gauge from query parameters alone: home (probability 0..1),
// home_team and away_team.
func (h *Handler) RenderGauge(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RenderGauge")
	defer span.End()

	q := r.URL.Query()
	raw := strings.TrimSpace(q.Get("home"))
	if raw == "" {
		writeError(ctx, w, fmt.Errorf("%w: home probability is required", usecase.ErrInvalidInput))
		return
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		writeError(ctx, w, fmt.Errorf("%w: home probability must be a number, got %q", usecase.ErrInvalidInput, raw))
		return
	}

	layout := gauge.Compute(p, h.geometry)
	theme := gauge.ThemeFor(q.Get("home_team"), q.Get("away_team"))
	h.writeGauge(w, r, layout, h.geometry, theme, strings.HasSuffix(r.URL.Path, ".png"))
}

func (h *Handler) writeGauge(w http.ResponseWriter, r *http.Request, l gauge.Layout, g gauge.Geometry, th gauge.Theme, png bool) {
	ctx := r.Context()

	var buf bytes.Buffer
	contentType := "image/svg+xml"
	render := gauge.RenderSVG
	if png {
		contentType = "image/png"
		render = gauge.RenderPNG
	}
	if err := render(&buf, l, g, th); err != nil {
		h.logger.ErrorContext(ctx, "render gauge failed", "png", png, "error", err)
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeFile(w, contentType, "", buf.Bytes())
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSession")
	defer span.End()

	var req createSessionRequest
	if err := h.decodeRequest(ctx, r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}

	s, err := h.sessions.Create(ctx, resolveOwner(r, req.Owner))
	if err != nil {
		h.logger.ErrorContext(ctx, "create session failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sessionToDTO(s))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(mustSession(ctx)))
}

func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CloseSession")
	defer span.End()

	if err := h.sessions.Close(ctx, r.PathValue("sessionID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
