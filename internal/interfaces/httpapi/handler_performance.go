package httpapi

import "net/http"

func (h *Handler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPerformance")
	defer span.End()

	page := mustSession(ctx).Performance
	writeSuccess(ctx, w, http.StatusOK, performanceViewToDTO(page.View()))
}

func (h *Handler) RefreshPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshPerformance")
	defer span.End()

	page := mustSession(ctx).Performance
	st, err := page.Refresh(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, acceptedStatus(st.Loading), performanceViewToDTO(page.View()))
}

func (h *Handler) SetAlertWindow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetAlertWindow")
	defer span.End()

	var req alertWindowRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	page := mustSession(ctx).Performance
	st, err := page.SetAlertWindow(ctx, req.Hours)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, acceptedStatus(st.Loading), performanceViewToDTO(page.View()))
}
