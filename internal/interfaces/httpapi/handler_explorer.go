package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/usecase"
	"github.com/riskibarqy/courtside/internal/view/sorting"
)

func (h *Handler) GetExplorer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetExplorer")
	defer span.End()

	page := mustSession(ctx).Explorer
	writeSuccess(ctx, w, http.StatusOK, explorerViewToDTO(page.View()))
}

func (h *Handler) SetExplorerFilters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetExplorerFilters")
	defer span.End()

	var req explorerFiltersRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	page := mustSession(ctx).Explorer
	st, err := page.SetFilters(ctx, team.Normalize(req.Team), req.Season)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, acceptedStatus(st.Loading), explorerViewToDTO(page.View()))
}

func (h *Handler) SetExplorerPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetExplorerPage")
	defer span.End()

	var req explorerPageRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	page := mustSession(ctx).Explorer
	st, err := page.SetPage(ctx, req.Page)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, acceptedStatus(st.Loading), explorerViewToDTO(page.View()))
}

func (h *Handler) SetExplorerPageSize(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetExplorerPageSize")
	defer span.End()

	var req explorerPageSizeRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	page := mustSession(ctx).Explorer
	st, err := page.SetPageSize(ctx, req.PageSize)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, acceptedStatus(st.Loading), explorerViewToDTO(page.View()))
}

func (h *Handler) SetExplorerSort(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetExplorerSort")
	defer span.End()

	var req explorerSortRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	column, err := sorting.ParseColumn(req.Column)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}
	var dir sorting.Direction
	if req.Direction != "" {
		if dir, err = sorting.ParseDirection(req.Direction); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
			return
		}
	}

	page := mustSession(ctx).Explorer
	if _, err := page.SetSort(column, dir); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, explorerViewToDTO(page.View()))
}

func (h *Handler) LoadExplorer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoadExplorer")
	defer span.End()

	var req explorerLoadRequest
	if err := h.decodeRequest(ctx, r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}

	page := mustSession(ctx).Explorer
	st, err := page.Load(ctx, req.ResetPage)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, acceptedStatus(st.Loading), explorerViewToDTO(page.View()))
}
