package httpapi

import (
	"net/http"
)

func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayers")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, playersStateToDTO(mustSession(ctx).Players.State()))
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	var req playerSearchRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	st, err := mustSession(ctx).Players.Search(ctx, req.Query)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, acceptedStatus(st.Searching), playersStateToDTO(st))
}

func (h *Handler) SelectPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectPlayer")
	defer span.End()

	var req playerSelectRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	st, err := mustSession(ctx).Players.Select(ctx, req.PlayerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, acceptedStatus(st.StatsLoading), playersStateToDTO(st))
}

func (h *Handler) SetPlayerSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPlayerSeason")
	defer span.End()

	var req seasonRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	st, err := mustSession(ctx).Players.SetSeason(ctx, req.Season)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, acceptedStatus(st.StatsLoading), playersStateToDTO(st))
}

func (h *Handler) ClearRecentSearches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearRecentSearches")
	defer span.End()

	st, err := mustSession(ctx).Players.ClearRecent(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "clear recent searches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersStateToDTO(st))
}
