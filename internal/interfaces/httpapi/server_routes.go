package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/upstream/health", handler.UpstreamHealth)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/gauge.svg", handler.RenderGauge)
	mux.HandleFunc("GET /v1/gauge.png", handler.RenderGauge)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/sessions", handler.CreateSession)
	mux.Handle("GET /v1/sessions/{sessionID}", handler.requireSession(handler.GetSession))
	mux.HandleFunc("DELETE /v1/sessions/{sessionID}", handler.CloseSession)
}

func registerPredictionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("GET /v1/sessions/{sessionID}/predictions", handler.requireSession(handler.GetPredictions))
	mux.Handle("PUT /v1/sessions/{sessionID}/predictions/matchup", handler.requireSession(handler.SetMatchup))
	mux.Handle("POST /v1/sessions/{sessionID}/predictions/swap", handler.requireSession(handler.SwapMatchup))
	mux.Handle("DELETE /v1/sessions/{sessionID}/predictions/error", handler.requireSession(handler.DismissPredictionError))
	mux.Handle("POST /v1/sessions/{sessionID}/predictions/submit", handler.requireSession(handler.SubmitPrediction))
	mux.Handle("POST /v1/sessions/{sessionID}/predictions/compare", handler.requireSession(handler.CompareModels))
	mux.Handle("GET /v1/sessions/{sessionID}/predictions/matchup-stats", handler.requireSession(handler.GetMatchupStats))
	mux.Handle("GET /v1/sessions/{sessionID}/predictions/gauge.svg", handler.requireSession(handler.GetPredictionGauge))
	mux.Handle("GET /v1/sessions/{sessionID}/predictions/gauge.png", handler.requireSession(handler.GetPredictionGauge))
	mux.Handle("GET /v1/sessions/{sessionID}/predictions/export", handler.requireSession(handler.ExportPredictions))
	mux.Handle("GET /v1/sessions/{sessionID}/predictions/share", handler.requireSession(handler.SharePrediction))
}

func registerExplorerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("GET /v1/sessions/{sessionID}/explorer", handler.requireSession(handler.GetExplorer))
	mux.Handle("PUT /v1/sessions/{sessionID}/explorer/filters", handler.requireSession(handler.SetExplorerFilters))
	mux.Handle("PUT /v1/sessions/{sessionID}/explorer/page", handler.requireSession(handler.SetExplorerPage))
	mux.Handle("PUT /v1/sessions/{sessionID}/explorer/page-size", handler.requireSession(handler.SetExplorerPageSize))
	mux.Handle("PUT /v1/sessions/{sessionID}/explorer/sort", handler.requireSession(handler.SetExplorerSort))
	mux.Handle("POST /v1/sessions/{sessionID}/explorer/load", handler.requireSession(handler.LoadExplorer))
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("GET /v1/sessions/{sessionID}/players", handler.requireSession(handler.GetPlayers))
	mux.Handle("POST /v1/sessions/{sessionID}/players/search", handler.requireSession(handler.SearchPlayers))
	mux.Handle("POST /v1/sessions/{sessionID}/players/select", handler.requireSession(handler.SelectPlayer))
	mux.Handle("PUT /v1/sessions/{sessionID}/players/season", handler.requireSession(handler.SetPlayerSeason))
	mux.Handle("DELETE /v1/sessions/{sessionID}/players/recent", handler.requireSession(handler.ClearRecentSearches))
}

func registerPerformanceRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("GET /v1/sessions/{sessionID}/performance", handler.requireSession(handler.GetPerformance))
	mux.Handle("POST /v1/sessions/{sessionID}/performance/refresh", handler.requireSession(handler.RefreshPerformance))
	mux.Handle("PUT /v1/sessions/{sessionID}/performance/alert-window", handler.requireSession(handler.SetAlertWindow))
}
