package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/monitoring"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/prediction"
	"github.com/riskibarqy/courtside/internal/infrastructure/export"
	"github.com/riskibarqy/courtside/internal/infrastructure/recentsearch"
	usecasemock "github.com/riskibarqy/courtside/internal/mocks/usecase"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/platform/runner"
	"github.com/riskibarqy/courtside/internal/usecase"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var handlerNow = time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

type testEnvelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       map[string]any `json:"data"`
	Error      *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

type testAPI struct {
	t       *testing.T
	router  http.Handler
	port    *usecasemock.DataPort
	session string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	port := usecasemock.NewDataPort(t)
	deps := usecase.PageDeps{
		Port:     port,
		Runner:   runner.Inline{},
		Recent:   usecase.NewRecentSearches(recentsearch.NewMemoryStore(), logging.NewNop()),
		Exporter: export.NewXLSXExporter(),
		Logger:   logging.NewNop(),
		Now:      func() time.Time { return handlerNow },
	}
	sessions := usecase.NewSessionManager(deps, nil, time.Minute)
	router := NewRouter(NewHandler(sessions, logging.NewNop()), logging.NewNop(), true, []string{"*"})
	return &testAPI{t: t, router: router, port: port}
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(deviceIDHeader, "device-1")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) decode(rec *httptest.ResponseRecorder) testEnvelope {
	a.t.Helper()

	var env testEnvelope
	require.NoError(a.t, sonic.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func (a *testAPI) openSession() string {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/v1/sessions", "")
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	env := a.decode(rec)
	id, _ := env.Data["id"].(string)
	require.NotEmpty(a.t, id)
	require.Equal(a.t, "device-1", env.Data["owner"])
	a.session = id
	return id
}

func (a *testAPI) path(suffix string) string {
	return "/v1/sessions/" + a.session + suffix
}

func bosLal() prediction.Result {
	return prediction.Result{
		Prediction:         prediction.OutcomeHome,
		Confidence:         0.67,
		HomeWinProbability: 0.67,
		AwayWinProbability: 0.33,
		HomeTeam:           "BOS",
		AwayTeam:           "LAL",
		ModelUsed:          "game_logistic",
	}
}

func TestPredictionsFlow_SubmitShareAndExport(t *testing.T) {
	api := newTestAPI(t)
	api.port.On("PredictSimple", mock.Anything, "BOS", "LAL").Return(bosLal(), nil).Once()
	api.port.On("ExportPredictionsCSV", mock.Anything, mock.MatchedBy(func(h []prediction.HistoryEntry) bool {
		return len(h) == 1 && h[0].HomeTeam == "BOS"
	})).Return([]byte("home,away\nBOS,LAL\n"), nil).Once()
	api.openSession()

	rec := api.do(http.MethodPut, api.path("/predictions/matchup"), `{"home_team":"bos","away_team":"lal"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(http.MethodPost, api.path("/predictions/submit"), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := api.decode(rec)
	pred, ok := env.Data["prediction"].(map[string]any)
	require.True(t, ok, "expected prediction in %v", env.Data)
	require.Equal(t, "BOS", pred["winner"])
	require.Equal(t, "67.0%", env.Data["confidence_text"])
	gauge := env.Data["gauge"].(map[string]any)
	require.EqualValues(t, 67, gauge["home_percent"])
	require.Len(t, env.Data["history"], 1)

	rec = api.do(http.MethodGet, api.path("/predictions/share"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, api.decode(rec).Data["text"], "BOS vs LAL: BOS to win")

	rec = api.do(http.MethodGet, api.path("/predictions/export?format=csv"), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, `attachment; filename="predictions.csv"`, rec.Header().Get("Content-Disposition"))
	require.Equal(t, "home,away\nBOS,LAL\n", rec.Body.String())

	rec = api.do(http.MethodGet, api.path("/predictions/export?format=xlsx"), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.True(t, strings.HasPrefix(rec.Body.String(), "PK"), "xlsx is a zip archive")

	rec = api.do(http.MethodGet, api.path("/predictions/gauge.svg"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
}

func TestPredictions_RejectsSameTeam(t *testing.T) {
	api := newTestAPI(t)
	api.openSession()

	rec := api.do(http.MethodPut, api.path("/predictions/matchup"), `{"home_team":"BOS","away_team":"BOS"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "INVALID_ARGUMENT", api.decode(rec).Error.Status)

	rec = api.do(http.MethodPut, api.path("/predictions/matchup"), `{"home_team":"BOS"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPut, api.path("/predictions/matchup"), `{"home_team":"BOS","away_team":"LAL","extra":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code, "unknown fields are rejected")
}

func TestPredictions_ExportBeforeAnyPredictionNotifies(t *testing.T) {
	api := newTestAPI(t)
	api.openSession()

	rec := api.do(http.MethodGet, api.path("/predictions/export?format=csv"), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Make a prediction first.", api.decode(rec).Error.Message)

	rec = api.do(http.MethodGet, api.path("/predictions/export?format=pdf"), "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredictions_ServiceFailureShowsInState(t *testing.T) {
	api := newTestAPI(t)
	api.port.On("PredictSimple", mock.Anything, "BOS", "LAL").Return(prediction.Result{}, context.DeadlineExceeded).Once()
	api.openSession()

	require.Equal(t, http.StatusOK, api.do(http.MethodPut, api.path("/predictions/matchup"), `{"home_team":"BOS","away_team":"LAL"}`).Code)

	rec := api.do(http.MethodPost, api.path("/predictions/submit"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	env := api.decode(rec)
	require.Equal(t, "The prediction service took too long to respond.", env.Data["error"])
	require.Nil(t, env.Data["prediction"])

	rec = api.do(http.MethodDelete, api.path("/predictions/error"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	_, hasError := api.decode(rec).Data["error"]
	require.False(t, hasError)
}

func TestSessions_UnknownAndClosed(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/v1/sessions/does-not-exist/predictions", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "NOT_FOUND", api.decode(rec).Error.Status)

	api.openSession()
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, api.path(""), "").Code)
	require.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, api.path(""), "").Code)
	require.Equal(t, http.StatusNotFound, api.do(http.MethodGet, api.path("/explorer"), "").Code)
}

func TestRenderGauge_Stateless(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/v1/gauge.svg?home=0.62&home_team=BOS&away_team=LAL", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.HasPrefix(rec.Body.String(), "<svg"))
	require.Contains(t, rec.Body.String(), "62%")

	rec = api.do(http.MethodGet, "/v1/gauge.svg?home=abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/v1/gauge.svg", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExplorer_FiltersPagingAndSort(t *testing.T) {
	api := newTestAPI(t)
	total := 3
	games := []game.Game{
		{ID: "g1", Date: handlerNow.Add(-48 * time.Hour), Season: "2023-24", HomeTeam: "MIA", AwayTeam: "BOS"},
		{ID: "g2", Date: handlerNow.Add(-24 * time.Hour), Season: "2023-24", HomeTeam: "NYK", AwayTeam: "MIA"},
		{ID: "g3", Date: handlerNow, Season: "2023-24", HomeTeam: "MIA", AwayTeam: "LAL"},
	}
	api.port.On("GetGames", mock.Anything, game.Filter{Team: "MIA", Season: "2023-24", Limit: 25, Offset: 0}).
		Return(game.Page{Games: games, Total: &total}, nil).Once()
	api.openSession()

	rec := api.do(http.MethodPut, api.path("/explorer/filters"), `{"team":"mia","season":"2023-24"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := api.decode(rec)
	require.EqualValues(t, 3, env.Data["total_games"])
	require.EqualValues(t, 1, env.Data["total_pages"])
	first := env.Data["games"].([]any)[0].(map[string]any)
	require.Equal(t, "g3", first["id"], "date descending by default")

	rec = api.do(http.MethodPut, api.path("/explorer/sort"), `{"column":"home_team","direction":"asc"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first = api.decode(rec).Data["games"].([]any)[0].(map[string]any)
	require.Equal(t, "MIA", first["home_team"])

	rec = api.do(http.MethodPut, api.path("/explorer/sort"), `{"column":"attendance"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPut, api.path("/explorer/page-size"), `{"page_size":30}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPut, api.path("/explorer/page"), `{"page":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlayers_SearchRecordsRecentAndRejectsBlank(t *testing.T) {
	api := newTestAPI(t)
	tatum := player.Player{ID: "1628369", Name: "Jayson Tatum", Team: "BOS"}
	api.port.On("SearchPlayers", mock.Anything, "tatum", 20).
		Return(player.SearchResult{Players: []player.Player{tatum}, DataSource: "nba_api"}, nil).Once()
	api.port.On("GetPlayerStats", mock.Anything, tatum.ID, "2024-25").
		Return(player.Stats{GamesPlayed: 74, Averages: player.Averages{Pts: 26.9}}, nil).Once()
	api.openSession()

	rec := api.do(http.MethodPost, api.path("/players/search"), `{"query":"  tatum "}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := api.decode(rec)
	require.Equal(t, []any{"tatum"}, env.Data["recent"])
	require.Len(t, env.Data["players"], 1)

	rec = api.do(http.MethodPost, api.path("/players/select"), `{"player_id":"1628369"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	stats := api.decode(rec).Data["stats"].(map[string]any)
	require.EqualValues(t, 74, stats["games_played"])

	rec = api.do(http.MethodPost, api.path("/players/select"), `{"player_id":"42"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodPost, api.path("/players/search"), `{"query":"   "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodDelete, api.path("/players/recent"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, api.decode(rec).Data["recent"])
}

func TestPerformance_RefreshAndAlertWindow(t *testing.T) {
	api := newTestAPI(t)
	api.port.On("ListModels", mock.Anything).Return([]monitoring.ModelInfo{{Name: "game_xgboost"}}, nil)
	api.port.On("GetModelPerformance", mock.Anything).Return([]monitoring.ModelPerformance{{Model: "game_xgboost", Accuracy: 0.7}}, nil)
	api.port.On("GetDriftStatus", mock.Anything).Return(monitoring.DriftStatus{}, nil)
	api.port.On("GetMonitoringAlerts", mock.Anything, 24).Return([]monitoring.Alert{}, nil).Once()
	api.port.On("GetMonitoringAlerts", mock.Anything, 72).Return([]monitoring.Alert{
		{ID: "a1", Severity: monitoring.SeverityCritical, Message: "accuracy dropped"},
	}, nil).Once()
	api.openSession()

	rec := api.do(http.MethodPost, api.path("/performance/refresh"), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := api.decode(rec)
	require.Equal(t, true, env.Data["loaded"])
	summary := env.Data["summary"].(map[string]any)
	require.Equal(t, "game_xgboost", summary["best_model"])

	rec = api.do(http.MethodPut, api.path("/performance/alert-window"), `{"hours":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPut, api.path("/performance/alert-window"), `{"hours":72}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env = api.decode(rec)
	require.EqualValues(t, 72, env.Data["alert_hours"])
	require.Len(t, env.Data["alerts"], 1)
}

func TestUpstreamHealth_MapsDependencyFailure(t *testing.T) {
	api := newTestAPI(t)
	api.port.On("Health", mock.Anything).Return(monitoring.Health{}, errors.New("connection refused")).Once()

	rec := api.do(http.MethodGet, "/v1/upstream/health", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "UNAVAILABLE", api.decode(rec).Error.Status)
}

func TestSystemRoutes(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", api.decode(rec).Data["status"])

	rec = api.do(http.MethodGet, "/openapi.yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Courtside API")

	rec = api.do(http.MethodGet, "/v1/teams", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
