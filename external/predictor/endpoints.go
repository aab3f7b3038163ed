package predictor

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/monitoring"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/prediction"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/sourcegraph/conc/iter"
	"github.com/valyala/fasthttp"
)

const modelsCacheKey = "models"

func (c *Client) Health(ctx context.Context) (monitoring.Health, error) {
	resp, err := c.do(ctx, request{method: fasthttp.MethodGet, path: "/api/health"})
	if err != nil {
		return monitoring.Health{}, err
	}
	var decoded healthDTO
	if err := decode(resp.body, &decoded); err != nil {
		return monitoring.Health{}, err
	}
	return decoded.toDomain(), nil
}

func (c *Client) PredictSimple(ctx context.Context, home, away string) (prediction.Result, error) {
	var decoded predictionDTO
	body := matchupRequest{HomeTeam: home, AwayTeam: away}
	if err := c.postJSON(ctx, "/api/predict/simple", body, &decoded); err != nil {
		return prediction.Result{}, err
	}
	return decoded.toDomain(), nil
}

// CompareModels asks every available model for the same matchup. Results keep the order of
// the models list.
func (c *Client) CompareModels(ctx context.Context, home, away string) ([]prediction.ModelComparison, error) {
	models, err := c.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models for comparison: %w", err)
	}
	if len(models) == 0 {
		return []prediction.ModelComparison{}, nil
	}

	return iter.MapErr(models, func(m *monitoring.ModelInfo) (prediction.ModelComparison, error) {
		var decoded predictionDTO
		body := matchupRequest{HomeTeam: home, AwayTeam: away, ModelName: m.Name, ModelVersion: m.Version}
		if err := c.postJSON(ctx, "/api/predict", body, &decoded); err != nil {
			return prediction.ModelComparison{}, fmt.Errorf("model %s: %w", m.ID(), err)
		}
		return prediction.ModelComparison{Model: m.ID(), Result: decoded.toDomain()}, nil
	})
}

func (c *Client) SearchPlayers(ctx context.Context, query string, limit int) (player.SearchResult, error) {
	params := url.Values{}
	params.Set("q", strings.TrimSpace(query))
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var decoded playerSearchEnvelope
	if _, err := c.getJSON(ctx, "/api/players/search", params, &decoded); err != nil {
		return player.SearchResult{}, err
	}

	players := make([]player.Player, 0, len(decoded.Players))
	for _, p := range decoded.Players {
		players = append(players, p.toDomain())
	}
	return player.SearchResult{
		Players:    players,
		DataSource: decoded.DataSource,
		Timestamp:  parseTime(decoded.Timestamp),
	}, nil
}

func (c *Client) GetPlayerStats(ctx context.Context, playerID, season string) (player.Stats, error) {
	params := url.Values{}
	if season = strings.TrimSpace(season); season != "" {
		params.Set("season", season)
	}

	var decoded playerStatsDTO
	path := "/api/players/" + url.PathEscape(strings.TrimSpace(playerID)) + "/stats"
	if _, err := c.getJSON(ctx, path, params, &decoded); err != nil {
		return player.Stats{}, err
	}
	return decoded.toDomain(), nil
}

// GetGames prefers the X-Total-Count header, then a total field in the body, as the exact
// listing size.
func (c *Client) GetGames(ctx context.Context, filter game.Filter) (game.Page, error) {
	if err := filter.Validate(); err != nil {
		return game.Page{}, err
	}
	params := url.Values{}
	params.Set("season", filter.Season)
	params.Set("limit", strconv.Itoa(filter.Limit))
	params.Set("offset", strconv.Itoa(filter.Offset))
	if filter.Team != "" {
		params.Set("team", filter.Team)
	}

	var decoded gamesEnvelope
	resp, err := c.getJSON(ctx, "/api/games", params, &decoded)
	if err != nil {
		return game.Page{}, err
	}

	games := make([]game.Game, 0, len(decoded.Games))
	for _, g := range decoded.Games {
		games = append(games, g.toDomain())
	}
	page := game.Page{Games: games, Total: resp.totalCount}
	if page.Total == nil && decoded.Total != nil && *decoded.Total >= 0 {
		total := *decoded.Total
		page.Total = &total
	}
	return page, nil
}

func (c *Client) GetTeamStats(ctx context.Context, abbr, season string) (team.Stats, error) {
	params := url.Values{}
	if season = strings.TrimSpace(season); season != "" {
		params.Set("season", season)
	}

	var decoded teamStatsDTO
	abbr = team.Normalize(abbr)
	if _, err := c.getJSON(ctx, "/api/teams/"+url.PathEscape(abbr)+"/stats", params, &decoded); err != nil {
		return team.Stats{}, err
	}
	stats := decoded.toDomain()
	if stats.Team == "" {
		stats.Team = abbr
	}
	return stats, nil
}

// ListModels is cached; the model registry changes only on deploys.
func (c *Client) ListModels(ctx context.Context) ([]monitoring.ModelInfo, error) {
	return c.models.GetOrLoad(ctx, modelsCacheKey, func(ctx context.Context) ([]monitoring.ModelInfo, error) {
		var decoded modelsEnvelope
		if _, err := c.getJSON(ctx, "/api/models", nil, &decoded); err != nil {
			return nil, err
		}
		models := make([]monitoring.ModelInfo, 0, len(decoded.Models))
		for _, m := range decoded.Models {
			models = append(models, m.toDomain())
		}
		return models, nil
	})
}

func (c *Client) GetModelPerformance(ctx context.Context) ([]monitoring.ModelPerformance, error) {
	var decoded performanceEnvelope
	if _, err := c.getJSON(ctx, "/api/models/performance", nil, &decoded); err != nil {
		return nil, err
	}
	out := make([]monitoring.ModelPerformance, 0, len(decoded.Models))
	for _, p := range decoded.Models {
		out = append(out, p.toDomain())
	}
	return out, nil
}

func (c *Client) GetDriftStatus(ctx context.Context) (monitoring.DriftStatus, error) {
	var decoded driftDTO
	if _, err := c.getJSON(ctx, "/api/monitoring/drift", nil, &decoded); err != nil {
		return monitoring.DriftStatus{}, err
	}
	return decoded.toDomain(), nil
}

func (c *Client) GetMonitoringAlerts(ctx context.Context, hours int) ([]monitoring.Alert, error) {
	params := url.Values{}
	if hours > 0 {
		params.Set("hours", strconv.Itoa(hours))
	}

	var decoded alertsEnvelope
	if _, err := c.getJSON(ctx, "/api/monitoring/alerts", params, &decoded); err != nil {
		return nil, err
	}
	out := make([]monitoring.Alert, 0, len(decoded.Alerts))
	for _, a := range decoded.Alerts {
		out = append(out, a.toDomain())
	}
	return out, nil
}

// ExportPredictionsCSV has the service render history as CSV and returns the file bytes as is.
func (c *Client) ExportPredictionsCSV(ctx context.Context, history []prediction.HistoryEntry) ([]byte, error) {
	rows := make([]exportRowDTO, 0, len(history))
	for _, entry := range history {
		row := exportRowDTO{predictionDTO: fromResult(entry.Result)}
		row.HomeTeam = entry.HomeTeam
		row.AwayTeam = entry.AwayTeam
		if !entry.Timestamp.IsZero() {
			row.RecordedAt = entry.Timestamp.UTC().Format(time.RFC3339)
		}
		rows = append(rows, row)
	}

	resp, err := c.do(ctx, request{
		method: fasthttp.MethodPost,
		path:   "/api/predictions/export",
		body:   exportRequest{Predictions: rows},
		auth:   true,
		accept: "text/csv",
	})
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}
