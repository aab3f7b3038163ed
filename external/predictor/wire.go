package predictor

import (
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/monitoring"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/prediction"
	"github.com/riskibarqy/courtside/internal/domain/team"
)

type healthDTO struct {
	Status        string  `json:"status"`
	Timestamp     string  `json:"timestamp"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	ModelsLoaded  int     `json:"models_loaded"`
	Version       string  `json:"version"`
}

func (d healthDTO) toDomain() monitoring.Health {
	return monitoring.Health{
		Status:        d.Status,
		UptimeSeconds: d.UptimeSeconds,
		ModelsLoaded:  d.ModelsLoaded,
		Version:       d.Version,
	}
}

type matchupRequest struct {
	HomeTeam     string `json:"home_team"`
	AwayTeam     string `json:"away_team"`
	ModelName    string `json:"model_name,omitempty"`
	ModelVersion string `json:"model_version,omitempty"`
}

type predictionDTO struct {
	Prediction         string  `json:"prediction"`
	Confidence         float64 `json:"confidence"`
	HomeWinProbability float64 `json:"home_win_probability"`
	AwayWinProbability float64 `json:"away_win_probability"`
	HomeTeam           string  `json:"home_team"`
	AwayTeam           string  `json:"away_team"`
	ModelUsed          string  `json:"model_used"`
	Timestamp          string  `json:"timestamp"`
}

func (d predictionDTO) toDomain() prediction.Result {
	return prediction.Result{
		Prediction:         prediction.Outcome(strings.ToLower(strings.TrimSpace(d.Prediction))),
		Confidence:         d.Confidence,
		HomeWinProbability: d.HomeWinProbability,
		AwayWinProbability: d.AwayWinProbability,
		HomeTeam:           d.HomeTeam,
		AwayTeam:           d.AwayTeam,
		ModelUsed:          d.ModelUsed,
		Timestamp:          parseTime(d.Timestamp),
	}
}

func fromResult(r prediction.Result) predictionDTO {
	out := predictionDTO{
		Prediction:         string(r.Prediction),
		Confidence:         r.Confidence,
		HomeWinProbability: r.HomeWinProbability,
		AwayWinProbability: r.AwayWinProbability,
		HomeTeam:           r.HomeTeam,
		AwayTeam:           r.AwayTeam,
		ModelUsed:          r.ModelUsed,
	}
	if !r.Timestamp.IsZero() {
		out.Timestamp = r.Timestamp.UTC().Format(time.RFC3339)
	}
	return out
}

type modelsEnvelope struct {
	Models []modelDTO `json:"models"`
	Total  int        `json:"total"`
}

type modelDTO struct {
	Name      string             `json:"name"`
	Version   string             `json:"version"`
	Type      string             `json:"type"`
	Metrics   map[string]float64 `json:"metrics"`
	CreatedAt string             `json:"created_at"`
}

func (d modelDTO) toDomain() monitoring.ModelInfo {
	return monitoring.ModelInfo{
		Name:      d.Name,
		Version:   d.Version,
		Type:      d.Type,
		Metrics:   d.Metrics,
		CreatedAt: parseTime(d.CreatedAt),
	}
}

type playerSearchEnvelope struct {
	Players    []playerDTO `json:"players"`
	DataSource string      `json:"data_source"`
	Timestamp  string      `json:"timestamp"`
}

type playerDTO struct {
	ID       any    `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Team     string `json:"team"`
	Position string `json:"position"`
}

func (d playerDTO) toDomain() player.Player {
	name := d.Name
	if name == "" {
		name = d.FullName
	}
	return player.Player{ID: idString(d.ID), Name: name, Team: d.Team, Position: d.Position}
}

type playerStatsDTO struct {
	PlayerID    any            `json:"player_id"`
	Season      string         `json:"season"`
	GamesPlayed int            `json:"games_played"`
	Averages    map[string]any `json:"averages"`
}

func (d playerStatsDTO) toDomain() player.Stats {
	return player.Stats{
		PlayerID:    idString(d.PlayerID),
		Season:      d.Season,
		GamesPlayed: d.GamesPlayed,
		Averages:    averagesFrom(d.Averages),
	}
}

// averagesFrom maps the known box-score keys and keeps every other numeric one in Extra.
func averagesFrom(raw map[string]any) player.Averages {
	var avg player.Averages
	known := map[string]*float64{
		"pts":     &avg.Pts,
		"reb":     &avg.Reb,
		"ast":     &avg.Ast,
		"stl":     &avg.Stl,
		"blk":     &avg.Blk,
		"fg_pct":  &avg.FGPct,
		"fg3_pct": &avg.FG3Pct,
		"ft_pct":  &avg.FTPct,
		"min":     &avg.Minutes,
		"minutes": &avg.Minutes,
	}
	for key, value := range raw {
		f, ok := toFloat(value)
		if !ok {
			continue
		}
		if dst, isKnown := known[strings.ToLower(key)]; isKnown {
			*dst = f
			continue
		}
		if avg.Extra == nil {
			avg.Extra = make(map[string]float64)
		}
		avg.Extra[key] = f
	}
	return avg
}

type gamesEnvelope struct {
	Games []gameDTO `json:"games"`
	Total *int      `json:"total"`
}

type gameDTO struct {
	GameID    any    `json:"game_id"`
	GameDate  string `json:"game_date"`
	Season    string `json:"season"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
}

func (d gameDTO) toDomain() game.Game {
	return game.Game{
		ID:        idString(d.GameID),
		Date:      parseTime(d.GameDate),
		Season:    d.Season,
		HomeTeam:  d.HomeTeam,
		AwayTeam:  d.AwayTeam,
		HomeScore: d.HomeScore,
		AwayScore: d.AwayScore,
	}
}

type teamStatsDTO struct {
	Team          string  `json:"team"`
	Season        string  `json:"season"`
	GamesPlayed   int     `json:"games_played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"win_percentage"`
}

func (d teamStatsDTO) toDomain() team.Stats {
	return team.Stats{
		Team:          d.Team,
		Season:        d.Season,
		GamesPlayed:   d.GamesPlayed,
		Wins:          d.Wins,
		Losses:        d.Losses,
		WinPercentage: d.WinPercentage,
	}
}

type performanceEnvelope struct {
	Models []performanceDTO `json:"models"`
}

type performanceDTO struct {
	Model     string  `json:"model"`
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1_score"`
	ROCAUC    float64 `json:"roc_auc"`
}

func (d performanceDTO) toDomain() monitoring.ModelPerformance {
	return monitoring.ModelPerformance{
		Model:     d.Model,
		Accuracy:  d.Accuracy,
		Precision: d.Precision,
		Recall:    d.Recall,
		F1:        d.F1,
		ROCAUC:    d.ROCAUC,
	}
}

type driftDTO struct {
	DriftDetected bool              `json:"drift_detected"`
	DriftScore    float64           `json:"drift_score"`
	Threshold     float64           `json:"threshold"`
	Features      []featureDriftDTO `json:"features"`
	CheckedAt     string            `json:"checked_at"`
}

type featureDriftDTO struct {
	Feature string  `json:"feature"`
	Score   float64 `json:"score"`
	Drifted bool    `json:"drifted"`
}

func (d driftDTO) toDomain() monitoring.DriftStatus {
	features := make([]monitoring.FeatureDrift, 0, len(d.Features))
	for _, f := range d.Features {
		features = append(features, monitoring.FeatureDrift{Feature: f.Feature, Score: f.Score, Drifted: f.Drifted})
	}
	return monitoring.DriftStatus{
		DriftDetected: d.DriftDetected,
		Score:         d.DriftScore,
		Threshold:     d.Threshold,
		Features:      features,
		CheckedAt:     parseTime(d.CheckedAt),
	}
}

type alertsEnvelope struct {
	Alerts []alertDTO `json:"alerts"`
}

type alertDTO struct {
	ID        any    `json:"id"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Resolved  bool   `json:"resolved"`
}

func (d alertDTO) toDomain() monitoring.Alert {
	return monitoring.Alert{
		ID:        idString(d.ID),
		Severity:  monitoring.Severity(strings.ToLower(strings.TrimSpace(d.Severity))),
		Message:   d.Message,
		Model:     d.Model,
		CreatedAt: parseTime(d.CreatedAt),
		Resolved:  d.Resolved,
	}
}

type exportRequest struct {
	Predictions []exportRowDTO `json:"predictions"`
}

type exportRowDTO struct {
	predictionDTO
	RecordedAt string `json:"recorded_at"`
}

func idString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(id)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(id, 10)
	case int:
		return strconv.Itoa(id)
	default:
		return ""
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
