package usecase

import (
	"context"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/monitoring"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/prediction"
	"github.com/riskibarqy/courtside/internal/domain/team"
)

// DataPort is the remote prediction and statistics service. Authentication is its own concern.
type DataPort interface {
	Health(ctx context.Context) (monitoring.Health, error)
	PredictSimple(ctx context.Context, home, away string) (prediction.Result, error)
	CompareModels(ctx context.Context, home, away string) ([]prediction.ModelComparison, error)
	SearchPlayers(ctx context.Context, query string, limit int) (player.SearchResult, error)
	GetPlayerStats(ctx context.Context, playerID, season string) (player.Stats, error)
	GetGames(ctx context.Context, filter game.Filter) (game.Page, error)
	GetTeamStats(ctx context.Context, team, season string) (team.Stats, error)
	ListModels(ctx context.Context) ([]monitoring.ModelInfo, error)
	GetModelPerformance(ctx context.Context) ([]monitoring.ModelPerformance, error)
	GetDriftStatus(ctx context.Context) (monitoring.DriftStatus, error)
	GetMonitoringAlerts(ctx context.Context, hours int) ([]monitoring.Alert, error)
	ExportPredictionsCSV(ctx context.Context, history []prediction.HistoryEntry) ([]byte, error)
}

// HistoryExporter renders prediction history to a spreadsheet without calling the service.
type HistoryExporter interface {
	ExportXLSX(history []prediction.HistoryEntry) ([]byte, error)
}
