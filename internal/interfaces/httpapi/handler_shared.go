package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/courtside/internal/controller/players"
	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/monitoring"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/prediction"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/usecase"
	"github.com/riskibarqy/courtside/internal/view/gauge"
)

const maxRequestBodyBytes = 64 << 10

type Handler struct {
	sessions  *usecase.SessionManager
	logger    *logging.Logger
	validator *validator.Validate
	geometry  gauge.Geometry
}

func NewHandler(sessions *usecase.SessionManager, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		sessions:  sessions,
		logger:    logger.Named("httpapi"),
		validator: validator.New(),
		geometry:  gauge.DefaultGeometry(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a JSON body into dst and validates it. An empty body is accepted only
// when optional is set.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any, optional bool) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if !(optional && errors.Is(err, io.EOF)) {
			return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
		}
	}
	return h.validateRequest(ctx, dst)
}

// requireSession resolves {sessionID} and stores the session in the request context.
func (h *Handler) requireSession(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.requireSession")
		defer span.End()

		s, err := h.sessions.Get(ctx, r.PathValue("sessionID"))
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		next(w, r.WithContext(withSession(ctx, s)))
	})
}

func mustSession(ctx context.Context) *usecase.Session {
	s, ok := sessionFromContext(ctx)
	if !ok {
		panic("httpapi: session route registered without requireSession")
	}
	return s
}

// notifiedError presents a user-facing notification while keeping the cause for status mapping.
type notifiedError struct {
	cause error
}

func (e notifiedError) Error() string { return usecase.NotificationFor(e.cause).Message }
func (e notifiedError) Unwrap() error { return e.cause }

// acceptedStatus is 202 while a request started by the call is still in flight.
func acceptedStatus(loading bool) int {
	if loading {
		return http.StatusAccepted
	}
	return http.StatusOK
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

type sessionDTO struct {
	ID        string `json:"id"`
	Owner     string `json:"owner,omitempty"`
	CreatedAt string `json:"created_at"`
}

type healthDTO struct {
	Status        string  `json:"status"`
	Healthy       bool    `json:"healthy"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	ModelsLoaded  int     `json:"models_loaded"`
	Version       string  `json:"version,omitempty"`
}

type teamDTO struct {
	Abbr           string `json:"abbr"`
	Name           string `json:"name"`
	Conference     string `json:"conference"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

type teamStatsDTO struct {
	Team          string  `json:"team"`
	Season        string  `json:"season"`
	GamesPlayed   int     `json:"games_played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"win_percentage"`
}

type matchupDTO struct {
	Home string `json:"home_team"`
	Away string `json:"away_team"`
}

type predictionDTO struct {
	Prediction         string  `json:"prediction"`
	Winner             string  `json:"winner"`
	Confidence         float64 `json:"confidence"`
	HomeWinProbability float64 `json:"home_win_probability"`
	AwayWinProbability float64 `json:"away_win_probability"`
	HomeTeam           string  `json:"home_team"`
	AwayTeam           string  `json:"away_team"`
	ModelUsed          string  `json:"model_used,omitempty"`
	Timestamp          string  `json:"timestamp,omitempty"`
}

type comparisonDTO struct {
	Model      string        `json:"model"`
	Label      string        `json:"label"`
	Color      string        `json:"color"`
	Prediction predictionDTO `json:"prediction"`
}

type historyDTO struct {
	HomeTeam   string        `json:"home_team"`
	AwayTeam   string        `json:"away_team"`
	RecordedAt string        `json:"recorded_at"`
	Prediction predictionDTO `json:"prediction"`
}

type gaugeDTO struct {
	Probability  float64 `json:"probability"`
	HomeEndAngle float64 `json:"home_end_angle"`
	TrackArc     string  `json:"track_arc"`
	HomeArc      string  `json:"home_arc"`
	AwayArc      string  `json:"away_arc"`
	NeedlePath   string  `json:"needle_path"`
	HomePercent  int     `json:"home_percent"`
	AwayPercent  int     `json:"away_percent"`
	HomeLabel    string  `json:"home_label"`
	AwayLabel    string  `json:"away_label"`
	HomeColor    string  `json:"home_color"`
	AwayColor    string  `json:"away_color"`
}

type predictionsViewDTO struct {
	Matchup        matchupDTO      `json:"matchup"`
	Loading        bool            `json:"loading"`
	Comparing      bool            `json:"comparing"`
	Error          string          `json:"error,omitempty"`
	Prediction     *predictionDTO  `json:"prediction"`
	Comparisons    []comparisonDTO `json:"comparisons"`
	History        []historyDTO    `json:"history"`
	Gauge          gaugeDTO        `json:"gauge"`
	ConfidenceText string          `json:"confidence_text"`
	Animating      bool            `json:"animating"`
}

type gameDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Season      string `json:"season"`
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	HomeScore   *int   `json:"home_score"`
	AwayScore   *int   `json:"away_score"`
	TotalPoints int    `json:"total_points"`
	Played      bool   `json:"played"`
}

type explorerViewDTO struct {
	Team          string    `json:"team"`
	Season        string    `json:"season"`
	Games         []gameDTO `json:"games"`
	Empty         bool      `json:"empty"`
	TotalGames    int       `json:"total_games"`
	TotalPages    int       `json:"total_pages"`
	TotalExact    bool      `json:"total_exact"`
	Loaded        bool      `json:"loaded"`
	CurrentPage   int       `json:"current_page"`
	PageSize      int       `json:"page_size"`
	SortColumn    string    `json:"sort_column"`
	SortDirection string    `json:"sort_direction"`
	Loading       bool      `json:"loading"`
	Error         string    `json:"error,omitempty"`
}

type playerDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Team     string `json:"team,omitempty"`
	Position string `json:"position,omitempty"`
}

type averagesDTO struct {
	Pts     float64            `json:"pts"`
	Reb     float64            `json:"reb"`
	Ast     float64            `json:"ast"`
	Stl     float64            `json:"stl"`
	Blk     float64            `json:"blk"`
	FGPct   float64            `json:"fg_pct"`
	FG3Pct  float64            `json:"fg3_pct"`
	FTPct   float64            `json:"ft_pct"`
	Minutes float64            `json:"minutes"`
	Extra   map[string]float64 `json:"extra,omitempty"`
}

type playerStatsDTO struct {
	PlayerID    string      `json:"player_id"`
	Season      string      `json:"season"`
	GamesPlayed int         `json:"games_played"`
	Averages    averagesDTO `json:"averages"`
}

type playersViewDTO struct {
	Query         string          `json:"query"`
	SearchedQuery string          `json:"searched_query,omitempty"`
	Players       []playerDTO     `json:"players"`
	DataSource    string          `json:"data_source,omitempty"`
	Searching     bool            `json:"searching"`
	NoResults     bool            `json:"no_results"`
	SearchNotice  string          `json:"search_notice,omitempty"`
	Error         string          `json:"error,omitempty"`
	Selected      *playerDTO      `json:"selected"`
	Season        string          `json:"season"`
	Stats         *playerStatsDTO `json:"stats"`
	StatsLoading  bool            `json:"stats_loading"`
	StatsNotice   string          `json:"stats_notice,omitempty"`
	StatsError    string          `json:"stats_error,omitempty"`
	Recent        []string        `json:"recent"`
}

type modelDTO struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Version   string             `json:"version,omitempty"`
	Type      string             `json:"type,omitempty"`
	Label     string             `json:"label"`
	Color     string             `json:"color"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
	CreatedAt string             `json:"created_at,omitempty"`
}

type modelPerformanceDTO struct {
	Model     string  `json:"model"`
	Label     string  `json:"label"`
	Color     string  `json:"color"`
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1_score"`
	ROCAUC    float64 `json:"roc_auc"`
}

type featureDriftDTO struct {
	Feature string  `json:"feature"`
	Score   float64 `json:"score"`
	Drifted bool    `json:"drifted"`
}

type driftDTO struct {
	DriftDetected bool              `json:"drift_detected"`
	Score         float64           `json:"drift_score"`
	Threshold     float64           `json:"threshold"`
	Features      []featureDriftDTO `json:"features"`
	CheckedAt     string            `json:"checked_at,omitempty"`
}

type alertDTO struct {
	ID        string `json:"id"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Model     string `json:"model,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	Resolved  bool   `json:"resolved"`
}

type performanceSummaryDTO struct {
	BestModel      string  `json:"best_model,omitempty"`
	BestAccuracy   float64 `json:"best_accuracy"`
	MeanAccuracy   float64 `json:"mean_accuracy"`
	MeanF1         float64 `json:"mean_f1"`
	ActiveAlerts   int     `json:"active_alerts"`
	CriticalAlerts int     `json:"critical_alerts"`
	DriftDetected  bool    `json:"drift_detected"`
}

type performanceViewDTO struct {
	AlertHours  int                   `json:"alert_hours"`
	Loading     bool                  `json:"loading"`
	Error       string                `json:"error,omitempty"`
	FetchedAt   string                `json:"fetched_at,omitempty"`
	Loaded      bool                  `json:"loaded"`
	Summary     performanceSummaryDTO `json:"summary"`
	Models      []modelDTO            `json:"models"`
	Performance []modelPerformanceDTO `json:"performance"`
	Drift       *driftDTO             `json:"drift"`
	Alerts      []alertDTO            `json:"alerts"`
}

func sessionToDTO(s *usecase.Session) sessionDTO {
	return sessionDTO{ID: s.ID, Owner: s.Owner, CreatedAt: formatTime(s.CreatedAt)}
}

func healthToDTO(v monitoring.Health) healthDTO {
	return healthDTO{
		Status:        v.Status,
		Healthy:       v.Healthy(),
		UptimeSeconds: v.UptimeSeconds,
		ModelsLoaded:  v.ModelsLoaded,
		Version:       v.Version,
	}
}

func teamToDTO(v team.Team) teamDTO {
	style := team.StyleFor(v.Abbr)
	return teamDTO{
		Abbr:           v.Abbr,
		Name:           v.Name,
		Conference:     v.Conference,
		PrimaryColor:   style.Primary,
		SecondaryColor: style.Secondary,
	}
}

func teamStatsToDTO(v team.Stats) teamStatsDTO {
	return teamStatsDTO{
		Team:          v.Team,
		Season:        v.Season,
		GamesPlayed:   v.GamesPlayed,
		Wins:          v.Wins,
		Losses:        v.Losses,
		WinPercentage: v.WinPercentage,
	}
}

func predictionToDTO(v prediction.Result) predictionDTO {
	return predictionDTO{
		Prediction:         string(v.Prediction),
		Winner:             v.Winner(),
		Confidence:         v.Confidence,
		HomeWinProbability: v.HomeWinProbability,
		AwayWinProbability: v.AwayWinProbability,
		HomeTeam:           v.HomeTeam,
		AwayTeam:           v.AwayTeam,
		ModelUsed:          v.ModelUsed,
		Timestamp:          formatTime(v.Timestamp),
	}
}

func gaugeToDTO(l gauge.Layout, th gauge.Theme) gaugeDTO {
	return gaugeDTO{
		Probability:  l.Probability,
		HomeEndAngle: l.HomeEndAngle,
		TrackArc:     l.TrackArc,
		HomeArc:      l.HomeArc,
		AwayArc:      l.AwayArc,
		NeedlePath:   l.NeedlePath,
		HomePercent:  l.HomePercent,
		AwayPercent:  l.AwayPercent,
		HomeLabel:    th.HomeLabel,
		AwayLabel:    th.AwayLabel,
		HomeColor:    th.HomeColor,
		AwayColor:    th.AwayColor,
	}
}

func predictionsViewToDTO(v usecase.PredictionsView) predictionsViewDTO {
	st := v.State
	out := predictionsViewDTO{
		Matchup:        matchupDTO{Home: st.Matchup.Home, Away: st.Matchup.Away},
		Loading:        st.Loading,
		Comparing:      st.Comparing,
		Error:          st.Error,
		Comparisons:    make([]comparisonDTO, 0, len(st.Comparisons)),
		History:        make([]historyDTO, 0, len(st.History)),
		Gauge:          gaugeToDTO(v.Gauge, v.Theme),
		ConfidenceText: v.ConfidenceText,
		Animating:      v.Animating,
	}
	if st.Prediction != nil {
		p := predictionToDTO(*st.Prediction)
		out.Prediction = &p
	}
	for _, c := range st.Comparisons {
		style := monitoring.StyleForModel(c.Model)
		out.Comparisons = append(out.Comparisons, comparisonDTO{
			Model:      c.Model,
			Label:      style.Label,
			Color:      style.Color,
			Prediction: predictionToDTO(c.Result),
		})
	}
	for _, e := range st.History {
		out.History = append(out.History, historyDTO{
			HomeTeam:   e.HomeTeam,
			AwayTeam:   e.AwayTeam,
			RecordedAt: formatTime(e.Timestamp),
			Prediction: predictionToDTO(e.Result),
		})
	}
	return out
}

func gameToDTO(v game.Game) gameDTO {
	return gameDTO{
		ID:          v.ID,
		Date:        formatTime(v.Date),
		Season:      v.Season,
		HomeTeam:    v.HomeTeam,
		AwayTeam:    v.AwayTeam,
		HomeScore:   v.HomeScore,
		AwayScore:   v.AwayScore,
		TotalPoints: v.TotalPoints(),
		Played:      v.Played(),
	}
}

func explorerViewToDTO(v usecase.ExplorerView) explorerViewDTO {
	st := v.State
	out := explorerViewDTO{
		Team:          st.Team,
		Season:        st.Season,
		Games:         make([]gameDTO, 0, len(v.Visible)),
		Empty:         v.Empty,
		TotalGames:    st.TotalGames,
		TotalPages:    st.TotalPages,
		TotalExact:    st.TotalExact,
		Loaded:        st.Loaded,
		CurrentPage:   st.CurrentPage,
		PageSize:      st.PageSize,
		SortColumn:    string(st.SortColumn),
		SortDirection: string(st.SortDirection),
		Loading:       st.Loading,
		Error:         st.Error,
	}
	for _, g := range v.Visible {
		out.Games = append(out.Games, gameToDTO(g))
	}
	return out
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{ID: v.ID, Name: v.Name, Team: v.Team, Position: v.Position}
}

func playerStatsToDTO(v player.Stats) playerStatsDTO {
	a := v.Averages
	return playerStatsDTO{
		PlayerID:    v.PlayerID,
		Season:      v.Season,
		GamesPlayed: v.GamesPlayed,
		Averages: averagesDTO{
			Pts:     a.Pts,
			Reb:     a.Reb,
			Ast:     a.Ast,
			Stl:     a.Stl,
			Blk:     a.Blk,
			FGPct:   a.FGPct,
			FG3Pct:  a.FG3Pct,
			FTPct:   a.FTPct,
			Minutes: a.Minutes,
			Extra:   a.Extra,
		},
	}
}

func playersStateToDTO(st players.State) playersViewDTO {
	out := playersViewDTO{
		Query:         st.Query,
		SearchedQuery: st.SearchedQuery,
		Players:       make([]playerDTO, 0, len(st.Players)),
		DataSource:    st.DataSource,
		Searching:     st.Searching,
		NoResults:     st.NoResults,
		SearchNotice:  st.SearchNotice,
		Error:         st.Error,
		Season:        st.Season,
		StatsLoading:  st.StatsLoading,
		StatsNotice:   st.StatsNotice,
		StatsError:    st.StatsError,
		Recent:        append([]string{}, st.Recent...),
	}
	for _, p := range st.Players {
		out.Players = append(out.Players, playerToDTO(p))
	}
	if st.Selected != nil {
		p := playerToDTO(*st.Selected)
		out.Selected = &p
	}
	if st.Stats != nil {
		s := playerStatsToDTO(*st.Stats)
		out.Stats = &s
	}
	return out
}

func performanceViewToDTO(v usecase.PerformanceView) performanceViewDTO {
	st := v.State
	sum := v.Summary
	out := performanceViewDTO{
		AlertHours: st.AlertHours,
		Loading:    st.Loading,
		Error:      st.Error,
		FetchedAt:  formatTime(st.FetchedAt),
		Loaded:     st.Snapshot != nil,
		Summary: performanceSummaryDTO{
			BestModel:      sum.BestModel,
			BestAccuracy:   sum.BestAccuracy,
			MeanAccuracy:   sum.MeanAccuracy,
			MeanF1:         sum.MeanF1,
			ActiveAlerts:   sum.ActiveAlerts,
			CriticalAlerts: sum.CriticalAlerts,
			DriftDetected:  sum.DriftDetected,
		},
		Models:      []modelDTO{},
		Performance: []modelPerformanceDTO{},
		Alerts:      make([]alertDTO, 0, len(v.Alerts)),
	}
	for _, a := range v.Alerts {
		out.Alerts = append(out.Alerts, alertDTO{
			ID:        a.ID,
			Severity:  string(a.Severity),
			Message:   a.Message,
			Model:     a.Model,
			CreatedAt: formatTime(a.CreatedAt),
			Resolved:  a.Resolved,
		})
	}
	if st.Snapshot == nil {
		return out
	}

	snap := st.Snapshot
	for _, m := range snap.Models {
		style := monitoring.StyleForModel(m.Name)
		out.Models = append(out.Models, modelDTO{
			ID:        m.ID(),
			Name:      m.Name,
			Version:   m.Version,
			Type:      m.Type,
			Label:     style.Label,
			Color:     style.Color,
			Metrics:   m.Metrics,
			CreatedAt: formatTime(m.CreatedAt),
		})
	}
	for _, p := range snap.Performance {
		style := monitoring.StyleForModel(p.Model)
		out.Performance = append(out.Performance, modelPerformanceDTO{
			Model:     p.Model,
			Label:     style.Label,
			Color:     style.Color,
			Accuracy:  p.Accuracy,
			Precision: p.Precision,
			Recall:    p.Recall,
			F1:        p.F1,
			ROCAUC:    p.ROCAUC,
		})
	}
	drift := driftDTO{
		DriftDetected: snap.Drift.DriftDetected,
		Score:         snap.Drift.Score,
		Threshold:     snap.Drift.Threshold,
		Features:      make([]featureDriftDTO, 0, len(snap.Drift.Features)),
		CheckedAt:     formatTime(snap.Drift.CheckedAt),
	}
	for _, f := range snap.Drift.Features {
		drift.Features = append(drift.Features, featureDriftDTO{Feature: f.Feature, Score: f.Score, Drifted: f.Drifted})
	}
	out.Drift = &drift
	return out
}

type createSessionRequest struct {
	Owner string `json:"owner" validate:"omitempty,max=128,printascii"`
}

type matchupRequest struct {
	HomeTeam string `json:"home_team" validate:"required,alpha,len=3"`
	AwayTeam string `json:"away_team" validate:"required,alpha,len=3"`
}

type explorerFiltersRequest struct {
	Team   string `json:"team" validate:"omitempty,alpha,len=3"`
	Season string `json:"season" validate:"required,max=16"`
}

type explorerPageRequest struct {
	Page int `json:"page" validate:"required,min=1"`
}

type explorerPageSizeRequest struct {
	PageSize int `json:"page_size" validate:"required"`
}

type explorerSortRequest struct {
	Column    string `json:"column" validate:"required"`
	Direction string `json:"direction" validate:"omitempty,oneof=asc desc"`
}

type explorerLoadRequest struct {
	ResetPage bool `json:"reset_page"`
}

type playerSearchRequest struct {
	Query string `json:"query" validate:"max=100"`
}

type playerSelectRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
}

type seasonRequest struct {
	Season string `json:"season" validate:"required,max=16"`
}

type alertWindowRequest struct {
	Hours int `json:"hours" validate:"required,min=1"`
}
