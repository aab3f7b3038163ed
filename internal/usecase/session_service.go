package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/monitoring"
	"github.com/riskibarqy/courtside/internal/platform/cache"
	"github.com/riskibarqy/courtside/internal/platform/id"
)

// Session is one dashboard visit. Each page state lives exactly as long as the session.
type Session struct {
	ID          string
	Owner       string
	CreatedAt   time.Time
	Predictions *PredictionsPage
	Explorer    *ExplorerPage
	Players     *PlayersPage
	Performance *PerformancePage
}

// Close releases the session's animation loops.
func (s *Session) Close() {
	s.Predictions.Close()
}

type SessionManager struct {
	deps     PageDeps
	ids      id.Generator
	sessions *cache.Store[*Session]
}

func NewSessionManager(deps PageDeps, ids id.Generator, ttl time.Duration) *SessionManager {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &SessionManager{
		deps:     deps.normalized(),
		ids:      ids,
		sessions: cache.NewStore[*Session](ttl),
	}
}

// Create opens a session for owner and loads owner's recent searches. A recent-search
// storage failure does not prevent the session from opening.
func (m *SessionManager) Create(ctx context.Context, owner string) (*Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionManager.Create")
	defer span.End()

	sessionID, err := m.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s := &Session{
		ID:          sessionID,
		Owner:       ownerKey(owner),
		CreatedAt:   m.deps.Now(),
		Predictions: NewPredictionsPage(m.deps),
		Explorer:    NewExplorerPage(m.deps),
		Players:     NewPlayersPage(m.deps, owner),
		Performance: NewPerformancePage(m.deps),
	}
	if err := s.Players.LoadRecent(ctx); err != nil {
		m.deps.Logger.WarnContext(ctx, "recent searches unavailable", "owner", s.Owner, "error", err)
	}

	m.sessions.Set(ctx, s.ID, s)
	m.deps.Logger.InfoContext(ctx, "session created", "session_id", s.ID, "owner", s.Owner)
	return s, nil
}

// Get returns a live session and extends its lifetime.
func (m *SessionManager) Get(ctx context.Context, sessionID string) (*Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	s, ok := m.sessions.Get(ctx, sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: session=%s", ErrNotFound, sessionID)
	}
	m.sessions.Touch(ctx, sessionID)
	return s, nil
}

func (m *SessionManager) Close(ctx context.Context, sessionID string) error {
	s, err := m.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	m.sessions.Delete(ctx, sessionID)
	s.Close()
	m.deps.Logger.InfoContext(ctx, "session closed", "session_id", sessionID)
	return nil
}

// Sweep closes expired sessions and reports how many were removed.
func (m *SessionManager) Sweep(ctx context.Context) int {
	expired := m.sessions.Sweep(ctx)
	for _, s := range expired {
		s.Close()
	}
	if len(expired) > 0 {
		m.deps.Logger.InfoContext(ctx, "expired sessions swept", "count", len(expired))
	}
	return len(expired)
}

// RunSweeper sweeps every interval until ctx is done.
func (m *SessionManager) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(ctx)
		}
	}
}

func (m *SessionManager) Len() int {
	return m.sessions.Len()
}

// UpstreamHealth reports the prediction service heartbeat.
func (m *SessionManager) UpstreamHealth(ctx context.Context) (monitoring.Health, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionManager.UpstreamHealth")
	defer span.End()

	h, err := m.deps.Port.Health(ctx)
	if err != nil {
		return monitoring.Health{}, dependencyError("health", err)
	}
	return h, nil
}
