package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/courtside/internal/controller/recent"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

const DefaultRecentOwner = "default"

// RecentSearches is the only writer of the durable recent-search list. Each write reads,
// updates and saves the whole list while holding the owner's lock.
type RecentSearches struct {
	store  recent.Store
	logger *logging.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRecentSearches(store recent.Store, logger *logging.Logger) *RecentSearches {
	if logger == nil {
		logger = logging.Default()
	}
	return &RecentSearches{store: store, logger: logger, locks: make(map[string]*sync.Mutex)}
}

func (r *RecentSearches) Load(ctx context.Context, owner string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecentSearches.Load")
	defer span.End()

	list, err := r.store.Load(ctx, ownerKey(owner))
	if err != nil {
		return nil, fmt.Errorf("load recent searches: %w", err)
	}
	return recent.Normalize(list), nil
}

// Record adds q for owner and returns the list that was saved.
func (r *RecentSearches) Record(ctx context.Context, owner, q string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecentSearches.Record")
	defer span.End()

	owner = ownerKey(owner)
	lock := r.ownerLock(owner)
	lock.Lock()
	defer lock.Unlock()

	list, err := r.store.Load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("load recent searches: %w", err)
	}
	next := recent.Add(list, q)
	if err := r.store.Save(ctx, owner, next); err != nil {
		return nil, fmt.Errorf("save recent searches: %w", err)
	}
	r.logger.DebugContext(ctx, "recent search recorded", "owner", owner, "size", len(next))
	return next, nil
}

func (r *RecentSearches) Clear(ctx context.Context, owner string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecentSearches.Clear")
	defer span.End()

	owner = ownerKey(owner)
	lock := r.ownerLock(owner)
	lock.Lock()
	defer lock.Unlock()

	if err := r.store.Save(ctx, owner, nil); err != nil {
		return fmt.Errorf("clear recent searches: %w", err)
	}
	return nil
}

func (r *RecentSearches) ownerLock(owner string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[owner]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[owner] = lock
	}
	return lock
}

func ownerKey(owner string) string {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return DefaultRecentOwner
	}
	return owner
}
