package recentsearch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"
)

const (
	listTable       = "recent_search_lists"
	upsertListQuery = `ON CONFLICT (owner) DO UPDATE SET
    queries = EXCLUDED.queries,
    updated_at = EXCLUDED.updated_at`
)

type listTableModel struct {
	Queries pq.StringArray `db:"queries"`
}

type listInsertModel struct {
	Owner     string         `db:"owner"`
	Queries   pq.StringArray `db:"queries"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// PostgresStore keeps one row per owner with the whole list in a text array.
type PostgresStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now}
}

func (s *PostgresStore) Load(ctx context.Context, owner string) ([]string, error) {
	query, args, err := qb.Select("queries").From(listTable).Where(qb.Eq("owner", owner)).Limit(1).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select recent searches query: %w", err)
	}

	var row listTableModel
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select recent searches owner=%s: %w", owner, err)
	}
	return slices.Clone([]string(row.Queries)), nil
}

// Save replaces owner's list. An empty list removes the row.
func (s *PostgresStore) Save(ctx context.Context, owner string, list []string) error {
	if len(list) == 0 {
		query, args, err := qb.DeleteFrom(listTable).Where(qb.Eq("owner", owner)).ToSQL()
		if err != nil {
			return fmt.Errorf("build delete recent searches query: %w", err)
		}
		if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete recent searches owner=%s: %w", owner, err)
		}
		return nil
	}

	query, args, err := qb.InsertModel(listTable, listInsertModel{
		Owner:     owner,
		Queries:   pq.StringArray(slices.Clone(list)),
		UpdatedAt: s.now().UTC(),
	}, upsertListQuery)
	if err != nil {
		return fmt.Errorf("build upsert recent searches query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert recent searches owner=%s: %w", owner, err)
	}
	return nil
}
