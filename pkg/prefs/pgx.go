package prefs

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const (
	selectPrefQuery = `SELECT value FROM user_preferences WHERE key = $1`
	upsertPrefQuery = `
		INSERT INTO user_preferences (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	deletePrefQuery = `DELETE FROM user_preferences WHERE key = $1`
)

// PgxStore persists preferences in the user_preferences table so table
// layouts survive across devices, not just reloads.
type PgxStore struct {
	pool *pgxpool.Pool
}

func NewPgxStore(pool *pgxpool.Pool) *PgxStore {
	return &PgxStore{pool: pool}
}

func (s *PgxStore) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var raw json.RawMessage
	err := s.pool.QueryRow(ctx, selectPrefQuery, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to get preference %q", key)
	}
	return raw, true, nil
}

func (s *PgxStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	if _, err := s.pool.Exec(ctx, upsertPrefQuery, key, value); err != nil {
		return errors.Wrapf(err, "failed to set preference %q", key)
	}
	return nil
}

func (s *PgxStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, deletePrefQuery, key); err != nil {
		return errors.Wrapf(err, "failed to delete preference %q", key)
	}
	return nil
}
