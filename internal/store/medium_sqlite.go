package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/stream-console/internal/logger"
)

type sqliteMedium struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteMedium returns a [Medium] backed by the kv table of db. The schema
// must already be migrated.
func NewSQLiteMedium(db *DB, log *logger.Logger) Medium {
	return &sqliteMedium{
		db:     db,
		logger: log,
	}
}

func (m *sqliteMedium) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := m.db.QueryRowContext(ctx, getValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		m.logger.Err(err).Str("key", key).Msg("error reading value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (m *sqliteMedium) Set(ctx context.Context, key, value string) error {
	if _, err := m.db.ExecContext(ctx, upsertValue, key, value); err != nil {
		m.logger.Err(err).Str("key", key).Msg("error writing value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (m *sqliteMedium) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := buildDeleteKeysQuery(keys...)
	if err != nil {
		return err
	}

	if _, err = m.db.ExecContext(ctx, query, args...); err != nil {
		m.logger.Err(err).Strs("keys", keys).Msg("error deleting values")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (m *sqliteMedium) Keys(ctx context.Context) ([]string, error) {
	query, args, err := buildListKeysQuery()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}

func (m *sqliteMedium) Close() error {
	return m.db.Close()
}
