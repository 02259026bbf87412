// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const kvTable = "kv"

const (
	getValue = `SELECT value FROM kv WHERE key = ?;`

	upsertValue = `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`
)

// buildDeleteKeysQuery builds a single DELETE for all keys.
func buildDeleteKeysQuery(keys ...string) (string, []any, error) {
	query, args, err := sq.Delete(kvTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListKeysQuery builds a SELECT of every key ordered by name.
func buildListKeysQuery() (string, []any, error) {
	query, args, err := sq.Select("key").
		From(kvTable).
		OrderBy("key").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
