// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildDeleteKeysQuery(t *testing.T) {
	query, args, err := buildDeleteKeysQuery("authToken", "_authToken")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM kv WHERE key IN (?,?)", query)
	assert.Equal(t, []any{"authToken", "_authToken"}, args)
}

func Test_buildDeleteKeysQuery_SingleKey(t *testing.T) {
	query, args, err := buildDeleteKeysQuery("userData")
	require.NoError(t, err)

	// squirrel generates IN (?) for a one-element slice.
	assert.Equal(t, "DELETE FROM kv WHERE key IN (?)", query)
	assert.Equal(t, []any{"userData"}, args)
}

func Test_buildListKeysQuery(t *testing.T) {
	query, args, err := buildListKeysQuery()
	require.NoError(t, err)

	assert.Equal(t, "SELECT key FROM kv ORDER BY key", query)
	assert.Empty(t, args)
}

func Test_staticQueries_UseQuestionPlaceholders(t *testing.T) {
	for _, q := range []string{getValue, upsertValue} {
		assert.NotContains(t, q, "$1")
		assert.Contains(t, q, "?")
	}
	assert.Contains(t, strings.ToLower(upsertValue), "on conflict(key) do update")
}
