package store

import (
	"context"
	"sort"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/stream-console/internal/logger"
)

func newTestRedisMedium(t *testing.T) (Medium, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisMedium(client, "stream-console:", logger.Nop()), mr
}

func TestRedisMedium_SetGetUsesPrefix(t *testing.T) {
	ctx := context.Background()
	m, mr := newTestRedisMedium(t)

	require.NoError(t, m.Set(ctx, "authToken", "v1:abc"))

	stored, err := mr.Get("stream-console:authToken")
	require.NoError(t, err)
	assert.Equal(t, "v1:abc", stored)

	v, err := m.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.Equal(t, "v1:abc", v)
}

func TestRedisMedium_GetMissing(t *testing.T) {
	m, _ := newTestRedisMedium(t)

	_, err := m.Get(context.Background(), "authToken")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisMedium_DeleteAndKeys(t *testing.T) {
	ctx := context.Background()
	m, mr := newTestRedisMedium(t)

	require.NoError(t, mr.Set("other-app:authToken", "foreign"))
	require.NoError(t, m.Set(ctx, "authToken", "a"))
	require.NoError(t, m.Set(ctx, "_authToken", "b"))
	require.NoError(t, m.Set(ctx, "userData", "c"))

	keys, err := m.Keys(ctx)
	require.NoError(t, err)
	sort.Strings(keys)
	assert.Equal(t, []string{"_authToken", "authToken", "userData"}, keys)

	require.NoError(t, m.Delete(ctx, "authToken", "_authToken", "missing"))

	keys, err = m.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"userData"}, keys)
	assert.True(t, mr.Exists("other-app:authToken"))
}

func TestRedisMedium_ServerDown(t *testing.T) {
	m, mr := newTestRedisMedium(t)
	mr.Close()

	_, err := m.Get(context.Background(), "authToken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)

	assert.Error(t, m.Set(context.Background(), "authToken", "x"))
}
