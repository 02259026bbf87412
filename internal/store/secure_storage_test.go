// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/stream-console/internal/crypto"
	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/internal/mock"
	"github.com/MKhiriev/stream-console/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testCipher(t *testing.T, passphrase string) crypto.Cipher {
	t.Helper()
	c, err := crypto.NewAESGCMCipher(crypto.DeriveKey(passphrase))
	require.NoError(t, err)
	return c
}

func newTestStorage(t *testing.T, opts Options) (*SecureStorage, Medium) {
	t.Helper()
	medium := NewMemoryMedium()
	return NewSecureStorage(medium, testCipher(t, "test-passphrase"), opts, logger.Nop()), medium
}

func sampleTokenData() models.TokenData {
	return models.NewTokenData(models.TokenPair{
		Access:  models.TokenDetail{Token: "access-1", Expires: "2030-01-01T00:00:00Z"},
		Refresh: models.TokenDetail{Token: "refresh-1", Expires: "2030-02-01T00:00:00Z"},
	})
}

// ─────────────────────────────────────────────
// Raw slots
// ─────────────────────────────────────────────

func TestSecureStorage_RawRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, medium := newTestStorage(t, Options{})

	s.SetRaw(ctx, models.AppVersion, "1.2.3")

	item := s.GetRaw(ctx, models.AppVersion)
	assert.Equal(t, ItemDecrypted, item.State)
	assert.Equal(t, "1.2.3", item.Value)

	stored, err := medium.Get(ctx, "appVersion")
	require.NoError(t, err)
	assert.NotContains(t, stored, "1.2.3")
	assert.True(t, strings.HasPrefix(stored, "v1:"))
}

func TestSecureStorage_SameValueDifferentCiphertext(t *testing.T) {
	ctx := context.Background()
	s, medium := newTestStorage(t, Options{})

	s.SetRaw(ctx, models.AppVersion, "same")
	first, _ := medium.Get(ctx, "appVersion")
	s.SetRaw(ctx, models.AppVersion, "same")
	second, _ := medium.Get(ctx, "appVersion")

	assert.NotEqual(t, first, second)
}

func TestSecureStorage_GetRawAbsent(t *testing.T) {
	s, _ := newTestStorage(t, Options{})

	item := s.GetRaw(context.Background(), models.UserData)
	assert.Equal(t, ItemAbsent, item.State)
	assert.False(t, item.Present())

	_, ok := item.Fallback()
	assert.False(t, ok)
}

func TestSecureStorage_GetRawCorrupted(t *testing.T) {
	ctx := context.Background()
	s, medium := newTestStorage(t, Options{})

	require.NoError(t, medium.Set(ctx, "userData", "plain legacy value"))

	item := s.GetRaw(ctx, models.UserData)
	assert.Equal(t, ItemCorrupted, item.State)
	assert.Empty(t, item.Value)
	assert.Equal(t, "plain legacy value", item.Raw)

	fallback, ok := item.Fallback()
	assert.True(t, ok)
	assert.Equal(t, "plain legacy value", fallback)
}

func TestSecureStorage_WrongKeyIsCorrupted(t *testing.T) {
	ctx := context.Background()
	medium := NewMemoryMedium()

	writer := NewSecureStorage(medium, testCipher(t, "first"), Options{}, logger.Nop())
	writer.SetRaw(ctx, models.AppVersion, "1.0.0")

	reader := NewSecureStorage(medium, testCipher(t, "second"), Options{}, logger.Nop())
	assert.Equal(t, ItemCorrupted, reader.GetRaw(ctx, models.AppVersion).State)
}

func TestSecureStorage_RandomBytesFailClosed(t *testing.T) {
	ctx := context.Background()
	s, medium := newTestStorage(t, Options{})

	for i := 0; i < 50; i++ {
		junk := make([]byte, 1+i*3)
		_, err := rand.Read(junk)
		require.NoError(t, err)

		for _, raw := range []string{string(junk), "v1:" + base64.StdEncoding.EncodeToString(junk)} {
			require.NoError(t, medium.Set(ctx, "authToken", raw))

			assert.NotEqual(t, ItemDecrypted, s.GetRaw(ctx, models.AuthToken).State)
			assert.False(t, s.IsAuthenticated(ctx))
		}
	}
}

func TestSecureStorage_RemoveRawIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t, Options{})

	s.SetRaw(ctx, models.AppVersion, "1")
	s.RemoveRaw(ctx, models.AppVersion)
	s.RemoveRaw(ctx, models.AppVersion)

	assert.Equal(t, ItemAbsent, s.GetRaw(ctx, models.AppVersion).State)
}

func TestSecureStorage_UnknownKeyIsNotWritten(t *testing.T) {
	ctx := context.Background()
	s, medium := newTestStorage(t, Options{})

	s.SetRaw(ctx, models.StorageKey("other"), "x")

	keys, err := medium.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

// ─────────────────────────────────────────────
// Typed accessors
// ─────────────────────────────────────────────

func TestSecureStorage_TokenDataRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t, Options{})

	want := sampleTokenData()
	s.SetTokenData(ctx, want)

	got, ok := s.GetTokenData(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.True(t, s.IsAuthenticated(ctx))

	s.RemoveTokenData(ctx)
	_, ok = s.GetTokenData(ctx)
	assert.False(t, ok)
	assert.False(t, s.IsAuthenticated(ctx))
}

func TestSecureStorage_TokenDataOverwrittenWholesale(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t, Options{})

	s.SetTokenData(ctx, sampleTokenData())
	second := models.NewTokenData(models.TokenPair{Access: models.TokenDetail{Token: "access-2"}})
	s.SetTokenData(ctx, second)

	got, ok := s.GetTokenData(ctx)
	require.True(t, ok)
	assert.Equal(t, second, got)
	assert.Empty(t, got.RefreshToken())
}

func TestSecureStorage_IsAuthenticated(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"access token present", `{"tokens":{"access":{"token":"abc","expires":"x"}}}`, true},
		{"expired token still counts", `{"tokens":{"access":{"token":"abc","expires":"1970-01-01T00:00:00Z"}}}`, true},
		{"empty access token", `{"tokens":{"access":{"token":""}}}`, false},
		{"refresh only", `{"tokens":{"refresh":{"token":"r"}}}`, false},
		{"json null", `null`, false},
		{"not json", `{{{`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s, _ := newTestStorage(t, Options{})

			s.SetRaw(ctx, models.AuthToken, tt.raw)
			assert.Equal(t, tt.want, s.IsAuthenticated(ctx))
		})
	}
}

func TestSecureStorage_UserDataRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t, Options{})

	s.SetUserData(ctx, models.UserProfile{"name": "Ada", "email": "ada@example.com"})

	got, ok := s.GetUserData(ctx)
	require.True(t, ok)
	assert.Equal(t, "Ada", got.String("name"))

	s.RemoveUserData(ctx)
	_, ok = s.GetUserData(ctx)
	assert.False(t, ok)
}

func TestSecureStorage_UserDataUnparseable(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t, Options{})

	s.SetRaw(ctx, models.UserData, "[1,2")

	_, ok := s.GetUserData(ctx)
	assert.False(t, ok)
}

// ─────────────────────────────────────────────
// Session lifecycle
// ─────────────────────────────────────────────

func TestSecureStorage_ClearSession(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t, Options{})

	s.SetTokenData(ctx, sampleTokenData())
	s.SetUserData(ctx, models.UserProfile{"name": "Ada"})
	s.SetRaw(ctx, models.AppVersion, "1.0.0")

	s.ClearSession(ctx)

	assert.False(t, s.IsAuthenticated(ctx))
	_, ok := s.GetUserData(ctx)
	assert.False(t, ok)
	assert.True(t, s.GetRaw(ctx, models.AppVersion).Present())
}

func TestSecureStorage_ClearSessionRemovesTokenFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	medium := mock.NewMockMedium(ctrl)
	s := NewSecureStorage(medium, testCipher(t, "k"), Options{}, logger.Nop())

	gomock.InOrder(
		medium.EXPECT().Delete(gomock.Any(), "authToken", "_authToken").Return(nil),
		medium.EXPECT().Delete(gomock.Any(), "userData", "_userData").Return(nil),
	)

	s.ClearSession(context.Background())
}

func TestSecureStorage_ClearAllRemovesMirrors(t *testing.T) {
	ctx := context.Background()
	s, medium := newTestStorage(t, Options{DebugMirror: true})

	s.SetTokenData(ctx, sampleTokenData())
	s.SetUserData(ctx, models.UserProfile{"name": "Ada"})
	s.SetRaw(ctx, models.AppVersion, "1.0.0")

	keys, err := medium.Keys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 6)

	s.ClearAll(ctx)

	keys, err = medium.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSecureStorage_SessionStatePurgesCorrupted(t *testing.T) {
	ctx := context.Background()
	s, medium := newTestStorage(t, Options{PurgeCorrupted: true})

	s.SetUserData(ctx, models.UserProfile{"name": "Ada"})
	require.NoError(t, medium.Set(ctx, "authToken", "v1:tampered"))

	assert.Equal(t, ItemCorrupted, s.SessionState(ctx))

	_, err := medium.Get(ctx, "authToken")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, ok := s.GetUserData(ctx)
	assert.False(t, ok)
	assert.Equal(t, ItemAbsent, s.SessionState(ctx))
}

func TestSecureStorage_SessionStateKeepsCorruptedWhenPurgeDisabled(t *testing.T) {
	ctx := context.Background()
	s, medium := newTestStorage(t, Options{})

	require.NoError(t, medium.Set(ctx, "authToken", "v1:tampered"))

	assert.Equal(t, ItemCorrupted, s.SessionState(ctx))
	assert.False(t, s.IsAuthenticated(ctx))

	stored, err := medium.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.Equal(t, "v1:tampered", stored)
}

func TestSecureStorage_SessionStateUnparseableCountsAsCorrupted(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t, Options{})

	s.SetRaw(ctx, models.AuthToken, "not json")
	assert.Equal(t, ItemCorrupted, s.SessionState(ctx))

	s.SetTokenData(ctx, sampleTokenData())
	assert.Equal(t, ItemDecrypted, s.SessionState(ctx))
}

func TestSecureStorage_EnsureVersion(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t, Options{})

	assert.False(t, s.EnsureVersion(ctx, "1.0.0"), "first run is not a reset")
	s.SetTokenData(ctx, sampleTokenData())

	assert.False(t, s.EnsureVersion(ctx, "1.0.0"))
	assert.True(t, s.IsAuthenticated(ctx))

	assert.True(t, s.EnsureVersion(ctx, "1.1.0"))
	assert.False(t, s.IsAuthenticated(ctx))
	assert.Equal(t, "1.1.0", s.GetRaw(ctx, models.AppVersion).Value)
}

// ─────────────────────────────────────────────
// Debug mirror
// ─────────────────────────────────────────────

func TestSecureStorage_MirrorOnlyWhenEnabled(t *testing.T) {
	ctx := context.Background()

	off, offMedium := newTestStorage(t, Options{})
	off.SetRaw(ctx, models.AppVersion, "1.0.0")
	_, err := offMedium.Get(ctx, "_appVersion")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, ok := off.GetMirror(ctx, models.AppVersion)
	assert.False(t, ok)
	assert.Equal(t, KeyListing{}, off.Keys(ctx))

	on, _ := newTestStorage(t, Options{DebugMirror: true})
	on.SetRaw(ctx, models.AppVersion, "1.0.0")
	mirror, ok := on.GetMirror(ctx, models.AppVersion)
	require.True(t, ok)
	assert.Equal(t, "1.0.0", mirror)

	listing := on.Keys(ctx)
	assert.Equal(t, []string{"appVersion"}, listing.Encrypted)
	assert.Equal(t, []string{"_appVersion"}, listing.Mirrors)

	on.RemoveRaw(ctx, models.AppVersion)
	_, ok = on.GetMirror(ctx, models.AppVersion)
	assert.False(t, ok)

	on.LogState(ctx)
}

// ─────────────────────────────────────────────
// Detached mode and failures
// ─────────────────────────────────────────────

func TestSecureStorage_DetachedIsNoOp(t *testing.T) {
	ctx := context.Background()

	for name, s := range map[string]*SecureStorage{
		"nil medium": NewSecureStorage(nil, testCipher(t, "k"), Options{DebugMirror: true}, nil),
		"nil cipher": NewSecureStorage(NewMemoryMedium(), nil, Options{}, nil),
		"nil value":  nil,
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, s.Detached())

			s.SetRaw(ctx, models.AppVersion, "1")
			s.SetTokenData(ctx, sampleTokenData())
			s.SetUserData(ctx, models.UserProfile{"name": "x"})

			assert.Equal(t, ItemAbsent, s.GetRaw(ctx, models.AppVersion).State)
			assert.False(t, s.IsAuthenticated(ctx))
			_, ok := s.GetUserData(ctx)
			assert.False(t, ok)
			assert.Equal(t, ItemAbsent, s.SessionState(ctx))
			assert.False(t, s.EnsureVersion(ctx, "2"))
			assert.Equal(t, KeyListing{}, s.Keys(ctx))

			s.RemoveRaw(ctx, models.AppVersion)
			s.ClearAll(ctx)
			s.ClearSession(ctx)
			s.LogState(ctx)
			assert.NoError(t, s.Close())
		})
	}
}

func TestSecureStorage_MediumFailuresAreSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	medium := mock.NewMockMedium(ctrl)
	s := NewSecureStorage(medium, testCipher(t, "k"), Options{}, logger.Nop())
	ctx := context.Background()
	ioErr := errors.New("disk full")

	medium.EXPECT().Set(gomock.Any(), "authToken", gomock.Any()).Return(ioErr)
	medium.EXPECT().Get(gomock.Any(), "authToken").Return("", ioErr)
	medium.EXPECT().Delete(gomock.Any(), "authToken", "_authToken").Return(ioErr)

	s.SetTokenData(ctx, sampleTokenData())
	assert.False(t, s.IsAuthenticated(ctx))
	s.RemoveTokenData(ctx)
}

func TestSecureStorage_EncryptFailureNotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	medium := mock.NewMockMedium(ctrl)
	cipher := mock.NewMockCipher(ctrl)
	s := NewSecureStorage(medium, cipher, Options{DebugMirror: true}, logger.Nop())

	cipher.EXPECT().Encrypt([]byte("1.0.0")).Return("", errors.New("rng failure"))
	// no medium writes expected, plaintext mirror included

	s.SetRaw(context.Background(), models.AppVersion, "1.0.0")
}

func TestSecureStorage_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t, Options{DebugMirror: true})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetTokenData(ctx, sampleTokenData())
			s.SetUserData(ctx, models.UserProfile{"name": "Ada"})
		}()
		go func() {
			defer wg.Done()
			s.ClearSession(ctx)
			_ = s.IsAuthenticated(ctx)
		}()
	}
	wg.Wait()

	state := s.SessionState(ctx)
	assert.NotEqual(t, ItemCorrupted, state)
}
