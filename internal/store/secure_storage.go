// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/stream-console/internal/crypto"
	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/models"
)

// Options tunes [SecureStorage] behaviour.
type Options struct {
	// DebugMirror additionally writes every slot in plaintext under
	// [models.StorageKey.Mirror]. Development only.
	DebugMirror bool
	// PurgeCorrupted clears the session as soon as the AuthToken slot is
	// found corrupted or unparseable.
	PurgeCorrupted bool
}

// KeyListing is the debug view of the physical keys held by the medium.
type KeyListing struct {
	Encrypted []string
	Mirrors   []string
}

// SecureStorage is the encrypted session store. Every slot is encrypted with
// one cipher before it reaches the medium.
//
// A SecureStorage without a medium or cipher is detached: every operation is
// a no-op and every read is absent. Medium failures are logged and never
// returned; a failed write leaves the slot not persisted.
//
// Each public method holds the storage mutex for its whole duration, so
// multi-slot operations such as [SecureStorage.ClearSession] are atomic with
// respect to readers.
type SecureStorage struct {
	mu     sync.Mutex
	medium Medium
	cipher crypto.Cipher
	opts   Options
	logger *logger.Logger
}

// NewSecureStorage constructs a SecureStorage over medium. Passing a nil
// medium or cipher yields a detached storage.
func NewSecureStorage(medium Medium, cipher crypto.Cipher, opts Options, log *logger.Logger) *SecureStorage {
	if log == nil {
		log = logger.Nop()
	}

	return &SecureStorage{
		medium: medium,
		cipher: cipher,
		opts:   opts,
		logger: log.WithComponent("secure_storage"),
	}
}

// Detached reports whether the storage has no backing medium.
func (s *SecureStorage) Detached() bool {
	return s == nil || s.medium == nil || s.cipher == nil
}

// Close releases the medium.
func (s *SecureStorage) Close() error {
	if s.Detached() {
		return nil
	}
	return s.medium.Close()
}

// SetRaw encrypts plaintext and stores it under key.
func (s *SecureStorage) SetRaw(ctx context.Context, key models.StorageKey, plaintext string) {
	if s.Detached() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.setRawLocked(ctx, key, plaintext)
}

// GetRaw reads and decrypts the slot under key.
func (s *SecureStorage) GetRaw(ctx context.Context, key models.StorageKey) Item {
	if s.Detached() {
		return Item{State: ItemAbsent}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getRawLocked(ctx, key)
}

// RemoveRaw deletes the slot under key together with its mirror. Removing an
// absent slot is a no-op.
func (s *SecureStorage) RemoveRaw(ctx context.Context, key models.StorageKey) {
	if s.Detached() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeRawLocked(ctx, key)
}

// ClearAll removes every slot and every mirror.
func (s *SecureStorage) ClearAll(ctx context.Context) {
	if s.Detached() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearAllLocked(ctx)
}

// SetTokenData replaces the stored session record.
func (s *SecureStorage) SetTokenData(ctx context.Context, data models.TokenData) {
	if s.Detached() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.setJSONLocked(ctx, models.AuthToken, data)
}

// GetTokenData returns the stored session record. ok is false when the slot
// is absent, corrupted or unparseable.
func (s *SecureStorage) GetTokenData(ctx context.Context) (data models.TokenData, ok bool) {
	if s.Detached() {
		return models.TokenData{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, state := s.tokenDataLocked(ctx)
	return data, state == ItemDecrypted
}

// RemoveTokenData deletes the session record.
func (s *SecureStorage) RemoveTokenData(ctx context.Context) {
	s.RemoveRaw(ctx, models.AuthToken)
}

// SetUserData replaces the stored operator profile.
func (s *SecureStorage) SetUserData(ctx context.Context, profile models.UserProfile) {
	if s.Detached() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.setJSONLocked(ctx, models.UserData, profile)
}

// GetUserData returns the stored operator profile. ok is false when the slot
// is absent, corrupted or unparseable.
func (s *SecureStorage) GetUserData(ctx context.Context) (profile models.UserProfile, ok bool) {
	if s.Detached() {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.getRawLocked(ctx, models.UserData)
	if !item.Present() || isJSONNull(item.Value) {
		return nil, false
	}

	if err := json.Unmarshal([]byte(item.Value), &profile); err != nil {
		s.logger.Warn().Err(err).Str("key", models.UserData.String()).Msg("stored user data is not valid JSON")
		return nil, false
	}

	return profile, true
}

// RemoveUserData deletes the operator profile.
func (s *SecureStorage) RemoveUserData(ctx context.Context) {
	s.RemoveRaw(ctx, models.UserData)
}

// IsAuthenticated reports whether a session record with a non-empty access
// token is stored. Token expiry is not consulted.
func (s *SecureStorage) IsAuthenticated(ctx context.Context) bool {
	data, ok := s.GetTokenData(ctx)
	return ok && data.Authenticated()
}

// ClearSession removes the session record and then the operator profile.
func (s *SecureStorage) ClearSession(ctx context.Context) {
	if s.Detached() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearSessionLocked(ctx)
}

// SessionState reports how the session record was found. An unparseable
// record counts as corrupted.
func (s *SecureStorage) SessionState(ctx context.Context) ItemState {
	if s.Detached() {
		return ItemAbsent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, state := s.tokenDataLocked(ctx)
	return state
}

// EnsureVersion wipes the store when it was written by a different
// application version and records version. It reports whether a wipe
// happened.
func (s *SecureStorage) EnsureVersion(ctx context.Context, version string) bool {
	if s.Detached() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.getRawLocked(ctx, models.AppVersion)
	if item.Present() && item.Value == version {
		return false
	}

	reset := item.State != ItemAbsent
	if reset {
		s.logger.Info().
			Str("stored", item.Value).
			Str("running", version).
			Msg("storage version changed, clearing storage")
	}

	s.clearAllLocked(ctx)
	s.setRawLocked(ctx, models.AppVersion, version)

	return reset
}

// GetMirror returns the plaintext debug copy of key. It always reports false
// unless the debug mirror is enabled.
func (s *SecureStorage) GetMirror(ctx context.Context, key models.StorageKey) (string, bool) {
	if s.Detached() || !s.opts.DebugMirror {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := s.medium.Get(ctx, key.Mirror())
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.logger.Warn().Err(err).Str("key", key.Mirror()).Msg("error reading mirror")
		}
		return "", false
	}

	return value, true
}

// Keys lists the physical keys of the store. Empty unless the debug mirror
// is enabled.
func (s *SecureStorage) Keys(ctx context.Context) KeyListing {
	if s.Detached() || !s.opts.DebugMirror {
		return KeyListing{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.keysLocked(ctx)
}

// LogState writes a debug summary of the store. No-op unless the debug
// mirror is enabled.
func (s *SecureStorage) LogState(ctx context.Context) {
	if s.Detached() || !s.opts.DebugMirror {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listing := s.keysLocked(ctx)
	data, state := s.tokenDataLocked(ctx)

	s.logger.Debug().
		Strs("encrypted", listing.Encrypted).
		Strs("mirrors", listing.Mirrors).
		Str("session", state.String()).
		Bool("authenticated", state == ItemDecrypted && data.Authenticated()).
		Msg("secure storage state")
}

func (s *SecureStorage) setRawLocked(ctx context.Context, key models.StorageKey, plaintext string) {
	if !key.Valid() {
		s.logger.Warn().Str("key", key.String()).Msg("refusing to write unknown storage key")
		return
	}

	ciphertext, err := s.cipher.Encrypt([]byte(plaintext))
	if err != nil {
		s.logger.Err(err).Str("key", key.String()).Msg("error encrypting value, not persisted")
		return
	}

	if err = s.medium.Set(ctx, key.String(), ciphertext); err != nil {
		s.logger.Err(err).Str("key", key.String()).Msg("error writing value, not persisted")
		return
	}

	if s.opts.DebugMirror {
		if err = s.medium.Set(ctx, key.Mirror(), plaintext); err != nil {
			s.logger.Err(err).Str("key", key.Mirror()).Msg("error writing mirror")
		}
	}
}

func (s *SecureStorage) getRawLocked(ctx context.Context, key models.StorageKey) Item {
	raw, err := s.medium.Get(ctx, key.String())
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.logger.Err(err).Str("key", key.String()).Msg("error reading value")
		}
		return Item{State: ItemAbsent}
	}

	if raw == "" {
		return Item{State: ItemAbsent}
	}

	plaintext, err := s.cipher.Decrypt(raw)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key.String()).Msg("stored value cannot be decrypted")
		return Item{State: ItemCorrupted, Raw: raw}
	}

	return Item{State: ItemDecrypted, Value: string(plaintext), Raw: raw}
}

func (s *SecureStorage) removeRawLocked(ctx context.Context, key models.StorageKey) {
	if err := s.medium.Delete(ctx, key.String(), key.Mirror()); err != nil {
		s.logger.Err(err).Str("key", key.String()).Msg("error removing value")
	}
}

func (s *SecureStorage) clearAllLocked(ctx context.Context) {
	keys := make([]string, 0, 2*len(models.StorageKeys()))
	for _, key := range models.StorageKeys() {
		keys = append(keys, key.String(), key.Mirror())
	}

	if err := s.medium.Delete(ctx, keys...); err != nil {
		s.logger.Err(err).Msg("error clearing storage")
	}
}

func (s *SecureStorage) clearSessionLocked(ctx context.Context) {
	s.removeRawLocked(ctx, models.AuthToken)
	s.removeRawLocked(ctx, models.UserData)
}

func (s *SecureStorage) setJSONLocked(ctx context.Context, key models.StorageKey, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Err(err).Str("key", key.String()).Msg("error encoding value, not persisted")
		return
	}

	s.setRawLocked(ctx, key, string(body))
}

func (s *SecureStorage) tokenDataLocked(ctx context.Context) (models.TokenData, ItemState) {
	item := s.getRawLocked(ctx, models.AuthToken)
	switch item.State {
	case ItemAbsent:
		return models.TokenData{}, ItemAbsent
	case ItemCorrupted:
		s.purgeCorruptedLocked(ctx)
		return models.TokenData{}, ItemCorrupted
	}

	if isJSONNull(item.Value) {
		return models.TokenData{}, ItemAbsent
	}

	var data models.TokenData
	if err := json.Unmarshal([]byte(item.Value), &data); err != nil {
		s.logger.Warn().Err(err).Str("key", models.AuthToken.String()).Msg("stored token data is not valid JSON")
		s.purgeCorruptedLocked(ctx)
		return models.TokenData{}, ItemCorrupted
	}

	return data, ItemDecrypted
}

func (s *SecureStorage) purgeCorruptedLocked(ctx context.Context) {
	if !s.opts.PurgeCorrupted {
		return
	}

	s.logger.Warn().Msg("corrupted session record, clearing session")
	s.clearSessionLocked(ctx)
}

func (s *SecureStorage) keysLocked(ctx context.Context) KeyListing {
	keys, err := s.medium.Keys(ctx)
	if err != nil {
		s.logger.Err(err).Msg("error listing keys")
		return KeyListing{}
	}

	var listing KeyListing
	for _, key := range models.StorageKeys() {
		if slices.Contains(keys, key.String()) {
			listing.Encrypted = append(listing.Encrypted, key.String())
		}
		if slices.Contains(keys, key.Mirror()) {
			listing.Mirrors = append(listing.Mirrors, key.Mirror())
		}
	}

	return listing
}

func isJSONNull(value string) bool {
	return strings.TrimSpace(value) == "null"
}
