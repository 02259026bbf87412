package devapi

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/stream-console/internal/utils"
	"github.com/MKhiriev/stream-console/models"
)

// refreshIssuerSuffix keeps refresh tokens from passing the bearer check.
const refreshIssuerSuffix = "/refresh"

// refreshDurationFactor sets the refresh token lifetime relative to the
// access token.
const refreshDurationFactor = 24

// tokenIssuer signs token pairs and remembers revoked tokens in memory.
type tokenIssuer struct {
	signKey  string
	issuer   string
	duration time.Duration

	mu      sync.Mutex
	pairs   map[string]string // refresh -> access
	revoked map[string]time.Time
}

func newTokenIssuer(signKey, issuer string, duration time.Duration) *tokenIssuer {
	return &tokenIssuer{
		signKey:  signKey,
		issuer:   issuer,
		duration: duration,
		pairs:    make(map[string]string),
		revoked:  make(map[string]time.Time),
	}
}

func (t *tokenIssuer) issue(subject string) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(t.issuer, subject, t.duration, t.signKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("access token: %w", err)
	}
	refresh, err := utils.GenerateJWTToken(t.issuer+refreshIssuerSuffix, subject, t.duration*refreshDurationFactor, t.signKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("refresh token: %w", err)
	}

	t.mu.Lock()
	t.pairs[refresh.SignedString] = access.SignedString
	t.mu.Unlock()

	return models.TokenPair{
		Access:  models.TokenDetail{Token: access.SignedString, Expires: access.ExpiresAt.UTC().Format(time.RFC3339)},
		Refresh: models.TokenDetail{Token: refresh.SignedString, Expires: refresh.ExpiresAt.UTC().Format(time.RFC3339)},
	}, nil
}

// verify returns the subject of a valid, unrevoked access token.
func (t *tokenIssuer) verify(token string) (string, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, t.signKey, t.issuer)
	if err != nil {
		return "", err
	}
	if t.isRevoked(token) {
		return "", ErrTokenRevoked
	}
	return parsed.Subject, nil
}

// revokeRefresh revokes a refresh token together with the access token it
// was issued with. Unknown or invalid tokens are ignored.
func (t *tokenIssuer) revokeRefresh(refresh string) bool {
	parsed, err := utils.ValidateAndParseJWTToken(refresh, t.signKey, t.issuer+refreshIssuerSuffix)
	if err != nil {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.revoked[refresh] = parsed.ExpiresAt
	if access, ok := t.pairs[refresh]; ok {
		t.revoked[access] = parsed.ExpiresAt
		delete(t.pairs, refresh)
	}
	t.pruneLocked()
	return true
}

func (t *tokenIssuer) revoke(token string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.revoked[token] = time.Now().Add(t.duration)
}

func (t *tokenIssuer) isRevoked(token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.revoked[token]
	return ok
}

// pruneLocked forgets revocations of tokens that have expired anyway.
func (t *tokenIssuer) pruneLocked() {
	now := time.Now()
	for token, expiresAt := range t.revoked {
		if expiresAt.Before(now) {
			delete(t.revoked, token)
		}
	}
}
