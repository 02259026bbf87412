package service

import (
	"context"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/MKhiriev/stream-console/internal/adapter"
	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/internal/utils"
	"github.com/MKhiriev/stream-console/models"
)

type sessionService struct {
	store    SessionStore
	api      adapter.APIClient
	nameExpr string

	logger *logger.Logger
}

// NewSessionService validates nameExpr up front so that DisplayName never
// fails on a bad expression at render time.
func NewSessionService(store SessionStore, api adapter.APIClient, nameExpr string, log *logger.Logger) (SessionService, error) {
	nameExpr = strings.TrimSpace(nameExpr)
	if nameExpr != "" {
		if _, err := jmespath.Compile(nameExpr); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidProfileNameExpr, err)
		}
	}

	return &sessionService{
		store:    store,
		api:      api,
		nameExpr: nameExpr,
		logger:   log.WithComponent("session_service"),
	}, nil
}

func (s *sessionService) Login(ctx context.Context, email, password string) (models.UserProfile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrValidationNoEmail
	}
	if password == "" {
		return nil, ErrValidationNoPassword
	}

	res, err := s.api.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("login failed")
		return nil, mapAdapterError(err)
	}

	data := models.NewTokenData(res.Tokens)
	if !data.Authenticated() {
		return nil, ErrNoAccessToken
	}

	s.store.SetTokenData(ctx, data)
	s.store.SetUserData(ctx, res.User)

	s.logger.Info().Str("email", email).Msg("logged in")
	return res.User, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	defer s.store.ClearSession(context.WithoutCancel(ctx))

	data, ok := s.store.GetTokenData(ctx)
	if !ok || data.RefreshToken() == "" {
		return nil
	}

	if err := s.api.Logout(ctx, data.RefreshToken()); err != nil {
		s.logger.Warn().Err(err).Msg("server logout failed, clearing local session anyway")
		return nil
	}

	s.logger.Info().Msg("logged out")
	return nil
}

func (s *sessionService) IsAuthenticated(ctx context.Context) bool {
	return s.store.IsAuthenticated(ctx)
}

func (s *sessionService) Profile(ctx context.Context) (models.UserProfile, bool) {
	return s.store.GetUserData(ctx)
}

func (s *sessionService) DisplayName(ctx context.Context) string {
	profile, ok := s.store.GetUserData(ctx)
	if !ok || s.nameExpr == "" {
		return ""
	}

	v, err := jmespath.Search(s.nameExpr, map[string]any(profile))
	if err != nil {
		s.logger.Debug().Err(err).Str("expr", s.nameExpr).Msg("profile name expression failed")
		return ""
	}

	switch name := v.(type) {
	case nil:
		return ""
	case string:
		return name
	default:
		return fmt.Sprint(name)
	}
}

func (s *sessionService) Claims(ctx context.Context) (map[string]any, error) {
	data, ok := s.store.GetTokenData(ctx)
	if !ok || !data.Authenticated() {
		return nil, ErrSessionExpired
	}

	claims, err := utils.ParseUnverifiedClaims(data.AccessToken())
	if err != nil {
		return nil, fmt.Errorf("parse access token claims: %w", err)
	}

	return claims, nil
}
