// Package service holds the console's application logic on top of the HTTP
// client and the secure session store.
//
// [SessionService] owns the login and logout flows: it is the only writer of
// the session record besides the HTTP client's 401 interceptor.
// [AdminService] validates operator input before it reaches the remote user
// and stream endpoints. [AppInfoService] exposes build and version metadata.
package service

import (
	"context"

	"github.com/MKhiriev/stream-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionStore is the part of the secure session store the session flow
// needs. It is satisfied by *store.SecureStorage.
type SessionStore interface {
	SetTokenData(ctx context.Context, data models.TokenData)
	GetTokenData(ctx context.Context) (models.TokenData, bool)
	SetUserData(ctx context.Context, profile models.UserProfile)
	GetUserData(ctx context.Context) (models.UserProfile, bool)
	IsAuthenticated(ctx context.Context) bool
	ClearSession(ctx context.Context)
}

// SessionService drives authentication for the console.
type SessionService interface {
	// Login exchanges credentials for a session. On success the token pair
	// replaces any stored session wholesale and the operator profile is
	// stored next to it. Nothing is stored on failure.
	Login(ctx context.Context, email, password string) (models.UserProfile, error)

	// Logout revokes the refresh token on the server when one is stored and
	// clears the local session regardless of the server's answer.
	Logout(ctx context.Context) error

	// IsAuthenticated reports whether a session is stored.
	IsAuthenticated(ctx context.Context) bool

	// Profile returns the stored operator profile.
	Profile(ctx context.Context) (models.UserProfile, bool)

	// DisplayName evaluates the configured profile name expression over the
	// stored profile. It returns an empty string when nothing matches.
	DisplayName(ctx context.Context) string

	// Claims returns the claims of the stored access token without verifying
	// its signature or expiry. For display only.
	Claims(ctx context.Context) (map[string]any, error)
}

// AdminService is the validated users and streams facade used by the
// console screens.
type AdminService interface {
	ListUsers(ctx context.Context, page models.PageRequest) (models.Page[models.User], error)
	GetUser(ctx context.Context, id string) (models.User, error)
	CreateUser(ctx context.Context, in models.UserInput) (models.User, error)
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListStreams(ctx context.Context, page models.PageRequest) (models.Page[models.Stream], error)
	GetStream(ctx context.Context, id string) (models.Stream, error)
	CreateStream(ctx context.Context, in models.StreamInput) (models.Stream, error)
	UpdateStream(ctx context.Context, id string, patch models.StreamPatch) (models.Stream, error)
	DeleteStream(ctx context.Context, id string) error

	// Overview fetches user and stream totals concurrently.
	Overview(ctx context.Context) (models.Overview, error)
}

// AppInfoService exposes version metadata of the running console.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo() models.AppBuildInfo
}
