// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP client the console uses to talk to the
// remote REST service.
//
// The primary abstraction is [APIClient]. Its HTTP implementation
// ([NewHTTPAPIClient]) runs every request through one resty pipeline whose
// interceptors read the session from [Session] at dispatch time to attach the
// bearer token, and clear the session when the server answers 401.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/stream-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Session is the part of the secure session store the interceptors need.
type Session interface {
	// GetTokenData returns the stored session record, if any.
	GetTokenData(ctx context.Context) (models.TokenData, bool)
	// ClearSession removes the session record and the operator profile.
	ClearSession(ctx context.Context)
}

// APIClient is the typed surface of the remote REST service. Every method
// is authorized by the stored session when one exists.
type APIClient interface {
	// Login exchanges credentials for a token pair and the operator profile.
	// It does not store anything.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error)

	// Logout revokes refreshToken on the server.
	Logout(ctx context.Context, refreshToken string) error

	// CurrentUser returns the profile of the authenticated operator.
	CurrentUser(ctx context.Context) (models.UserProfile, error)

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
}
