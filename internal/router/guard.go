// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import "context"

//go:generate mockgen -source=guard.go -destination=../mock/router_mock.go -package=mock

// Authenticator reports whether a session is present. It is satisfied by
// *store.SecureStorage.
type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
}

// Redirect instructs the caller to navigate to To instead of rendering.
// From carries the originally requested location so the login screen can
// send the operator back after a successful login. It is empty when there is
// nowhere to return to.
type Redirect struct {
	To   string
	From string
}

// Decision is the outcome of a guard: either render Screen, or follow
// Redirect.
type Decision struct {
	Screen   string
	Redirect *Redirect
}

// Redirected reports whether the decision is a redirect.
func (d Decision) Redirected() bool {
	return d.Redirect != nil
}

// RequireAuth renders screen only while auth reports a session. Otherwise it
// redirects to LoginPath, recording location as the return target.
func RequireAuth(ctx context.Context, auth Authenticator, location, screen string) Decision {
	if auth == nil || !auth.IsAuthenticated(ctx) {
		return Decision{Redirect: &Redirect{To: LoginPath, From: location}}
	}

	return Decision{Screen: screen}
}

// RequireAnonymous renders screen only while auth reports no session.
// Authenticated operators are redirected to UsersPath.
func RequireAnonymous(ctx context.Context, auth Authenticator, screen string) Decision {
	if auth != nil && auth.IsAuthenticated(ctx) {
		return Decision{Redirect: &Redirect{To: UsersPath}}
	}

	return Decision{Screen: screen}
}
