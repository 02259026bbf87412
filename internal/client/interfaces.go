// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// SessionStore is the part of the secure session store the application
// manages across its lifetime.
type SessionStore interface {
	EnsureVersion(ctx context.Context, version string) bool
	LogState(ctx context.Context)
	Close() error
}

// UI shows the console until the operator leaves it.
type UI interface {
	Run(ctx context.Context, startPath string) error
}
