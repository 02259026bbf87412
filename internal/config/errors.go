package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid remote API settings
	// (for example, a malformed base URL or a zero request timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidStorageConfigs indicates invalid session storage settings
	// (for example, an unknown driver or an empty DSN for sqlite).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSecurityConfigs indicates a missing encryption key.
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty version).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidDevAPIConfigs indicates invalid development server settings.
	ErrInvalidDevAPIConfigs = errors.New("invalid devapi configuration")
)
