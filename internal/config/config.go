// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// stream-console binaries. It aggregates all sub-configurations and is
// populated by merging defaults, a .env file, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, log file and the
	// profile display expression.
	App App `envPrefix:"APP_"`

	// API holds the remote REST service address and request timeout.
	API API `envPrefix:"API_"`

	// Security holds the local-storage encryption settings.
	Security Security `envPrefix:"SECURITY_"`

	// Storage selects and configures the physical medium behind the
	// encrypted session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// DevAPI configures the local development stand-in of the remote service.
	DevAPI DevAPI `envPrefix:"DEVAPI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the .env file loaded before environment variables are
	// read. Populated via ENV_FILE; defaults to ".env".
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the application version recorded in the session store.
	// A change of version resets the store.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ProfileNameExpr is a JMESPath expression evaluated over the stored
	// user profile to produce the operator's display name.
	// Env: APP_PROFILE_NAME_EXPR
	ProfileNameExpr string `env:"PROFILE_NAME_EXPR"`

	// LogFile is where the console writes its logs. Empty means a file next
	// to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// API holds the settings of the outbound HTTP pipeline.
type API struct {
	// BaseURL is the root address of the remote REST service.
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Security holds local-storage encryption settings.
type Security struct {
	// EncryptionKey is the passphrase the storage key is derived from.
	// Env: SECURITY_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`

	// DebugMirror additionally stores every slot in plaintext under a "_"
	// prefixed key. Never enable outside development.
	// Env: SECURITY_DEBUG_MIRROR
	DebugMirror bool `env:"DEBUG_MIRROR"`

	// KeepCorrupted disables the forced logout that otherwise follows the
	// discovery of an undecryptable session record.
	// Env: SECURITY_KEEP_CORRUPTED
	KeepCorrupted bool `env:"KEEP_CORRUPTED"`
}

// Storage configures the medium behind the session store.
type Storage struct {
	// Driver is one of "sqlite", "redis" or "memory".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite database file used by the "sqlite" driver.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// Redis holds the settings of the "redis" driver.
	Redis Redis `envPrefix:"REDIS_"`
}

// Redis holds connection settings for the redis medium.
type Redis struct {
	// Env: STORAGE_REDIS_ADDR
	Addr string `env:"ADDR"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
	// Prefix namespaces every key written by the console.
	// Env: STORAGE_REDIS_PREFIX
	Prefix string `env:"PREFIX"`
}

// DevAPI configures the development API server.
type DevAPI struct {
	// Address is the listen address in host:port form.
	// Env: DEVAPI_ADDRESS
	Address string `env:"ADDRESS"`

	// TokenSignKey signs the HS256 access tokens issued on login.
	// Env: DEVAPI_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: DEVAPI_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued access tokens.
	// Env: DEVAPI_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in development defaults
//  2. .env file (values become environment variables, never overriding
//     variables that are already set)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 1-4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
