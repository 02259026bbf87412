package config

import (
	"fmt"
	"time"
)

// ConsoleApp holds console application settings.
type ConsoleApp struct {
	Version         string
	ProfileNameExpr string
	LogFile         string
}

// ConsoleAPI holds the outbound HTTP pipeline settings.
type ConsoleAPI struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// ConsoleSecurity holds the secure storage settings.
type ConsoleSecurity struct {
	EncryptionKey string
	DebugMirror   bool
	// PurgeCorrupted makes the session store wipe the session as soon as an
	// undecryptable session record is read.
	PurgeCorrupted bool
}

// ConsoleConfig is the terminal console configuration assembled from
// [StructuredConfig].
type ConsoleConfig struct {
	App      ConsoleApp
	API      ConsoleAPI
	Security ConsoleSecurity
	Storage  Storage
}

// GetConsoleConfig builds and validates a console-specific config view from
// the merged structured configuration.
func GetConsoleConfig() (*ConsoleConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewConsoleConfig(cfg)
}

// NewConsoleConfig maps the console-relevant fields of cfg and validates
// the result.
func NewConsoleConfig(cfg *StructuredConfig) (*ConsoleConfig, error) {
	consoleCfg := &ConsoleConfig{
		App: ConsoleApp{
			Version:         cfg.App.Version,
			ProfileNameExpr: cfg.App.ProfileNameExpr,
			LogFile:         cfg.App.LogFile,
		},
		API: ConsoleAPI{
			BaseURL:        cfg.API.BaseURL,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Security: ConsoleSecurity{
			EncryptionKey:  cfg.Security.EncryptionKey,
			DebugMirror:    cfg.Security.DebugMirror,
			PurgeCorrupted: !cfg.Security.KeepCorrupted,
		},
		Storage: cfg.Storage,
	}

	return consoleCfg, consoleCfg.validate()
}
