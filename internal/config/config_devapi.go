package config

import (
	"fmt"
	"time"
)

// DevAPIConfig is the development API server configuration.
type DevAPIConfig struct {
	Address       string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// GetDevAPIConfig builds and validates the development server config view.
func GetDevAPIConfig() (*DevAPIConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := &DevAPIConfig{
		Address:       cfg.DevAPI.Address,
		TokenSignKey:  cfg.DevAPI.TokenSignKey,
		TokenIssuer:   cfg.DevAPI.TokenIssuer,
		TokenDuration: cfg.DevAPI.TokenDuration,
	}

	return devCfg, devCfg.validate()
}
