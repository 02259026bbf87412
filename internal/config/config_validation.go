// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the settings shared by every binary: the storage driver
// must be known and durations must not be negative.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverSQLite, DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.API.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAPIConfigs)
	}

	if cfg.DevAPI.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidDevAPIConfigs)
	}

	return nil
}

func (cfg *ConsoleConfig) validate() error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidAPIConfigs, cfg.API.BaseURL)
	}

	if cfg.API.RequestTimeout == 0 {
		return ErrInvalidAPIConfigs
	}

	if strings.TrimSpace(cfg.Security.EncryptionKey) == "" {
		return ErrInvalidSecurityConfigs
	}

	switch cfg.Storage.Driver {
	case DriverSQLite:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: empty sqlite dsn", ErrInvalidStorageConfigs)
		}
	case DriverRedis:
		if cfg.Storage.Redis.Addr == "" {
			return fmt.Errorf("%w: empty redis address", ErrInvalidStorageConfigs)
		}
	}

	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *DevAPIConfig) validate() error {
	if cfg.Address == "" || cfg.TokenSignKey == "" || cfg.TokenDuration == 0 {
		return ErrInvalidDevAPIConfigs
	}

	return nil
}
