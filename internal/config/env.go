// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

var envParsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(time.Duration(0)): parseDuration,
}

// parseEnv fills cfg from the `env`/`envPrefix` tags of [StructuredConfig].
// Durations accept Go syntax ("30s") or a bare number of seconds ("30").
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{FuncMap: envParsers}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func parseDuration(v string) (any, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return nil, fmt.Errorf("invalid duration %q: %w", v, err)
	}
	return d, nil
}
