package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies the development fallbacks.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder(nil).withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, DefaultEncryptionKey, cfg.Security.EncryptionKey)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "name || email", cfg.App.ProfileNameExpr)
	assert.False(t, cfg.Security.KeepCorrupted)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigsOverride verifies that non-zero fields of later
// configs win and zero fields keep earlier values.
func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newConfigBuilder(nil).withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{API: API{BaseURL: "http://env:3000"}},
		&StructuredConfig{API: API{BaseURL: "http://flag:3000"}, App: App{Version: "2.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flag:3000", cfg.API.BaseURL)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, DefaultRequestTimeout, cfg.API.RequestTimeout)
}

// TestBuild_RejectsUnknownDriver verifies shared validation.
func TestBuild_RejectsUnknownDriver(t *testing.T) {
	b := newConfigBuilder(nil).withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{Driver: "etcd"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withEnv / withDotEnv ──────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"API_BASE_URL": "http://env:3000"})

	b := newConfigBuilder(nil).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://env:3000", b.configs[0].API.BaseURL)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_REDIS_DB": "x"})

	b := newConfigBuilder(nil).withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithDotEnv_LoadsFileWithoutOverridingEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"API_BASE_URL": "http://from-env:3000"})
	t.Cleanup(func() { _ = os.Unsetenv("SECURITY_ENCRYPTION_KEY") })

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"API_BASE_URL=http://from-file:3000\nSECURITY_ENCRYPTION_KEY=file-key\n"), 0o600))

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{EnvFilePath: envFile})
	b.withDotEnv().withEnv()
	require.NoError(t, b.err)

	envCfg := b.configs[len(b.configs)-1]
	assert.Equal(t, "http://from-env:3000", envCfg.API.BaseURL)
	assert.Equal(t, "file-key", envCfg.Security.EncryptionKey)
}

func TestWithDotEnv_MissingFileIsNotAnError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{EnvFilePath: filepath.Join(t.TempDir(), "absent.env")})

	b.withDotEnv()
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder([]string{"-storage", "memory"}).withFlags()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, DriverMemory, b.configs[0].Storage.Driver)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder([]string{"-bogus"}).withFlags()
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"api": map[string]any{"base_url": "http://json:3000"},
	})

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "http://json:3000", b.configs[1].API.BaseURL)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	assert.Equal(t, "second", b.configs[len(b.configs)-1].App.Version)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestBuilder_Priority verifies defaults < env < flags < json.
func TestBuilder_Priority(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"security": map[string]any{"encryption_key": "json-key"},
	})
	setEnvVars(t, map[string]string{
		"API_BASE_URL":            "http://env:3000",
		"SECURITY_ENCRYPTION_KEY": "env-key",
		"APP_VERSION":             "env-version",
		"ENV_FILE":                filepath.Join(t.TempDir(), "none.env"),
	})

	cfg, err := newConfigBuilder([]string{"-u", "http://flag:3000", "-c", jsonPath}).
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "http://flag:3000", cfg.API.BaseURL)
	assert.Equal(t, "json-key", cfg.Security.EncryptionKey)
	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, DefaultRequestTimeout, cfg.API.RequestTimeout)
}

// ── views ─────────────────────────────────────────────────────────────────────

func TestNewConsoleConfig_MapsAndInvertsKeepCorrupted(t *testing.T) {
	base, err := newConfigBuilder(nil).withDefaults().build()
	require.NoError(t, err)

	consoleCfg, err := NewConsoleConfig(base)
	require.NoError(t, err)
	assert.True(t, consoleCfg.Security.PurgeCorrupted)
	assert.Equal(t, base.API.BaseURL, consoleCfg.API.BaseURL)

	base.Security.KeepCorrupted = true
	consoleCfg, err = NewConsoleConfig(base)
	require.NoError(t, err)
	assert.False(t, consoleCfg.Security.PurgeCorrupted)
}

func TestNewConsoleConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"relative base url", func(c *StructuredConfig) { c.API.BaseURL = "/api" }, ErrInvalidAPIConfigs},
		{"zero timeout", func(c *StructuredConfig) { c.API.RequestTimeout = 0 }, ErrInvalidAPIConfigs},
		{"blank key", func(c *StructuredConfig) { c.Security.EncryptionKey = "  " }, ErrInvalidSecurityConfigs},
		{"sqlite without dsn", func(c *StructuredConfig) { c.Storage.DSN = "" }, ErrInvalidStorageConfigs},
		{"redis without addr", func(c *StructuredConfig) { c.Storage.Driver = DriverRedis }, ErrInvalidStorageConfigs},
		{"empty version", func(c *StructuredConfig) { c.App.Version = "" }, ErrInvalidAppConfigs},
		{"memory needs nothing", func(c *StructuredConfig) { c.Storage = Storage{Driver: DriverMemory} }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			_, err := NewConsoleConfig(cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWithDotEnv_FlagPathWins(t *testing.T) {
	clearEnvVars(t)
	t.Cleanup(func() { _ = os.Unsetenv("APP_LOG_FILE") })

	envFile := filepath.Join(t.TempDir(), "custom.env")
	require.NoError(t, os.WriteFile(envFile, []byte("APP_LOG_FILE=/tmp/from-flag-env.log\n"), 0o600))

	b := newConfigBuilder([]string{"-env-file", envFile}).withDefaults().withDotEnv().withEnv()
	require.NoError(t, b.err)
	assert.Equal(t, "/tmp/from-flag-env.log", b.configs[len(b.configs)-1].App.LogFile)
}
