package config

import "time"

// Development fallbacks. Production deployments are expected to override at
// least the encryption key.
const (
	DefaultAPIBaseURL      = "http://localhost:3000"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultEncryptionKey   = "your-secret-key-here-change-in-production"
	DefaultStorageDriver   = DriverSQLite
	DefaultStorageDSN      = "stream-console.db"
	DefaultRedisPrefix     = "stream-console:"
	DefaultProfileNameExpr = "name || email"
	DefaultAppVersion      = "dev"
	DefaultEnvFile         = ".env"

	DefaultDevAPIAddress  = "localhost:3000"
	DefaultTokenIssuer    = "stream-console-devapi"
	DefaultTokenDuration  = time.Hour
	DefaultTokenSignKey   = "devapi-sign-key-change-me"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:         DefaultAppVersion,
			ProfileNameExpr: DefaultProfileNameExpr,
		},
		API: API{
			BaseURL:        DefaultAPIBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Security: Security{
			EncryptionKey: DefaultEncryptionKey,
		},
		Storage: Storage{
			Driver: DefaultStorageDriver,
			DSN:    DefaultStorageDSN,
			Redis:  Redis{Prefix: DefaultRedisPrefix},
		},
		DevAPI: DevAPI{
			Address:       DefaultDevAPIAddress,
			TokenSignKey:  DefaultTokenSignKey,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		EnvFilePath: DefaultEnvFile,
	}
}
