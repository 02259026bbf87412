package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a dev API listen address in format [host]:[port]
//	-u/-api-url remote API base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-k/-encryption-key storage encryption passphrase
//	-debug-mirror keep plaintext mirror copies of session slots
//	-keep-corrupted do not log out on undecryptable session records
//	-storage storage driver: sqlite, redis or memory
//	-d sqlite database file
//	-redis-addr redis address
//	-redis-password redis password
//	-redis-db redis database number
//	-redis-prefix redis key prefix
//	-profile-name-expr JMESPath expression for the display name
//	-log-file console log file path
//	-c/-config json file path with configs
//	-env-file .env file path
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
func parseFlags(args []string) (*StructuredConfig, error) {
	var devAPIAddress NetAddress
	var baseURL string
	var requestTimeout time.Duration
	var encryptionKey string
	var debugMirror, keepCorrupted bool
	var driver, dsn string
	var redisAddr, redisPassword, redisPrefix string
	var redisDB int
	var profileNameExpr, logFile string
	var jsonConfigPath, envFilePath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration

	fs := flag.NewFlagSet("stream-console", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&devAPIAddress, "a", "Dev API net address host:port")
	fs.StringVar(&baseURL, "u", "", "Remote API base URL")
	fs.StringVar(&baseURL, "api-url", "", "Remote API base URL (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&encryptionKey, "k", "", "Storage encryption passphrase")
	fs.StringVar(&encryptionKey, "encryption-key", "", "Storage encryption passphrase (alias)")
	fs.BoolVar(&debugMirror, "debug-mirror", false, "Keep plaintext mirror copies of session slots")
	fs.BoolVar(&keepCorrupted, "keep-corrupted", false, "Do not log out on undecryptable session records")
	fs.StringVar(&driver, "storage", "", "Storage driver: sqlite, redis or memory")
	fs.StringVar(&dsn, "d", "", "SQLite database file")
	fs.StringVar(&redisAddr, "redis-addr", "", "Redis address")
	fs.StringVar(&redisPassword, "redis-password", "", "Redis password")
	fs.IntVar(&redisDB, "redis-db", 0, "Redis database number")
	fs.StringVar(&redisPrefix, "redis-prefix", "", "Redis key prefix")
	fs.StringVar(&profileNameExpr, "profile-name-expr", "", "JMESPath expression for the display name")
	fs.StringVar(&logFile, "log-file", "", "Console log file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFilePath, "env-file", "", ".env file path")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ProfileNameExpr: profileNameExpr,
			LogFile:         logFile,
		},
		API: API{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Security: Security{
			EncryptionKey: encryptionKey,
			DebugMirror:   debugMirror,
			KeepCorrupted: keepCorrupted,
		},
		Storage: Storage{
			Driver: driver,
			DSN:    dsn,
			Redis: Redis{
				Addr:     redisAddr,
				Password: redisPassword,
				DB:       redisDB,
				Prefix:   redisPrefix,
			},
		},
		DevAPI: DevAPI{
			Address:       devAPIAddress.String(),
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		JSONFilePath: jsonConfigPath,
		EnvFilePath:  envFilePath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
