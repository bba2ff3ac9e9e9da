// Package config handles configuration for the server: defaults, an optional
// JSON file, the environment (optionally seeded from a .env file) and
// command-line flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"
)

// SigningAlgorithm is the only accepted token signing algorithm.
const SigningAlgorithm = "HS256"

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config holds runtime settings for the server. It is built once at startup
// and passed by pointer into constructors; nothing mutates it afterwards.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - StoreDriver: user store backend (memory, postgres, sqlite).
//   - DatabaseDSN: DSN for the SQL store drivers.
//   - SecretKey: HMAC secret for signing access tokens. Required.
//   - Algorithm: must equal SigningAlgorithm when set.
//   - AccessTokenValidityDuration: access token TTL.
//   - HashWorkers: how many bcrypt operations may run at once.
//   - LogLevel: minimum log level.
type Config struct {
	EndpointAddrGRPC            string
	StoreDriver                 string
	DatabaseDSN                 string
	SecretKey                   string
	Algorithm                   string
	AccessTokenValidityDuration time.Duration
	HashWorkers                 int
	LogLevel                    string
}

// LoadDefaults populates Config with development defaults. There is no
// default signing secret.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.StoreDriver = StoreMemory
	c.DatabaseDSN = ""
	c.SecretKey = ""
	c.Algorithm = SigningAlgorithm
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.HashWorkers = runtime.NumCPU()
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the JSON file named by -c/-config, then
// the environment and finally command-line flags, and validates the result.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	parseEnv(cfg, ".env")
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that prevents the server from starting.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("secret key is required (SECRET_KEY or -s)")
	}
	if c.Algorithm != "" && c.Algorithm != SigningAlgorithm {
		return fmt.Errorf("unsupported signing algorithm %q, only %s is allowed", c.Algorithm, SigningAlgorithm)
	}
	if c.AccessTokenValidityDuration <= 0 {
		return errors.New("access token validity must be positive")
	}
	if c.HashWorkers < 1 {
		return errors.New("hash workers must be at least 1")
	}
	switch c.StoreDriver {
	case StoreMemory:
	case StorePostgres, StoreSQLite:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("store driver %q requires a database DSN", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	return nil
}
