package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/feastkeeper/internal/flagx"
	"github.com/dmitrijs2005/feastkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the optional configuration file.
// Only keys present in the file override the current values.
type JsonConfig struct {
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	StoreDriver                 *string         `json:"store_driver"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	HashWorkers                 *int            `json:"hash_workers"`
	LogLevel                    *string         `json:"log_level"`
}

// parseJson overlays values from the file given by -c/-config in args.
// Without the flag nothing happens.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.StoreDriver, c.StoreDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.HashWorkers != nil {
		config.HashWorkers = *c.HashWorkers
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
