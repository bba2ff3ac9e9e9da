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

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()

	t.Run("loads every key", func(t *testing.T) {
		path := writeTempJSON(t, dir, "full.json", map[string]any{
			"endpoint_addr_grpc":             "www.example:9000",
			"store_driver":                   "postgres",
			"database_dsn":                   "postgres://u:p@db/feast",
			"secret_key":                     "my_secret_key",
			"access_token_validity_duration": "15m",
			"hash_workers":                   2,
			"log_level":                      "debug",
		})

		cfg := &Config{}
		require.NoError(t, parseJson(cfg, []string{"-config", path}))

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, StorePostgres, cfg.StoreDriver)
		assert.Equal(t, "postgres://u:p@db/feast", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, 2, cfg.HashWorkers)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("absent keys keep current values", func(t *testing.T) {
		path := writeTempJSON(t, dir, "partial.json", map[string]any{
			"secret_key": "only-secret",
		})

		cfg := validConfig()
		require.NoError(t, parseJson(cfg, []string{"-c", path}))

		assert.Equal(t, "only-secret", cfg.SecretKey)
		assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
		assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := validConfig()
		require.NoError(t, parseJson(cfg, []string{"-s", "x"}))
		assert.Equal(t, validConfig(), cfg)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Error(t, parseJson(&Config{}, []string{"-c", bad}))
	})
}
