package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from the environment. Variables from envFile are
// loaded first without overriding anything already exported; a missing file
// is fine.
func parseEnv(config *Config, envFile string) {
	_ = godotenv.Load(envFile)

	config.EndpointAddrGRPC = getEnv("GRPC_ADDRESS", config.EndpointAddrGRPC)
	config.StoreDriver = getEnv("STORE_DRIVER", config.StoreDriver)
	config.DatabaseDSN = getEnv("DATABASE_URL", config.DatabaseDSN)
	config.SecretKey = getEnv("SECRET_KEY", config.SecretKey)
	config.Algorithm = getEnv("ALGORITHM", config.Algorithm)
	config.LogLevel = getEnv("LOG_LEVEL", config.LogLevel)
	config.HashWorkers = getEnvAsInt("HASH_WORKERS", config.HashWorkers)

	if minutes, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES")); err == nil {
		config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
