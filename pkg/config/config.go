package config

import (
	"log"
	"os"
	"strconv"
)

// GlobalConfig holds settings shared by every service binary.
type GlobalConfig struct {
	AccessTokenTTL int // in minutes
	ServerPort     string
	Env            string
	LogLevel       string
}

func LoadGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		AccessTokenTTL: GetEnvInt("ACCESS_TOKEN_TTL_MINUTES", 30),
		ServerPort:     GetEnvOrDefault("SERVER_PORT", "8000"),
		Env:            GetEnvOrDefault("APP_ENV", "development"),
		LogLevel:       GetEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// GetEnv retrieves the value of the environment variable named by the key.
// A missing key is a startup error: the service cannot run without it.
func GetEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	panic("critical config missing: " + key)
}

// GetEnvOrDefault retrieves the value or returns default if not set.
func GetEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt parses an integer variable, falling back to defaultValue when it is unset or malformed.
func GetEnvInt(key string, defaultValue int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid integer for %s=%q, using default %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}
