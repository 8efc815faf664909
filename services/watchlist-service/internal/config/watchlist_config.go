package config

import (
	"log"
	"strings"
	"time"

	"github.com/Nox1KCL/Movies-WatchList/pkg/config"
	"github.com/joho/godotenv"
)

// WatchlistConfig extends GlobalConfig with watchlist-service specific configurations.
type WatchlistConfig struct {
	config.GlobalConfig
	PostgreConnectionString string
	JWTSecretKey            string
	RedisAddr               string // empty selects the in-process cache
	RedisPassword           string
	RedisDB                 int
	RedisMaxRetries         int
	RedisPoolSize           int
	TMDBAPIKey              string
	TMDBBaseURL             string
	TMDBImageBase           string
	TMDBLanguage            string
	TMDBTimeout             time.Duration
	LogFile                 string
	CORSAllowedOrigins      []string
}

func LoadWatchlistConfig() *WatchlistConfig {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}
	return &WatchlistConfig{
		GlobalConfig:            *config.LoadGlobalConfig(),
		PostgreConnectionString: config.GetEnv("POSTGRES_DSN"),
		JWTSecretKey:            config.GetEnv("JWT_SECRET_KEY"),
		RedisAddr:               config.GetEnvOrDefault("REDIS_ADDR", ""),
		RedisPassword:           config.GetEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:                 config.GetEnvInt("REDIS_DB", 0),
		RedisMaxRetries:         3,
		RedisPoolSize:           10,
		TMDBAPIKey:              config.GetEnv("TMDB_API_KEY"),
		TMDBBaseURL:             config.GetEnvOrDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDBImageBase:           config.GetEnvOrDefault("TMDB_IMAGE_BASE", "https://image.tmdb.org/t/p/w500"),
		TMDBLanguage:            config.GetEnvOrDefault("TMDB_LANGUAGE", "uk-UA"),
		TMDBTimeout:             time.Duration(config.GetEnvInt("TMDB_TIMEOUT_SECONDS", 5)) * time.Second,
		LogFile:                 config.GetEnvOrDefault("LOG_FILE", "logs/watchlist.log"),
		CORSAllowedOrigins:      splitList(config.GetEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
