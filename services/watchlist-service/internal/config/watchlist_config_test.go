package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_DSN", "postgres://localhost/watchlist")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("TMDB_API_KEY", "key")
}

func TestLoadWatchlistConfigDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("TMDB_TIMEOUT_SECONDS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := LoadWatchlistConfig()
	if cfg.TMDBBaseURL != "https://api.themoviedb.org/3" {
		t.Fatalf("TMDBBaseURL = %q", cfg.TMDBBaseURL)
	}
	if cfg.TMDBLanguage != "uk-UA" {
		t.Fatalf("TMDBLanguage = %q", cfg.TMDBLanguage)
	}
	if cfg.TMDBTimeout != 5*time.Second {
		t.Fatalf("TMDBTimeout = %v", cfg.TMDBTimeout)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("RedisAddr = %q, want empty", cfg.RedisAddr)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadWatchlistConfigMissingSecretPanics(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET_KEY", "")
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic without JWT_SECRET_KEY")
		}
	}()
	LoadWatchlistConfig()
}

func TestSplitList(t *testing.T) {
	got := splitList(" https://a.example , ,https://b.example")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("splitList = %v", got)
	}
}
