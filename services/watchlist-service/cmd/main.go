package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nox1KCL/Movies-WatchList/pkg/cache"
	"github.com/Nox1KCL/Movies-WatchList/pkg/jwt"
	"github.com/Nox1KCL/Movies-WatchList/pkg/logger"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/adapter"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/config"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/handler"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/repository"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	conf := config.LoadWatchlistConfig()

	log := logger.New(logger.Options{Level: conf.LogLevel, Env: conf.Env, File: conf.LogFile})
	slog.SetDefault(log)
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open(postgres.Open(conf.PostgreConnectionString), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		fatal(log, "failed to connect to database", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Movie{}); err != nil {
		fatal(log, "failed to migrate database", err)
	}

	kv, closeCache := newCache(conf, log)
	defer closeCache()

	tokenManager, err := jwt.NewTokenManager(conf.JWTSecretKey, time.Duration(conf.AccessTokenTTL)*time.Minute)
	if err != nil {
		fatal(log, "failed to create token manager", err)
	}

	tx := repository.NewTransactor(db)
	authSvc := service.NewAuthService(repository.NewUserRepository(db), tx, tokenManager, log)
	movieSvc := service.NewMovieService(repository.NewMovieRepository(db), tx, log)

	tmdb := adapter.NewTMDBAdapter(adapter.TMDBConfig{
		APIKey:   conf.TMDBAPIKey,
		BaseURL:  conf.TMDBBaseURL,
		Language: conf.TMDBLanguage,
		Timeout:  conf.TMDBTimeout,
	}, nil)
	genres := service.NewGenreCache(tmdb, kv, log)
	metadata := service.NewMetadataService(tmdb, kv, genres, conf.TMDBImageBase, log)

	r := handler.NewRouter(handler.RouterDeps{
		Auth:           authSvc,
		Movies:         movieSvc,
		Metadata:       metadata,
		AllowedOrigins: conf.CORSAllowedOrigins,
		Log:            log,
	})

	srv := &http.Server{
		Addr:              ":" + conf.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("watchlist service listening", "addr", srv.Addr, "env", conf.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(log, "failed to start server", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// newCache connects to Redis when REDIS_ADDR is set and falls back to an in-process cache otherwise.
func newCache(conf *config.WatchlistConfig, log *slog.Logger) (cache.Cache, func()) {
	if conf.RedisAddr == "" {
		log.Warn("REDIS_ADDR not set, using in-process cache")
		return cache.NewMemoryCache(), func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:       conf.RedisAddr,
		Password:   conf.RedisPassword,
		DB:         conf.RedisDB,
		MaxRetries: conf.RedisMaxRetries,
		PoolSize:   conf.RedisPoolSize,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable at startup, cache calls will degrade to misses", "addr", conf.RedisAddr, "error", err)
	}
	return cache.NewRedisCache(client), func() { _ = client.Close() }
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
