package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobsapi/internal/caching"
	"jobsapi/internal/config"
	"jobsapi/internal/handlers"
	"jobsapi/internal/logging"
	"jobsapi/internal/repositories"
	"jobsapi/internal/routes"
	"jobsapi/internal/services"
	"jobsapi/pkg/database"

	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const version = "1.0.0"

// @title Jobs API
// @version 1.0
// @description Track job applications. Every job belongs to the user who created it.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token returned by login.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Log)
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Auth.GeneratedSecret {
		log.Warn().Msg("JWT_SECRET not set, using a generated secret; tokens will not survive a restart")
	}

	pool, err := database.NewPool(ctx, cfg.Database.URL, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.RunMigrations {
		if err := database.Migrate(ctx, pool, log); err != nil {
			return err
		}
	}

	health := handlers.NewHealthHandlers(version)
	health.AddCheck("database", pool.Ping)

	var limiterStore echoMiddleware.RateLimiterStore
	if cfg.Redis.Addr != "" {
		redisClient, err := caching.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		limiterStore = caching.NewRedisRateLimitStore(redisClient, cfg.RateLimit.Max, cfg.RateLimit.Window, log)
		health.AddCheck("redis", func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("rate limiting backed by redis")
	}

	tokens := services.NewTokenService(cfg.Auth)
	userRepo := repositories.NewUserRepo(pool)
	jobRepo := repositories.NewJobRepository(pool)

	e := routes.New(routes.Deps{
		Config:         cfg,
		Log:            log,
		Tokens:         tokens,
		Accounts:       services.NewAccountService(userRepo, tokens),
		Jobs:           services.NewJobService(jobRepo),
		RateLimitStore: limiterStore,
		Health:         health,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("version", version).Str("port", cfg.Server.Port).Str("env", cfg.Server.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
