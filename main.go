package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"roi-calculator/config"
	httpLayer "roi-calculator/http"
	"roi-calculator/repository"
	"roi-calculator/service"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "roi-calculator").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger = logger.Level(cfg.LogLevel)

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, results will not be cached until it recovers")
		}
		cancel()
		cache = redisCache
	} else {
		cache = repository.NewMemoryCache()
	}

	widgetRepo := repository.NewWidgetRepositoryMemory()

	roiService := service.NewRoiService(cache, logger)
	widgetService := service.NewWidgetService(widgetRepo, logger)
	targetYieldService := service.NewTargetYieldService(logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	handler := httpLayer.NewRouter(httpLayer.Handlers{
		Roi:         httpLayer.NewRoiHandler(roiService, logger),
		TargetYield: httpLayer.NewTargetYieldHandler(targetYieldService, logger),
		Widget:      httpLayer.NewWidgetHandler(widgetService, logger),
		Labels:      httpLayer.NewLabelsHandler(logger),
	}, rateLimiter, logger)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error().Err(err).Msg("error starting server")
		return
	case <-quit:
		logger.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server exited")
}
