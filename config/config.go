package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	Addr       string
	RedisAddr  string
	CacheTTL   time.Duration
	RateLimit  int
	RateWindow time.Duration
	LogLevel   zerolog.Level
}

func Default() Config {
	return Config{
		Addr:       ":8080",
		CacheTTL:   10 * time.Minute,
		RateLimit:  5,
		RateWindow: time.Minute,
		LogLevel:   zerolog.InfoLevel,
	}
}

// Load reads an optional .env file and then the ROI_* environment variables.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an environment lookup function.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("ROI_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("ROI_REDIS_ADDR"); ok {
		cfg.RedisAddr = v
	}

	if v, ok := lookup("ROI_CACHE_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid ROI_CACHE_TTL %q", v)
		}
		cfg.CacheTTL = d
	}

	if v, ok := lookup("ROI_RATE_LIMIT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid ROI_RATE_LIMIT %q", v)
		}
		cfg.RateLimit = n
	}

	if v, ok := lookup("ROI_RATE_WINDOW"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid ROI_RATE_WINDOW %q", v)
		}
		cfg.RateWindow = d
	}

	// The limiter refills one token every RateWindow/RateLimit.
	if cfg.RateWindow/time.Duration(cfg.RateLimit) == 0 {
		return Config{}, fmt.Errorf("ROI_RATE_WINDOW %s is too short for ROI_RATE_LIMIT %d", cfg.RateWindow, cfg.RateLimit)
	}

	if v, ok := lookup("ROI_LOG_LEVEL"); ok && v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ROI_LOG_LEVEL %q: %w", v, err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}
