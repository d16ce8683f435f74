package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"roi-calculator/domain"
	"roi-calculator/repository"
)

type RoiService struct {
	cache   repository.CacheRepository
	logger  zerolog.Logger
	compute func(domain.RoiInputs) domain.RoiResult
}

func NewRoiService(cache repository.CacheRepository, logger zerolog.Logger) *RoiService {
	return &RoiService{
		cache:   cache,
		logger:  logger.With().Str("component", "roi_service").Logger(),
		compute: Compute,
	}
}

// Calculate computes the result for a set of inputs, memoising the whole
// result. A cache hit is returned as stored. Cache failures are logged and
// never fail the call.
func (s *RoiService) Calculate(ctx context.Context, in domain.RoiInputs) domain.RoiResult {
	key := cacheKey(in)

	if cached, ok := s.cache.Get(ctx, key); ok {
		var result domain.RoiResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result
		}
		s.logger.Warn().Str("key", key).Msg("discarding unreadable cache entry")
	}

	result := s.compute(in)

	// Guardar en cache (no crítico si falla)
	value, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to encode roi result")
		return result
	}
	if err := s.cache.Set(ctx, key, string(value)); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to cache roi result")
	}

	return result
}

func cacheKey(in domain.RoiInputs) string {
	return fmt.Sprintf("%s%g:%g:%g", cacheKeyPrefix, in.PurchasePrice, in.MonthlyRent, in.AnnualFees)
}
