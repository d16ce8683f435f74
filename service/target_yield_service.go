package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"roi-calculator/domain"
)

var ErrInvalidTargetYield = errors.New("invalid target yield input")

type TargetYieldService struct {
	logger zerolog.Logger
}

func NewTargetYieldService(logger zerolog.Logger) *TargetYieldService {
	return &TargetYieldService{
		logger: logger.With().Str("component", "target_yield_service").Logger(),
	}
}

// RentForTargetYield finds the monthly rent at which the annual return
// equals the target percentage.
func (s *TargetYieldService) RentForTargetYield(
	input domain.TargetYieldInput,
) (domain.TargetYieldResult, error) {

	if input.PurchasePrice <= 0 {
		return domain.TargetYieldResult{}, fmt.Errorf("%w: purchase price must be positive", ErrInvalidTargetYield)
	}
	if input.PurchasePrice > MaxPurchasePrice {
		return domain.TargetYieldResult{}, fmt.Errorf("%w: purchase price exceeds %.2f", ErrInvalidTargetYield, MaxPurchasePrice)
	}
	if input.AnnualFees < 0 {
		return domain.TargetYieldResult{}, fmt.Errorf("%w: annual fees must not be negative", ErrInvalidTargetYield)
	}
	if input.TargetReturnPercent < 0 {
		return domain.TargetYieldResult{}, fmt.Errorf("%w: target return must not be negative", ErrInvalidTargetYield)
	}
	if input.TargetReturnPercent > MaxTargetReturnPercent {
		return domain.TargetYieldResult{}, fmt.Errorf("%w: target return exceeds %.2f%%", ErrInvalidTargetYield, MaxTargetReturnPercent)
	}

	netIncome := input.TargetReturnPercent / 100 * input.PurchasePrice
	annualIncome := netIncome + input.AnnualFees

	result := domain.TargetYieldResult{
		MonthlyRent:  annualIncome / MonthsPerYear,
		AnnualIncome: annualIncome,
		NetIncome:    netIncome,
	}

	s.logger.Debug().
		Float64("target_percent", input.TargetReturnPercent).
		Float64("monthly_rent", result.MonthlyRent).
		Msg("computed rent for target yield")

	return result, nil
}
