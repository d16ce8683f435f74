package service

const (
	MonthsPerYear = 12

	// Limites para el cálculo inverso de rentabilidad objetivo
	MaxTargetReturnPercent = 1000.0
	MaxPurchasePrice       = 1_000_000_000.0 // mil millones

	cacheKeyPrefix = "roi:result:"
)
