package domain

type TargetYieldInput struct {
	PurchasePrice       float64 `json:"purchasePrice"`
	AnnualFees          float64 `json:"annualFees"`
	TargetReturnPercent float64 `json:"targetReturnPercent"`
}

type TargetYieldResult struct {
	MonthlyRent  float64 `json:"monthlyRent"`
	AnnualIncome float64 `json:"annualIncome"`
	NetIncome    float64 `json:"netIncome"`
}
