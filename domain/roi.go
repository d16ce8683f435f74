package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a field name is not one of the calculator inputs.
var ErrUnknownField = errors.New("unknown field")

// Field identifies one of the three calculator inputs.
type Field string

const (
	FieldPurchasePrice Field = "purchasePrice"
	FieldMonthlyRent   Field = "monthlyRent"
	FieldAnnualFees    Field = "annualFees"
)

// ParseField maps a wire name to a Field.
func ParseField(name string) (Field, error) {
	switch f := Field(name); f {
	case FieldPurchasePrice, FieldMonthlyRent, FieldAnnualFees:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

type RoiInputs struct {
	PurchasePrice float64 `json:"purchasePrice"`
	MonthlyRent   float64 `json:"monthlyRent"`
	AnnualFees    float64 `json:"annualFees"`
}

// With returns a copy of the inputs with exactly one field replaced.
func (in RoiInputs) With(field Field, value float64) RoiInputs {
	switch field {
	case FieldPurchasePrice:
		in.PurchasePrice = value
	case FieldMonthlyRent:
		in.MonthlyRent = value
	case FieldAnnualFees:
		in.AnnualFees = value
	}
	return in
}

// RoiResult is always derived from a RoiInputs, never stored on its own.
type RoiResult struct {
	AnnualReturnPercent float64 `json:"annualReturnPercent"`
	AnnualIncome        float64 `json:"annualIncome"`
	NetIncome           float64 `json:"netIncome"`
}

// Seed values shown when a calculator is first opened.
const (
	DefaultPurchasePrice = 208000.0
	DefaultMonthlyRent   = 1213.0
	DefaultAnnualFees    = 0.0
)

func DefaultInputs() RoiInputs {
	return RoiInputs{
		PurchasePrice: DefaultPurchasePrice,
		MonthlyRent:   DefaultMonthlyRent,
		AnnualFees:    DefaultAnnualFees,
	}
}
