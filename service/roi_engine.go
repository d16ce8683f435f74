package service

import (
	"math"
	"strconv"
	"strings"

	"roi-calculator/domain"
)

// ParseAmount reads a numeric field edit. Text that is empty or not a
// finite number reads as 0 so the field stays editable.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(v)
}

// ComputeAnnualReturnPercent returns annual net rental income as a
// percentage of the purchase price. A zero price yields 0.
func ComputeAnnualReturnPercent(in domain.RoiInputs) float64 {
	return Compute(in).AnnualReturnPercent
}

// Compute is ComputeAnnualReturnPercent with the income breakdown.
// Results are neither rounded nor clamped; negative returns are valid.
// A derived value that overflows to ±Inf reads as 0, like a zero price.
func Compute(in domain.RoiInputs) domain.RoiResult {
	annualIncome := in.MonthlyRent * MonthsPerYear
	netIncome := annualIncome - in.AnnualFees

	result := domain.RoiResult{
		AnnualIncome: finiteOrZero(annualIncome),
		NetIncome:    finiteOrZero(netIncome),
	}
	if in.PurchasePrice == 0 {
		return result
	}
	result.AnnualReturnPercent = finiteOrZero((netIncome / in.PurchasePrice) * 100)
	return result
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Engine owns the inputs of a single calculator. It is not safe for
// concurrent use.
type Engine struct {
	inputs    domain.RoiInputs
	observers map[int]func(domain.RoiResult)
	nextID    int
}

func NewEngine(initial domain.RoiInputs) *Engine {
	return &Engine{
		inputs:    initial,
		observers: make(map[int]func(domain.RoiResult)),
	}
}

// SetField replaces one input with the parsed raw text and notifies
// subscribers with the recomputed result.
func (e *Engine) SetField(field domain.Field, raw string) {
	e.inputs = e.inputs.With(field, ParseAmount(raw))

	result := e.Result()
	// Observers added during this round are first called on the next edit.
	n := e.nextID
	for id := 0; id < n; id++ {
		if fn, ok := e.observers[id]; ok {
			fn(result)
		}
	}
}

func (e *Engine) Inputs() domain.RoiInputs {
	return e.inputs
}

// Result is recomputed on every call.
func (e *Engine) Result() domain.RoiResult {
	return Compute(e.inputs)
}

// Subscribe registers fn to be called after every SetField, in
// subscription order. The returned func removes it.
func (e *Engine) Subscribe(fn func(domain.RoiResult)) func() {
	id := e.nextID
	e.nextID++
	e.observers[id] = fn
	return func() {
		delete(e.observers, id)
	}
}
