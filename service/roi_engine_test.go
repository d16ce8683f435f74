package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roi-calculator/domain"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "integer", raw: "208000", want: 208000},
		{name: "decimal", raw: "1213.33", want: 1213.33},
		{name: "surrounding whitespace", raw: "  42 ", want: 42},
		{name: "negative", raw: "-5", want: -5},
		{name: "exponent", raw: "1e3", want: 1000},
		{name: "empty", raw: "", want: 0},
		{name: "letters", raw: "abc", want: 0},
		{name: "numeric prefix", raw: "12abc", want: 0},
		{name: "nan", raw: "NaN", want: 0},
		{name: "infinity", raw: "+Inf", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, ParseAmount(tt.raw), 1e-9)
		})
	}
}

func TestComputeAnnualReturnPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input domain.RoiInputs
		want  float64
	}{
		{
			name:  "default scenario",
			input: domain.DefaultInputs(),
			want:  14556.0 / 208000.0 * 100,
		},
		{
			name:  "zero price returns zero",
			input: domain.RoiInputs{PurchasePrice: 0, MonthlyRent: 1213, AnnualFees: 0},
			want:  0,
		},
		{
			name:  "zero price with fees returns zero",
			input: domain.RoiInputs{PurchasePrice: 0, MonthlyRent: 0, AnnualFees: 9000},
			want:  0,
		},
		{
			name:  "fees exceed income",
			input: domain.RoiInputs{PurchasePrice: 100000, MonthlyRent: 100, AnnualFees: 5000},
			want:  -3.8,
		},
		{
			name:  "fees reduce return",
			input: domain.RoiInputs{PurchasePrice: 100000, MonthlyRent: 1000, AnnualFees: 2000},
			want:  10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, ComputeAnnualReturnPercent(tt.input), 1e-9)
		})
	}
}

func TestComputeAnnualReturnPercent_DefaultIsAboutSevenPercent(t *testing.T) {
	t.Parallel()

	got := ComputeAnnualReturnPercent(domain.DefaultInputs())
	assert.InDelta(t, 6.9981, got, 1e-4)
}

func TestComputeAnnualReturnPercent_IsIdempotent(t *testing.T) {
	t.Parallel()

	in := domain.RoiInputs{PurchasePrice: 350000, MonthlyRent: 2100, AnnualFees: 1800}
	before := in

	first := ComputeAnnualReturnPercent(in)
	for range 10 {
		require.Equal(t, first, ComputeAnnualReturnPercent(in))
	}
	assert.Equal(t, before, in)
}

func TestCompute_Breakdown(t *testing.T) {
	t.Parallel()

	result := Compute(domain.RoiInputs{PurchasePrice: 100000, MonthlyRent: 100, AnnualFees: 5000})

	assert.InDelta(t, 1200, result.AnnualIncome, 1e-9)
	assert.InDelta(t, -3800, result.NetIncome, 1e-9)
	assert.InDelta(t, -3.8, result.AnnualReturnPercent, 1e-9)
	assert.Negative(t, result.AnnualReturnPercent)
}

func TestEngine_SetFieldReplacesOnlyNamedField(t *testing.T) {
	t.Parallel()

	engine := NewEngine(domain.DefaultInputs())
	engine.SetField(domain.FieldAnnualFees, "1500")

	assert.Equal(t, domain.RoiInputs{
		PurchasePrice: domain.DefaultPurchasePrice,
		MonthlyRent:   domain.DefaultMonthlyRent,
		AnnualFees:    1500,
	}, engine.Inputs())
}

func TestEngine_NonNumericEditZeroesField(t *testing.T) {
	t.Parallel()

	engine := NewEngine(domain.DefaultInputs())

	require.NotPanics(t, func() {
		engine.SetField(domain.FieldMonthlyRent, "abc")
	})

	assert.Zero(t, engine.Inputs().MonthlyRent)
	assert.Equal(t, domain.DefaultPurchasePrice, engine.Inputs().PurchasePrice)
	assert.Zero(t, engine.Result().AnnualReturnPercent)
}

func TestEngine_EmptyPriceEditYieldsZero(t *testing.T) {
	t.Parallel()

	engine := NewEngine(domain.DefaultInputs())
	engine.SetField(domain.FieldPurchasePrice, "")

	assert.Zero(t, engine.Inputs().PurchasePrice)
	assert.Zero(t, engine.Result().AnnualReturnPercent)
}

func TestEngine_UnknownFieldIsNoOp(t *testing.T) {
	t.Parallel()

	engine := NewEngine(domain.DefaultInputs())
	engine.SetField(domain.Field("bogus"), "1")

	assert.Equal(t, domain.DefaultInputs(), engine.Inputs())
}

func TestEngine_SubscribersSeeEveryRecompute(t *testing.T) {
	t.Parallel()

	engine := NewEngine(domain.RoiInputs{PurchasePrice: 100000})

	var seen []float64
	var order []string
	unsubscribe := engine.Subscribe(func(r domain.RoiResult) {
		seen = append(seen, r.AnnualReturnPercent)
		order = append(order, "first")
	})
	engine.Subscribe(func(domain.RoiResult) {
		order = append(order, "second")
	})

	engine.SetField(domain.FieldMonthlyRent, "1000")
	engine.SetField(domain.FieldAnnualFees, "2000")

	require.Len(t, seen, 2)
	assert.InDelta(t, 12, seen[0], 1e-9)
	assert.InDelta(t, 10, seen[1], 1e-9)
	assert.Equal(t, []string{"first", "second", "first", "second"}, order)

	unsubscribe()
	engine.SetField(domain.FieldAnnualFees, "0")
	assert.Len(t, seen, 2)
}

func TestEngine_IndependentInstances(t *testing.T) {
	t.Parallel()

	a := NewEngine(domain.DefaultInputs())
	b := NewEngine(domain.DefaultInputs())

	a.SetField(domain.FieldMonthlyRent, "0")

	assert.Zero(t, a.Inputs().MonthlyRent)
	assert.Equal(t, domain.DefaultMonthlyRent, b.Inputs().MonthlyRent)
}

func TestCompute_OverflowReadsAsZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input domain.RoiInputs
	}{
		{name: "huge rent", input: domain.RoiInputs{PurchasePrice: 208000, MonthlyRent: 1e308}},
		{name: "tiny price", input: domain.RoiInputs{PurchasePrice: 5e-324, MonthlyRent: 1}},
		{name: "huge fees", input: domain.RoiInputs{PurchasePrice: 1, MonthlyRent: 1e307, AnnualFees: -math.MaxFloat64}},
		{name: "nan rent", input: domain.RoiInputs{PurchasePrice: 1, MonthlyRent: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := Compute(tt.input)
			assertFinite(t, result)
			assert.Zero(t, result.AnnualReturnPercent)
		})
	}
}

func TestEngine_OverflowingEditKeepsResultFinite(t *testing.T) {
	t.Parallel()

	engine := NewEngine(domain.DefaultInputs())

	engine.SetField(domain.FieldMonthlyRent, "1e308")
	assert.InDelta(t, 1e308, engine.Inputs().MonthlyRent, 1e292)
	assertFinite(t, engine.Result())

	engine.SetField(domain.FieldMonthlyRent, "1")
	engine.SetField(domain.FieldPurchasePrice, "5e-324")
	assertFinite(t, engine.Result())
	assert.Zero(t, engine.Result().AnnualReturnPercent)
}

func TestEngine_LateSubscriberWaitsForNextEdit(t *testing.T) {
	t.Parallel()

	engine := NewEngine(domain.DefaultInputs())

	late := 0
	engine.Subscribe(func(domain.RoiResult) {
		engine.Subscribe(func(domain.RoiResult) { late++ })
	})

	engine.SetField(domain.FieldAnnualFees, "1")
	assert.Equal(t, 0, late)

	engine.SetField(domain.FieldAnnualFees, "2")
	assert.Equal(t, 1, late)
}

func FuzzComputeAnnualReturnPercent(f *testing.F) {
	f.Add(208000.0, 1213.0, 0.0)
	f.Add(0.0, 1213.0, 0.0)
	f.Add(100000.0, 100.0, 5000.0)
	f.Add(5e-324, 1.0, 0.0)
	f.Add(1.0, 1e308, 0.0)
	f.Add(math.MaxFloat64, math.MaxFloat64, -math.MaxFloat64)

	f.Fuzz(func(t *testing.T, price, rent, fees float64) {
		in := domain.RoiInputs{PurchasePrice: price, MonthlyRent: rent, AnnualFees: fees}

		first := Compute(in)
		assertFinite(t, first)
		require.Equal(t, first, Compute(in))
		require.Equal(t, first.AnnualReturnPercent, ComputeAnnualReturnPercent(in))
	})
}

func FuzzEngineSetField(f *testing.F) {
	f.Add("purchasePrice", "208000")
	f.Add("monthlyRent", "abc")
	f.Add("monthlyRent", "1e308")
	f.Add("purchasePrice", "5e-324")
	f.Add("annualFees", "")
	f.Add("annualFees", "-Inf")

	f.Fuzz(func(t *testing.T, name, raw string) {
		field, err := domain.ParseField(name)
		if err != nil {
			t.Skip()
		}

		engine := NewEngine(domain.DefaultInputs())
		engine.SetField(field, raw)

		first := engine.Result()
		assertFinite(t, first)
		require.Equal(t, first, engine.Result())
		require.Equal(t, Compute(engine.Inputs()), first)
	})
}

func assertFinite(t *testing.T, r domain.RoiResult) {
	t.Helper()
	for _, v := range []float64{r.AnnualReturnPercent, r.AnnualIncome, r.NetIncome} {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite value %v in %+v", v, r)
	}
}
