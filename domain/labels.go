package domain

import "strings"

type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleSpanish Locale = "es"
)

// ParseLocale falls back to English for anything that is not Spanish.
func ParseLocale(s string) Locale {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "es") {
		return LocaleSpanish
	}
	return LocaleEnglish
}

type Labels struct {
	Locale         Locale `json:"locale"`
	SpeechLanguage string `json:"speechLanguage"`
	Headline       string `json:"headline"`
	Subheadline    string `json:"subheadline"`
	Tagline        string `json:"tagline"`
	CalculatorName string `json:"calculatorName"`
	PurchasePrice  string `json:"purchasePrice"`
	MonthlyRent    string `json:"monthlyRent"`
	AnnualFees     string `json:"annualFees"`
	YieldHint      string `json:"yieldHint"`
	ResultTitle    string `json:"resultTitle"`
	Disclaimer     string `json:"disclaimer"`
}

var labelSets = map[Locale]Labels{
	LocaleEnglish: {
		Locale:         LocaleEnglish,
		SpeechLanguage: "en-US",
		Headline:       "Local Mastery. Global Reach.",
		Subheadline:    "Connecting South Florida's finest properties with qualified buyers from around the world.",
		Tagline:        "Premier Agent",
		CalculatorName: "ROI Calculator",
		PurchasePrice:  "Purchase Price (€)",
		MonthlyRent:    "Projected Monthly Rent (€)",
		AnnualFees:     "Annual HOA/Fees (€)",
		YieldHint:      "~7% Yield",
		ResultTitle:    "Estimated Annual ROI",
		Disclaimer:     "*Based on projected rental income vs price.",
	},
	LocaleSpanish: {
		Locale:         LocaleSpanish,
		SpeechLanguage: "es-ES",
		Headline:       "Maestría Local. Alcance Global.",
		Subheadline:    "Su puente directo entre las inversiones inmobiliarias de lujo en el sur de Florida y las oportunidades en Madrid.",
		Tagline:        "Agente Destacado",
		CalculatorName: "Calculadora de Rentabilidad",
		PurchasePrice:  "Precio de Compra (€)",
		MonthlyRent:    "Alquiler Mensual Proyectado (€)",
		AnnualFees:     "Gastos Anuales de Comunidad (€)",
		YieldHint:      "~7% Rentabilidad",
		ResultTitle:    "Rentabilidad Anual Estimada",
		Disclaimer:     "*Basado en los ingresos de alquiler proyectados frente al precio.",
	},
}

func LabelsFor(locale Locale) Labels {
	if l, ok := labelSets[locale]; ok {
		return l
	}
	return labelSets[LocaleEnglish]
}
