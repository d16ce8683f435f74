package http

import (
	"fmt"

	"roi-calculator/domain"
)

type roiResponse struct {
	Inputs domain.RoiInputs `json:"inputs"`
	Result domain.RoiResult `json:"result"`
	// Display is the percentage as shown to the user, e.g. "7.00%".
	Display string `json:"display"`
}

type widgetResponse struct {
	domain.Widget
	Result  domain.RoiResult `json:"result"`
	Display string           `json:"display"`
}

func formatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

func newRoiResponse(in domain.RoiInputs, result domain.RoiResult) roiResponse {
	return roiResponse{
		Inputs:  in,
		Result:  result,
		Display: formatPercent(result.AnnualReturnPercent),
	}
}

func newWidgetResponse(w domain.Widget, result domain.RoiResult) widgetResponse {
	return widgetResponse{
		Widget:  w,
		Result:  result,
		Display: formatPercent(result.AnnualReturnPercent),
	}
}
