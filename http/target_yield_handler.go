package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"roi-calculator/domain"
	"roi-calculator/service"
)

type TargetYieldHandler struct {
	service *service.TargetYieldService
	logger  zerolog.Logger
}

func NewTargetYieldHandler(service *service.TargetYieldService, logger zerolog.Logger) *TargetYieldHandler {
	return &TargetYieldHandler{service: service, logger: logger}
}

func (h *TargetYieldHandler) RentForTargetYield(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.TargetYieldInput
	if !decodeJSONBody(w, r, &input) {
		return
	}

	result, err := h.service.RentForTargetYield(input)
	if err != nil {
		h.logger.Debug().Err(err).Msg("rejected target yield request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
