package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"roi-calculator/domain"
	"roi-calculator/service"
)

type RoiHandler struct {
	service *service.RoiService
	logger  zerolog.Logger
}

func NewRoiHandler(service *service.RoiService, logger zerolog.Logger) *RoiHandler {
	return &RoiHandler{service: service, logger: logger}
}

func (h *RoiHandler) Calculate(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.RoiInputs
	if !decodeJSONBody(w, r, &input) {
		return
	}

	result := h.service.Calculate(r.Context(), input)

	writeJSON(w, h.logger, http.StatusOK, newRoiResponse(input, result))
}
