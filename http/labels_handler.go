package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"roi-calculator/domain"
)

type LabelsHandler struct {
	logger zerolog.Logger
}

func NewLabelsHandler(logger zerolog.Logger) *LabelsHandler {
	return &LabelsHandler{logger: logger}
}

func (h *LabelsHandler) Labels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	locale := domain.ParseLocale(r.URL.Query().Get("lang"))
	writeJSON(w, h.logger, http.StatusOK, domain.LabelsFor(locale))
}
