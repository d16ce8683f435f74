package http

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"roi-calculator/domain"
	"roi-calculator/repository"
	"roi-calculator/service"
)

type WidgetHandler struct {
	service *service.WidgetService
	logger  zerolog.Logger
}

func NewWidgetHandler(service *service.WidgetService, logger zerolog.Logger) *WidgetHandler {
	return &WidgetHandler{service: service, logger: logger}
}

// fieldEdit carries the raw text of a single input, exactly as typed.
type fieldEdit struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (h *WidgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	locale := domain.ParseLocale(r.URL.Query().Get("lang"))

	widget, err := h.service.Create(locale)
	if err != nil {
		h.logger.Error().Err(err).Msg("error creating widget")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, newWidgetResponse(widget, service.Compute(widget.Inputs)))
}

// Widget serves GET, PATCH and DELETE on a single widget.
func (h *WidgetHandler) Widget(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	switch r.Method {
	case http.MethodGet:
		h.get(w, id)
	case http.MethodPatch:
		h.setField(w, r, id)
	case http.MethodDelete:
		h.delete(w, id)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *WidgetHandler) get(w http.ResponseWriter, id string) {
	widget, result, err := h.service.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, newWidgetResponse(widget, result))
}

func (h *WidgetHandler) setField(w http.ResponseWriter, r *http.Request, id string) {
	var edit fieldEdit
	if !decodeJSONBody(w, r, &edit) {
		return
	}

	field, err := domain.ParseField(edit.Field)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	widget, result, err := h.service.SetField(id, field, edit.Value)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, newWidgetResponse(widget, result))
}

func (h *WidgetHandler) delete(w http.ResponseWriter, id string) {
	if err := h.service.Delete(id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *WidgetHandler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrWidgetNotFound) {
		http.Error(w, "widget not found", http.StatusNotFound)
		return
	}
	h.logger.Error().Err(err).Msg("widget operation failed")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
