package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type Handlers struct {
	Roi         *RoiHandler
	TargetYield *TargetYieldHandler
	Widget      *WidgetHandler
	Labels      *LabelsHandler
}

func NewRouter(h Handlers, limiter *RateLimiter, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	limited := func(fn http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, fn)
	}

	mux.Handle("/roi/calculate", limited(h.Roi.Calculate))
	mux.Handle("/roi/target-rent", limited(h.TargetYield.RentForTargetYield))
	mux.Handle("/roi/widgets", limited(h.Widget.Create))
	mux.Handle("/roi/widgets/{id}", limited(h.Widget.Widget))
	mux.Handle("/roi/labels", limited(h.Labels.Labels))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	return LoggingMiddleware(logger, mux)
}
