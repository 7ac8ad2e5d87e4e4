package trigger

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the handlers on a chi router.
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Post("/webhook", h.Webhook)
	r.Post("/process-pending", h.ProcessPending)

	return r
}
