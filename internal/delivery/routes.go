package delivery

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(r chi.Router, h *Handler) {
	// A double-clicked record button must not stack microphone sessions.
	throttle := httprate.LimitByIP(2, 1*time.Second)

	r.With(middleware.Recoverer).Get("/", h.Index)
	r.With(middleware.Recoverer).Get("/api/languages", h.Languages)
	r.With(middleware.Recoverer).Get("/api/session", h.Session)
	r.With(middleware.Recoverer, throttle).Post("/api/record", h.Record)
	r.With(middleware.Recoverer, throttle).Post("/api/translate", h.Translate)
}
