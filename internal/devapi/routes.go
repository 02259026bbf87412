package devapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/stream-console/internal/app"
	"github.com/MKhiriev/stream-console/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/login", h.login)
			r.Post("/auth/logout", h.logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/me", h.me)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.listUsers)
				r.Post("/", h.createUser)
				r.Get("/{id}", h.getUser)
				r.Patch("/{id}", h.updateUser)
				r.Delete("/{id}", h.deleteUser)
			})

			r.Route("/stream-info", func(r chi.Router) {
				r.Get("/", h.listStreams)
				r.Post("/", h.createStream)
				r.Get("/{id}", h.getStream)
				r.Patch("/{id}", h.updateStream)
				r.Delete("/{id}", h.deleteStream)
			})
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}

// notFound answers unknown paths and unsupported methods alike, so route
// existence is not revealed.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteEnvelope(w, http.StatusNotFound, app.MsgRouteNotFound, nil)
}
