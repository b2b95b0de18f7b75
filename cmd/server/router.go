package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apimiddleware "github.com/phrazzld/quill-api/internal/api/middleware"
)

// Router configures the application routes and middleware chain.
func (app *application) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace(app.logger))
	r.Use(apimiddleware.CORS)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// The identity middleware never rejects; each operation enforces
		// its own authentication requirement.
		r.With(authMiddleware.Identify).Post("/query", app.dispatcher.Handle)
		r.Put("/images", app.uploads.Upload)
	})

	// Uploaded images are served statically under /images.
	fileServer := http.FileServer(http.Dir(app.blobStore.Dir()))
	r.Handle("/images/*", http.StripPrefix("/images/", fileServer))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
