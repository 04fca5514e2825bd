package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lingokit/lingo-api/internal/api"
	apimiddleware "github.com/lingokit/lingo-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService)
	practiceHandler := api.NewPracticeHandler(app.progressService)
	progressHandler := api.NewProgressHandler(app.progressService)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Practice session endpoints
			r.Post("/practice/sessions", practiceHandler.StartSession)
			r.Post("/practice/sessions/{id}/answers", practiceHandler.SubmitAnswer)
			r.Post("/practice/sessions/{id}/complete", practiceHandler.CompleteSession)

			// Lesson endpoints
			r.Post("/lessons/{id}/complete", practiceHandler.CompleteLesson)

			// Progress endpoints
			r.Get("/progress", progressHandler.GetProgress)
			r.Get("/achievements", progressHandler.ListAchievements)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
