package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/nathanlav/matchup-tracker/internal/api/handlers"
	"github.com/nathanlav/matchup-tracker/internal/api/middleware"
	"github.com/nathanlav/matchup-tracker/internal/service"
)

func NewRouter(services *service.Services, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, log)
	championHandler := handlers.NewChampionHandler(services.Champion, log)
	matchupHandler := handlers.NewMatchupHandler(services.Matchup, log)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Get("/me", authHandler.Me)
		})
	})

	// Champion directory is read-only and public
	r.Get("/champions", championHandler.List)

	r.Route("/matchups", func(r chi.Router) {
		// Listing (with filters) is public
		r.Get("/", matchupHandler.List)

		// Mutations require a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Post("/", matchupHandler.Create)
			r.Put("/{id}", matchupHandler.Update)
			r.Delete("/{id}", matchupHandler.Delete)
		})
	})

	return r
}
