package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/wanderday/go-hangout-itinerary/internal/api/auth"
	"github.com/wanderday/go-hangout-itinerary/internal/api/itineraries"
	"github.com/wanderday/go-hangout-itinerary/internal/api/itinerary"
)

// Config contains dependencies needed for the router setup
type Config struct {
	AuthHandler            *auth.Handler
	ItineraryHandler       *itinerary.Handler
	ItinerariesHandler     *itineraries.Handler
	AuthenticateMiddleware func(http.Handler) http.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are applied before
// mounting this router in main.go. The /api paths are the front end's wire
// contract; exact paths matter.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Post("/generate-itinerary", cfg.ItineraryHandler.GenerateItinerary)
			r.Post("/register", cfg.AuthHandler.Register)
			r.Post("/login", cfg.AuthHandler.Login)
		})

		// Routes requiring a bearer token
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthenticateMiddleware)

			r.Post("/itineraries", cfg.ItinerariesHandler.Save)
			r.Get("/itineraries", cfg.ItinerariesHandler.List)
			r.Delete("/itineraries/{id}", cfg.ItinerariesHandler.Delete)
		})
	})

	return r
}
