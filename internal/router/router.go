package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/planora-ai/planora-api/internal/api/booking"
	"github.com/planora-ai/planora-api/internal/api/chat"
	"github.com/planora-ai/planora-api/internal/api/destinations"
	"github.com/planora-ai/planora-api/internal/api/search"
	"github.com/planora-ai/planora-api/internal/api/trip"
	"github.com/planora-ai/planora-api/internal/api/weather"
)

// Config contains the handlers the router wires up.
type Config struct {
	TripHandler         *trip.Handler
	DestinationsHandler *destinations.Handler
	WeatherHandler      *weather.Handler
	SearchHandler       *search.Handler
	ChatHandler         *chat.Handler
	BookingHandler      *booking.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are applied before
// mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/trips/plan", cfg.TripHandler.PlanTrip)

		r.Get("/destinations", cfg.DestinationsHandler.GetDestinations)
		r.Get("/destinations/check", cfg.DestinationsHandler.CheckDestination)

		r.Get("/weather/intelligence", cfg.WeatherHandler.GetIntelligence)
		r.Get("/weather/forecast", cfg.WeatherHandler.GetForecast)

		r.Get("/hotels", cfg.SearchHandler.SearchHotels)

		r.Post("/chat", cfg.ChatHandler.Chat)

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", cfg.BookingHandler.CreateBooking)
			r.Get("/", cfg.BookingHandler.ListBookings)
			r.Get("/{id}", cfg.BookingHandler.GetBooking)
			r.Delete("/{id}", cfg.BookingHandler.CancelBooking)
		})
	})

	return r
}
