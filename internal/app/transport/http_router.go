package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/hamzamalik/flight-booking-assistant/internal/app/config"
	"github.com/hamzamalik/flight-booking-assistant/internal/app/dto"
	"github.com/hamzamalik/flight-booking-assistant/internal/app/endpoints"
	httptransport "github.com/hamzamalik/flight-booking-assistant/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/flights/search", httptransport.MakeHandlerFunc(
			endpts.Booking.SearchFlights,
			httptransport.DecodeRequest[dto.SearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Route("/bookings/{sessionID}", func(router chi.Router) {
			router.Get("/", httptransport.MakeHandlerFunc(
				endpts.Booking.GetBooking,
				httptransport.DecodeSessionRequest,
				httptransport.ResponseWithBody,
			))
			router.Post("/select", httptransport.MakeHandlerFunc(
				endpts.Booking.SelectFlight,
				httptransport.DecodeRequest[dto.SelectRequest],
				httptransport.ResponseWithBody,
			))
			router.Post("/continue", httptransport.MakeHandlerFunc(
				endpts.Booking.ContinueToBooking,
				httptransport.DecodeSessionRequest,
				httptransport.ResponseWithBody,
			))
			router.Post("/confirm", httptransport.MakeHandlerFunc(
				endpts.Booking.ConfirmBooking,
				httptransport.DecodeRequest[dto.ConfirmRequest],
				httptransport.ResponseWithBody,
			))
		})
	})

	return router
}
