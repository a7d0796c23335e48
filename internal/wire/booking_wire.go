package wire

import (
	"cinema-screening/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Get("/", bookingHandler.GetBookings)

		// POST /api/bookings - 409 when the seat is taken for the screening
		r.Post("/", bookingHandler.CreateBooking)

		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Delete("/{id}", bookingHandler.DeleteBooking)
	})
}
