package wire

import (
	"cinema-screening/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeat(r chi.Router, seatHandler *adaptor.SeatHandler) {
	r.Route("/api/seats", func(r chi.Router) {
		r.Get("/", seatHandler.GetSeats)
		r.Post("/", seatHandler.CreateSeat)
		r.Get("/{id}", seatHandler.GetSeatByID)
		r.Put("/{id}", seatHandler.UpdateSeat)
		r.Delete("/{id}", seatHandler.DeleteSeat)
	})
}
