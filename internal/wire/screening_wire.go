package wire

import (
	"cinema-screening/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireScreening(r chi.Router, screeningHandler *adaptor.ScreeningHandler) {
	r.Route("/api/screenings", func(r chi.Router) {
		r.Get("/", screeningHandler.GetScreenings)
		r.Post("/", screeningHandler.CreateScreening)
		r.Get("/{id}", screeningHandler.GetScreeningByID)
		r.Put("/{id}", screeningHandler.UpdateScreening)
		r.Delete("/{id}", screeningHandler.DeleteScreening)

		// GET /api/screenings/{id}/seats - seat map with is_booked per seat
		r.Get("/{id}/seats", screeningHandler.GetSeatStatus)
	})
}
