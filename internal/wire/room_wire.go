package wire

import (
	"cinema-screening/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler) {
	r.Route("/api/rooms", func(r chi.Router) {
		r.Get("/", roomHandler.GetRooms)
		r.Post("/", roomHandler.CreateRoom)

		r.Get("/{id}", roomHandler.GetRoomByID)
		r.Put("/{id}", roomHandler.UpdateRoom)
		r.Delete("/{id}", roomHandler.DeleteRoom)

		// GET /api/rooms/{id}/screenings - screenings ordered by start time
		r.Get("/{id}/screenings", roomHandler.GetRoomScreenings)

		// POST /api/rooms/{id}/seats/bulk - lay out rows A.. of numbered seats
		r.Post("/{id}/seats/bulk", roomHandler.BulkCreateSeats)
	})
}
