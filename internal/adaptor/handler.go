package adaptor

import (
	"cinema-screening/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Room      *RoomHandler
	Movie     *MovieHandler
	Screening *ScreeningHandler
	Seat      *SeatHandler
	Booking   *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Room:      NewRoomHandler(service.Room, service.Seat, log),
		Movie:     NewMovieHandler(service.Movie, log),
		Screening: NewScreeningHandler(service.Screening, log),
		Seat:      NewSeatHandler(service.Seat, log),
		Booking:   NewBookingHandler(service.Booking, log),
	}
}
