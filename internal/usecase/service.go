package usecase

import (
	"cinema-screening/internal/cache"
	"cinema-screening/internal/data/repository"
	"cinema-screening/internal/queue"

	"go.uber.org/zap"
)

type Service struct {
	Room      RoomService
	Movie     MovieService
	Screening ScreeningService
	Seat      SeatService
	Booking   BookingService
}

func NewService(
	repo *repository.Repository,
	seatMaps cache.SeatMapCache,
	events queue.BookingPublisher,
	log *zap.Logger,
) *Service {
	return &Service{
		Room:      NewRoomService(repo, log),
		Movie:     NewMovieService(repo, log),
		Screening: NewScreeningService(repo, seatMaps, log),
		Seat:      NewSeatService(repo, seatMaps, log),
		Booking:   NewBookingService(repo, seatMaps, events, log),
	}
}
