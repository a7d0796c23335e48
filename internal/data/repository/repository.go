package repository

import (
	"cinema-screening/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Room      RoomRepository
	Movie     MovieRepository
	Screening ScreeningRepository
	Seat      SeatRepository
	Booking   BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Room:      NewRoomRepository(db, log),
		Movie:     NewMovieRepository(db, log),
		Screening: NewScreeningRepository(db, log),
		Seat:      NewSeatRepository(db, log),
		Booking:   NewBookingRepository(db, log),
	}
}
