package entity

import (
	"github.com/google/uuid"
)

// Booking binds one seat to one screening. CreatedAt is the booking time.
type Booking struct {
	BaseSimple
	ScreeningID   uuid.UUID `db:"screening_id"`
	SeatID        uuid.UUID `db:"seat_id"`
	CustomerName  *string   `db:"customer_name"`
	CustomerEmail *string   `db:"customer_email"`
}
