package response

import (
	"time"

	"cinema-screening/internal/data/entity"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	ScreeningID   string    `json:"screening_id"`
	SeatID        string    `json:"seat_id"`
	CustomerName  *string   `json:"customer_name,omitempty"`
	CustomerEmail *string   `json:"customer_email,omitempty"`
	BookedAt      time.Time `json:"booked_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		ScreeningID:   booking.ScreeningID.String(),
		SeatID:        booking.SeatID.String(),
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		BookedAt:      booking.CreatedAt,
	}
}
