// Package queue publishes booking lifecycle events to RabbitMQ.
package queue

import (
	"time"

	"cinema-screening/internal/data/entity"
)

const (
	BookingCreatedQueue = "booking.created"
	BookingDeletedQueue = "booking.deleted"
)

// BookingEvent is the JSON body of every booking message.
type BookingEvent struct {
	BookingID     string  `json:"booking_id"`
	ScreeningID   string  `json:"screening_id"`
	SeatID        string  `json:"seat_id"`
	CustomerName  *string `json:"customer_name"`
	CustomerEmail *string `json:"customer_email"`
	BookedAt      string  `json:"booked_at"`
	OccurredAt    string  `json:"occurred_at"`
}

func NewBookingEvent(booking *entity.Booking, occurredAt time.Time) BookingEvent {
	return BookingEvent{
		BookingID:     booking.ID.String(),
		ScreeningID:   booking.ScreeningID.String(),
		SeatID:        booking.SeatID.String(),
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		BookedAt:      booking.CreatedAt.UTC().Format(time.RFC3339),
		OccurredAt:    occurredAt.UTC().Format(time.RFC3339),
	}
}
