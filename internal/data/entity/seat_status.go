package entity

import "github.com/google/uuid"

// SeatStatus is one entry of a screening's seat map.
type SeatStatus struct {
	SeatID   uuid.UUID `json:"seat_id"`
	Row      string    `json:"row"`
	Number   int       `json:"number"`
	IsBooked bool      `json:"is_booked"`
}
