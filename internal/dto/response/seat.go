package response

import (
	"time"

	"cinema-screening/internal/data/entity"
)

type SeatResponse struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	Row       string    `json:"row"`
	Number    int       `json:"number"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SeatStatusResponse is one entry of a screening seat map.
type SeatStatusResponse struct {
	ID       string `json:"id"`
	Row      string `json:"row"`
	Number   int    `json:"number"`
	IsBooked bool   `json:"is_booked"`
}

type SeatBulkResponse struct {
	RoomID      string `json:"room_id"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seats_per_row"`
	Created     int    `json:"created"`
}

func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:        seat.ID.String(),
		RoomID:    seat.RoomID.String(),
		Row:       seat.Row,
		Number:    seat.Number,
		Label:     seat.Label(),
		CreatedAt: seat.CreatedAt,
		UpdatedAt: seat.UpdatedAt,
	}
}

func SeatStatusesToResponse(seats []entity.SeatStatus) []SeatStatusResponse {
	out := make([]SeatStatusResponse, len(seats))
	for i, s := range seats {
		out[i] = SeatStatusResponse{
			ID:       s.SeatID.String(),
			Row:      s.Row,
			Number:   s.Number,
			IsBooked: s.IsBooked,
		}
	}
	return out
}
