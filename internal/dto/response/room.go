package response

import (
	"time"

	"cinema-screening/internal/data/entity"
)

type RoomResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoomDetailResponse struct {
	RoomResponse
	SeatCount int64 `json:"seat_count"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:        room.ID.String(),
		Name:      room.Name,
		Capacity:  room.Capacity,
		Color:     room.Color,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

func RoomToDetailResponse(room *entity.Room, seatCount int64) RoomDetailResponse {
	return RoomDetailResponse{
		RoomResponse: RoomToResponse(room),
		SeatCount:    seatCount,
	}
}
