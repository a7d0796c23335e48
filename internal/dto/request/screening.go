package request

import "time"

type ScreeningRequest struct {
	MovieID   string    `json:"movie_id" validate:"required,uuid"`
	RoomID    string    `json:"room_id" validate:"required,uuid"`
	StartTime time.Time `json:"start_time" validate:"required"`
}

type ScreeningUpdateRequest struct {
	MovieID   *string    `json:"movie_id,omitempty" validate:"omitempty,uuid"`
	RoomID    *string    `json:"room_id,omitempty" validate:"omitempty,uuid"`
	StartTime *time.Time `json:"start_time,omitempty"`
}
