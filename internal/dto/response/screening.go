package response

import (
	"time"

	"cinema-screening/internal/data/entity"
)

type ScreeningResponse struct {
	ID         string    `json:"id"`
	MovieID    string    `json:"movie_id"`
	MovieTitle string    `json:"movie_title"`
	RoomID     string    `json:"room_id"`
	RoomName   string    `json:"room_name"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ScreeningToResponse(screening *entity.Screening) ScreeningResponse {
	return ScreeningResponse{
		ID:         screening.ID.String(),
		MovieID:    screening.MovieID.String(),
		MovieTitle: screening.MovieTitle,
		RoomID:     screening.RoomID.String(),
		RoomName:   screening.RoomName,
		StartTime:  screening.StartTime,
		EndTime:    screening.EndTime(),
		CreatedAt:  screening.CreatedAt,
		UpdatedAt:  screening.UpdatedAt,
	}
}

func ScreeningsToResponse(screenings []*entity.Screening) []ScreeningResponse {
	out := make([]ScreeningResponse, len(screenings))
	for i, sc := range screenings {
		out[i] = ScreeningToResponse(sc)
	}
	return out
}
