package entity

import (
	"time"

	"github.com/google/uuid"
)

type Screening struct {
	Base
	MovieID   uuid.UUID `db:"movie_id"`
	RoomID    uuid.UUID `db:"room_id"`
	StartTime time.Time `db:"start_time"`

	// Filled by read queries joining movies and rooms.
	MovieTitle        string `db:"movie_title"`
	MovieDurationMins int    `db:"duration_in_minutes"`
	RoomName          string `db:"room_name"`
}

// EndTime is the start time plus the movie duration.
func (s *Screening) EndTime() time.Time {
	return s.StartTime.Add(time.Duration(s.MovieDurationMins) * time.Minute)
}
