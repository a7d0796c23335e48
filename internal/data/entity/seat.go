package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type Seat struct {
	Base
	RoomID uuid.UUID `db:"room_id"`
	Row    string    `db:"seat_row"`    // A, B, C, etc.
	Number int       `db:"seat_number"` // 1, 2, 3, etc.
}

// Label is the printed seat name, e.g. "A1".
func (s *Seat) Label() string {
	return fmt.Sprintf("%s%d", s.Row, s.Number)
}
