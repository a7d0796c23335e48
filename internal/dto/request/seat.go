package request

type SeatRequest struct {
	RoomID string `json:"room_id" validate:"required,uuid"`
	Row    string `json:"row" validate:"required,min=1,max=10,alpha"`
	Number int    `json:"number" validate:"required,min=1"`
}

type SeatUpdateRequest struct {
	RoomID *string `json:"room_id,omitempty" validate:"omitempty,uuid"`
	Row    *string `json:"row,omitempty" validate:"omitempty,min=1,max=10,alpha"`
	Number *int    `json:"number,omitempty" validate:"omitempty,min=1"`
}

// SeatBulkRequest lays out Rows lettered rows of SeatsPerRow seats each.
// Zero values fall back to 8 rows of 10.
type SeatBulkRequest struct {
	Rows        int `json:"rows" validate:"omitempty,min=1,max=26"`
	SeatsPerRow int `json:"seats_per_row" validate:"omitempty,min=1,max=100"`
}
