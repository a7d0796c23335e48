package request

type BookingRequest struct {
	ScreeningID   string  `json:"screening_id" validate:"required,uuid"`
	SeatID        string  `json:"seat_id" validate:"required,uuid"`
	CustomerName  *string `json:"customer_name,omitempty" validate:"omitempty,max=200"`
	CustomerEmail *string `json:"customer_email,omitempty" validate:"omitempty,email,max=254"`
}
