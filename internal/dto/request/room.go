package request

type RoomRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	Capacity int     `json:"capacity" validate:"required,min=1"`
	Color    *string `json:"color,omitempty" validate:"omitempty,max=50"`
}

type RoomUpdateRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Capacity *int    `json:"capacity,omitempty" validate:"omitempty,min=1"`
	Color    *string `json:"color,omitempty" validate:"omitempty,max=50"`
}
