package request

type MovieRequest struct {
	Title             string  `json:"title" validate:"required,min=1,max=200"`
	Description       string  `json:"description"`
	Poster            *string `json:"poster,omitempty" validate:"omitempty,max=500"`
	DurationInMinutes int     `json:"duration_in_minutes" validate:"required,min=1,max=999"`
}

type MovieUpdateRequest struct {
	Title             *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description       *string `json:"description,omitempty"`
	Poster            *string `json:"poster,omitempty" validate:"omitempty,max=500"`
	DurationInMinutes *int    `json:"duration_in_minutes,omitempty" validate:"omitempty,min=1,max=999"`
}
