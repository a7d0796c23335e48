package entity

type Movie struct {
	Base
	Title             string  `db:"title"`
	Description       string  `db:"description"`
	Poster            *string `db:"poster"`
	DurationInMinutes int     `db:"duration_in_minutes"`
}
