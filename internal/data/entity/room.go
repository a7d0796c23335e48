package entity

type Room struct {
	Base
	Name     string  `db:"name"`
	Capacity int     `db:"capacity"` // informational, not enforced against seats
	Color    *string `db:"color"`
}
