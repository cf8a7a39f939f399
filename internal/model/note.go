package model

import "time"

// Note is a sticky on the board. Position is the only field that changes
// after creation.
type Note struct {
	ID         string
	Text       string
	AuthorName string
	Color      string
	X          float64
	Y          float64
	CreatedAt  time.Time
}
