package model

// Palette holds the sticky colors handed out on join.
var Palette = []string{"#fff59d", "#ffe082", "#ffcc80", "#c5e1a5", "#fff176", "#ffd180"}

type Participant struct {
	Name        string
	IsOrganizer bool
	Color       string
}
