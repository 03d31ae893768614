package model

import "time"

// List is a named project grouping tasks.
type List struct {
	ID        string // UUID
	Name      string // Unique, case-insensitive
	Color     string // Optional hex color for the UI
	Icon      string // Optional icon name for the UI
	CreatedAt time.Time
	UpdatedAt time.Time
}
