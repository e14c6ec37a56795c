package entity

import "time"

// Item is a catalog entry (e.g. "Ring", "Bangle"). Many inventory units reference one item.
type Item struct {
	ID           string
	Name         string
	Abbreviation string // optional short code shown next to the name
	UserID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
