package entity

import "time"

// Category labels expenses; many expenses reference one category.
type Category struct {
	ID        string
	Name      string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
