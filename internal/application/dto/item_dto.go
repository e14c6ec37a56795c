package dto

import "time"

// CreateItemRequest body for POST /api/items.
type CreateItemRequest struct {
	Name         string `json:"name" validate:"required"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// UpdateItemRequest body for PUT /api/items/:id.
type UpdateItemRequest struct {
	Name         string `json:"name" validate:"required"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// ItemResponse catalog item representation.
type ItemResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ItemListResponse list wrapper.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}
