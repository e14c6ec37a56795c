package dto

import "time"

// CreateCategoryRequest body for POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateCategoryRequest body for PUT /api/categories/:id.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CategoryResponse expense category representation.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse list wrapper.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
