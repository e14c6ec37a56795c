package repository

import "github.com/zewarhq/zewar-api/internal/domain/entity"

// CategoryRepository is the persistence port for expense categories.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	// Delete removes the category; returns domain.ErrInUse while expenses reference it.
	Delete(id string) error
}
