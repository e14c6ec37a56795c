package repository

import "github.com/zewarhq/zewar-api/internal/domain/entity"

// ItemRepository is the persistence port for catalog items.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	List() ([]*entity.Item, error)
	Update(item *entity.Item) error
	// Delete removes the item; returns domain.ErrInUse while inventory units reference it.
	Delete(id string) error
}
