package repository

import "github.com/zewarhq/zewar-api/internal/domain/entity"

// InventoryFilter narrows inventory listings.
type InventoryFilter struct {
	Status string // "", "available" or "sold"
	ItemID string
	Limit  int
	Offset int
}

// InventoryRepository is the persistence port for inventory units.
type InventoryRepository interface {
	// Create persists a new unit and fills in its sequence-assigned tag number.
	Create(unit *entity.InventoryUnit) error
	GetByID(id string) (*entity.InventoryUnit, error)
	GetByTagNumber(tagNumber int64) (*entity.InventoryUnit, error)
	List(filter InventoryFilter) ([]*entity.InventoryUnit, error)
	// Update replaces the editable fields. Status and tag number are never touched.
	Update(unit *entity.InventoryUnit) error
	// GetForUpdate row-locks the unit (SELECT FOR UPDATE); meaningful only inside a transaction.
	GetForUpdate(id string) (*entity.InventoryUnit, error)
	// MarkSold flips status available -> sold.
	MarkSold(id string) error
}
