package repository

import (
	"time"

	"github.com/zewarhq/zewar-api/internal/domain/entity"
)

// SaleFilter narrows sale listings. Search matches invoice number or customer name.
type SaleFilter struct {
	Search string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// SaleRepository is the persistence port for sales and their line items.
type SaleRepository interface {
	// Create persists the sale header and fills in its generated invoice number.
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	List(filter SaleFilter) ([]*entity.Sale, error)
}
