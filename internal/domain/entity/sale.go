package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an immutable settlement transaction. TotalAmount is the exact sum of
// the line-item prices. The invoice number is generated at creation and is
// opaque to everything but display.
type Sale struct {
	ID            string
	InvoiceNumber string
	CustomerName  string
	CustomerPhone string
	Notes         string
	TotalAmount   decimal.Decimal
	UserID        string
	CreatedAt     time.Time

	Items []*SaleItem
}

// SaleItem records the agreed price of one inventory unit at the moment of sale.
// At most one sale item may ever reference a given unit.
type SaleItem struct {
	ID          string
	SaleID      string
	InventoryID string
	Price       decimal.Decimal
}
