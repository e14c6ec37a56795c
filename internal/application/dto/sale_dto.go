package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest one inventory unit and its agreed price.
type SaleLineRequest struct {
	InventoryID string          `json:"inventory_id" validate:"required"`
	Price       decimal.Decimal `json:"price"`
}

// CreateSaleRequest body for POST /api/sales.
type CreateSaleRequest struct {
	CustomerName  string            `json:"customer_name" validate:"required"`
	CustomerPhone string            `json:"customer_phone,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	Items         []SaleLineRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse one settled line item.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	InventoryID string          `json:"inventory_id"`
	TagNumber   int64           `json:"tag_number,omitempty"`
	ItemName    string          `json:"item_name,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// SaleResponse sale representation with line items.
type SaleResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []SaleItemResponse `json:"items"`
}

// SaleListResponse list wrapper with summary figures over the filtered set.
type SaleListResponse struct {
	Sales        []SaleResponse  `json:"sales"`
	Page         PageResponse    `json:"page"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
