package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zewarhq/zewar-api/internal/domain/entity"
)

// CreateInventoryRequest body for POST /api/inventory.
// TotalWeight and PureGold are intentionally absent: derived fields are always
// recomputed server-side and any client-supplied value is discarded.
//
// Quantity is the legacy name of NoOfPieces; older clients still send it.
type CreateInventoryRequest struct {
	ItemID       string            `json:"item_id" validate:"required"`
	Description  string            `json:"description,omitempty"`
	NoOfPieces   *int              `json:"no_of_pieces,omitempty" validate:"omitempty,min=1"`
	Quantity     *int              `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Karat        int               `json:"karat,omitempty" validate:"omitempty,min=1,max=24"`
	NetWeight    decimal.Decimal   `json:"net_weight"`
	WastagePct   decimal.Decimal   `json:"wasteage_percentage"`
	PolishWeight decimal.Decimal   `json:"polish_weight"`
	StoneWeight  decimal.Decimal   `json:"stone_weight"`
	Ratti        decimal.Decimal   `json:"ratti"`
	Images       []entity.ImageRef `json:"images,omitempty"`
}

// Pieces resolves the piece count: no_of_pieces when present, else the legacy
// quantity field, else 1.
func (r *CreateInventoryRequest) Pieces() int {
	if r.NoOfPieces != nil {
		return *r.NoOfPieces
	}
	if r.Quantity != nil {
		return *r.Quantity
	}
	return 1
}

// UpdateInventoryRequest body for PUT /api/inventory/:id. Same field rules as create;
// status and tag number are not accepted here under any name.
type UpdateInventoryRequest struct {
	ItemID       string            `json:"item_id" validate:"required"`
	Description  string            `json:"description,omitempty"`
	NoOfPieces   *int              `json:"no_of_pieces,omitempty" validate:"omitempty,min=1"`
	Quantity     *int              `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Karat        int               `json:"karat,omitempty" validate:"omitempty,min=1,max=24"`
	NetWeight    decimal.Decimal   `json:"net_weight"`
	WastagePct   decimal.Decimal   `json:"wasteage_percentage"`
	PolishWeight decimal.Decimal   `json:"polish_weight"`
	StoneWeight  decimal.Decimal   `json:"stone_weight"`
	Ratti        decimal.Decimal   `json:"ratti"`
	Images       []entity.ImageRef `json:"images,omitempty"`
}

// Pieces resolves the piece count with the same fallback as create.
func (r *UpdateInventoryRequest) Pieces() int {
	if r.NoOfPieces != nil {
		return *r.NoOfPieces
	}
	if r.Quantity != nil {
		return *r.Quantity
	}
	return 1
}

// InventoryResponse inventory unit representation.
type InventoryResponse struct {
	ID           string            `json:"id"`
	TagNumber    int64             `json:"tag_number"`
	ItemID       string            `json:"item_id"`
	ItemName     string            `json:"item_name,omitempty"`
	Description  string            `json:"description,omitempty"`
	NoOfPieces   int               `json:"no_of_pieces"`
	Karat        int               `json:"karat"`
	NetWeight    decimal.Decimal   `json:"net_weight"`
	WastagePct   decimal.Decimal   `json:"wasteage_percentage"`
	PolishWeight decimal.Decimal   `json:"polish_weight"`
	StoneWeight  decimal.Decimal   `json:"stone_weight"`
	Ratti        decimal.Decimal   `json:"ratti"`
	TotalWeight  decimal.Decimal   `json:"total_weight"`
	PureGold     decimal.Decimal   `json:"pure_gold"`
	Status       string            `json:"status"`
	Images       []entity.ImageRef `json:"images"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// InventoryListResponse list wrapper.
type InventoryListResponse struct {
	Inventory []InventoryResponse `json:"inventory"`
	Page      PageResponse        `json:"page"`
}

// UploadImageResponse result of an image upload.
type UploadImageResponse struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}
