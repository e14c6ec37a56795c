package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory unit states. A unit is created available and becomes sold exactly once,
// always through sale creation, never through a direct update.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
)

// ImageRef describes one attached image. Order is display order; the first
// element is the cover image. The URL is opaque to the application.
type ImageRef struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// InventoryUnit is one physically tagged jewelry piece (or fungible batch).
// TotalWeight and PureGold are derived from the physical inputs and recomputed
// server-side before every persist; client-supplied values are never stored.
type InventoryUnit struct {
	ID           string
	TagNumber    int64 // sequential, assigned once at creation, never reused
	ItemID       string
	Description  string
	NoOfPieces   int
	Karat        int // 1..24, classification only; does not enter the purity formula
	NetWeight    decimal.Decimal
	WastagePct   decimal.Decimal
	PolishWeight decimal.Decimal
	StoneWeight  decimal.Decimal
	Ratti        decimal.Decimal
	TotalWeight  decimal.Decimal // derived
	PureGold     decimal.Decimal // derived
	Status       string
	Images       []ImageRef
	UserID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Available reports whether the unit can still be edited or sold.
func (u *InventoryUnit) Available() bool {
	return u.Status == StatusAvailable
}
