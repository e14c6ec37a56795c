package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoldRate is one entry in the append-only series of 24-karat reference rates.
// Used only for the per-karat display table, never by valuation or sales.
type GoldRate struct {
	ID        string
	Rate24K   decimal.Decimal
	UserID    string
	CreatedAt time.Time
}
