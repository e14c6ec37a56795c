package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveGoldRateRequest body for POST /api/gold-rates.
type SaveGoldRateRequest struct {
	Rate24K decimal.Decimal `json:"rate_24k"`
}

// GoldRateResponse one snapshot of the 24k reference rate.
type GoldRateResponse struct {
	ID        string          `json:"id"`
	Rate24K   decimal.Decimal `json:"rate_24k"`
	CreatedAt time.Time       `json:"created_at"`
}

// KaratRateRow one row of the per-karat display table.
type KaratRateRow struct {
	Karat int             `json:"karat"`
	Rate  decimal.Decimal `json:"rate"`
}

// GoldRateTableResponse the latest rate with its derived per-karat table.
type GoldRateTableResponse struct {
	Latest *GoldRateResponse `json:"latest,omitempty"`
	Rates  []KaratRateRow    `json:"rates"`
}
