package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single business outlay. Amount must be positive; CategoryID is optional.
type Expense struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	CategoryID  string // empty when uncategorized
	ExpenseDate time.Time
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
