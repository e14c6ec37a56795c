package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest body for POST /api/expenses. ExpenseDate uses YYYY-MM-DD.
type CreateExpenseRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  string          `json:"category_id,omitempty"`
	ExpenseDate string          `json:"expense_date,omitempty"`
}

// UpdateExpenseRequest body for PUT /api/expenses/:id.
type UpdateExpenseRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  string          `json:"category_id,omitempty"`
	ExpenseDate string          `json:"expense_date,omitempty"`
}

// ExpenseResponse expense representation with its category name resolved.
type ExpenseResponse struct {
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   string          `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	ExpenseDate  string          `json:"expense_date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ExpenseListResponse list wrapper.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Page     PageResponse      `json:"page"`
}
