package repository

import (
	"time"

	"github.com/zewarhq/zewar-api/internal/domain/entity"
)

// ExpenseFilter narrows expense listings. Zero times mean unbounded.
type ExpenseFilter struct {
	From       time.Time
	To         time.Time
	CategoryID string
	Limit      int
	Offset     int
}

// ExpenseRepository is the persistence port for expenses.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List(filter ExpenseFilter) ([]*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
}
