package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zewarhq/zewar-api/internal/application/dto"
	"github.com/zewarhq/zewar-api/internal/domain"
	"github.com/zewarhq/zewar-api/internal/domain/entity"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
)

const expenseDateLayout = "2006-01-02"

// ExpenseUseCase CRUD use cases for expenses.
type ExpenseUseCase struct {
	repo         repository.ExpenseRepository
	categoryRepo repository.CategoryRepository
}

// NewExpenseUseCase builds the use case.
func NewExpenseUseCase(repo repository.ExpenseRepository, categoryRepo repository.CategoryRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create records an expense. Amount must be positive; the category, when set,
// must exist. ExpenseDate defaults to today.
func (uc *ExpenseUseCase) Create(userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Description == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrValidation
	}
	expenseDate, err := uc.resolveDate(in.ExpenseDate)
	if err != nil {
		return nil, err
	}
	categoryName, err := uc.resolveCategory(in.CategoryID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Description: in.Description,
		Amount:      in.Amount,
		CategoryID:  in.CategoryID,
		ExpenseDate: expenseDate,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense, categoryName), nil
}

// GetByID fetches an expense by ID.
func (uc *ExpenseUseCase) GetByID(id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	categoryName, _ := uc.resolveCategory(expense.CategoryID)
	return toExpenseResponse(expense, categoryName), nil
}

// List returns expenses matching the filter, newest first.
func (uc *ExpenseUseCase) List(filter repository.ExpenseFilter) (*dto.ExpenseListResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	expenses := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		name, ok := names[e.CategoryID]
		if !ok && e.CategoryID != "" {
			name, _ = uc.resolveCategory(e.CategoryID)
			names[e.CategoryID] = name
		}
		expenses = append(expenses, *toExpenseResponse(e, name))
	}
	return &dto.ExpenseListResponse{
		Expenses: expenses,
		Page:     dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// Update replaces the editable fields of an expense.
func (uc *ExpenseUseCase) Update(id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	if in.Description == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrValidation
	}
	expenseDate, err := uc.resolveDate(in.ExpenseDate)
	if err != nil {
		return nil, err
	}
	categoryName, err := uc.resolveCategory(in.CategoryID)
	if err != nil {
		return nil, err
	}
	expense.Description = in.Description
	expense.Amount = in.Amount
	expense.CategoryID = in.CategoryID
	expense.ExpenseDate = expenseDate
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense, categoryName), nil
}

// Delete removes an expense by ID.
func (uc *ExpenseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ExpenseUseCase) resolveDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.Parse(expenseDateLayout, raw)
	if err != nil {
		return time.Time{}, domain.ErrValidation
	}
	return t, nil
}

// resolveCategory validates the category exists and returns its name.
// Empty ID means uncategorized and is always valid.
func (uc *ExpenseUseCase) resolveCategory(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if category == nil {
		return "", domain.ErrValidation
	}
	return category.Name, nil
}

func toExpenseResponse(e *entity.Expense, categoryName string) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:           e.ID,
		Description:  e.Description,
		Amount:       e.Amount,
		CategoryID:   e.CategoryID,
		CategoryName: categoryName,
		ExpenseDate:  e.ExpenseDate.Format(expenseDateLayout),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
