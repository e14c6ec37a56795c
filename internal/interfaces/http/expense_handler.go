package http

import (
	"bytes"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/zewarhq/zewar-api/internal/application/dto"
	"github.com/zewarhq/zewar-api/internal/application/usecase"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
)

// ExpenseHandler handles HTTP requests for expenses (protected).
type ExpenseHandler struct {
	uc       *usecase.ExpenseUseCase
	validate *validator.Validate
}

// NewExpenseHandler builds the handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, validate: validator.New()}
}

// Create godoc
// @Summary      Record expense
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Expense data"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get expense by ID
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Expense ID"
// @Success      200  {object}  dto.ExpenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [get]
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "expense not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List expenses
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  false  "Start date (YYYY-MM-DD)"
// @Param        to           query  string  false  "End date (YYYY-MM-DD)"
// @Param        category_id  query  string  false  "Category filter"
// @Param        limit        query  int     false  "Limit"   default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ExpenseListResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	filter, err := h.parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid date filter, use YYYY-MM-DD"})
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update expense
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Expense ID"
// @Param        body  body  dto.UpdateExpenseRequest  true  "Expense data"
// @Success      200   {object}  dto.ExpenseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "expense not found"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete expense
// @Tags         expenses
// @Security     Bearer
// @Param        id  path  string  true  "Expense ID"
// @Success      204
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportCSV godoc
// @Summary      Export expenses as CSV
// @Tags         expenses
// @Security     Bearer
// @Produce      text/csv
// @Param        from  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        to    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200
// @Router       /api/expenses/export [get]
func (h *ExpenseHandler) ExportCSV(c *fiber.Ctx) error {
	filter, err := h.parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid date filter, use YYYY-MM-DD"})
	}
	filter.Limit = 0 // exports are unbounded
	filter.Offset = 0
	out, err := h.uc.List(filter)
	if err != nil {
		return domainError(c, err)
	}

	var buf bytes.Buffer
	s := newCSVStreamer(&buf)
	if err := s.writeRow([]string{"Date", "Description", "Category", "Amount"}); err != nil {
		return domainError(c, err)
	}
	for _, e := range out.Expenses {
		row := []string{e.ExpenseDate, e.Description, e.CategoryName, e.Amount.StringFixed(2)}
		if err := s.writeRow(row); err != nil {
			return domainError(c, err)
		}
	}
	if err := s.Flush(); err != nil {
		return domainError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="expenses.csv"`)
	return c.Send(buf.Bytes())
}

func (h *ExpenseHandler) parseFilter(c *fiber.Ctx) (repository.ExpenseFilter, error) {
	filter := repository.ExpenseFilter{
		CategoryID: c.Query("category_id"),
		Limit:      c.QueryInt("limit", 20),
		Offset:     c.QueryInt("offset", 0),
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, err
		}
		filter.From = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, err
		}
		filter.To = t
	}
	return filter, nil
}
