package http

import (
	"bytes"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/zewarhq/zewar-api/internal/application/dto"
	"github.com/zewarhq/zewar-api/internal/application/sales"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
)

// SaleHandler handles HTTP requests for sales (protected).
type SaleHandler struct {
	uc       *sales.UseCase
	pdfUC    *sales.InvoicePDFUseCase
	validate *validator.Validate
}

// NewSaleHandler builds the handler.
func NewSaleHandler(uc *sales.UseCase, pdfUC *sales.InvoicePDFUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, pdfUC: pdfUC, validate: validator.New()}
}

// Create godoc
// @Summary      Settle a sale
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Sale data"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "A unit is no longer available"
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get sale by ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Sale ID"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sale not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List sales
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Invoice number or customer name"
// @Param        from    query  string  false  "Start date (YYYY-MM-DD)"
// @Param        to      query  string  false  "End date (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
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

// ExportCSV godoc
// @Summary      Export sales as CSV
// @Tags         sales
// @Security     Bearer
// @Produce      text/csv
// @Param        from  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        to    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200
// @Router       /api/sales/export [get]
func (h *SaleHandler) ExportCSV(c *fiber.Ctx) error {
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
	header := []string{"Invoice Number", "Date", "Customer Name", "Customer Phone", "Items Sold", "Total Amount", "Notes"}
	if err := s.writeRow(header); err != nil {
		return domainError(c, err)
	}
	for _, sale := range out.Sales {
		names := make([]string, 0, len(sale.Items))
		for _, it := range sale.Items {
			names = append(names, it.ItemName)
		}
		row := []string{
			sale.InvoiceNumber,
			sale.CreatedAt.Format("2006-01-02"),
			sale.CustomerName,
			sale.CustomerPhone,
			strings.Join(names, "; "),
			sale.TotalAmount.StringFixed(2),
			sale.Notes,
		}
		if err := s.writeRow(row); err != nil {
			return domainError(c, err)
		}
	}
	if err := s.Flush(); err != nil {
		return domainError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales.csv"`)
	return c.Send(buf.Bytes())
}

// InvoicePDF godoc
// @Summary      Printable sale invoice
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Sale ID"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/invoice.pdf [get]
func (h *SaleHandler) InvoicePDF(c *fiber.Ctx) error {
	pdf, err := h.pdfUC.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if pdf == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sale not found"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="invoice.pdf"`)
	return c.Send(pdf)
}

func (h *SaleHandler) parseFilter(c *fiber.Ctx) (repository.SaleFilter, error) {
	limit := c.QueryInt("limit", 20)
	if limit > 100 {
		limit = 100
	}
	filter := repository.SaleFilter{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: c.QueryInt("offset", 0),
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
		// include the whole end day
		filter.To = t.Add(24*time.Hour - time.Nanosecond)
	}
	return filter, nil
}
