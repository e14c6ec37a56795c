package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zewarhq/zewar-api/internal/application/analytics"
	"github.com/zewarhq/zewar-api/internal/application/dto"
)

// DashboardHandler handles the dashboard summary endpoint (protected).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Dashboard figures
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        to    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	var from, to time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid date filter, use YYYY-MM-DD"})
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid date filter, use YYYY-MM-DD"})
		}
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	out, err := h.uc.GetSummary(from, to)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
