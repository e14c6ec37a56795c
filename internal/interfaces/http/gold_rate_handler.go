package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zewarhq/zewar-api/internal/application/dto"
	"github.com/zewarhq/zewar-api/internal/application/usecase"
)

// GoldRateHandler handles HTTP requests for the gold rate series (protected).
type GoldRateHandler struct {
	uc *usecase.GoldRateUseCase
}

// NewGoldRateHandler builds the handler.
func NewGoldRateHandler(uc *usecase.GoldRateUseCase) *GoldRateHandler {
	return &GoldRateHandler{uc: uc}
}

// Save godoc
// @Summary      Save today's 24k rate
// @Tags         gold-rates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveGoldRateRequest  true  "Rate data"
// @Success      201   {object}  dto.GoldRateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/gold-rates [post]
func (h *GoldRateHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveGoldRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Save(GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Latest godoc
// @Summary      Latest rate with per-karat table
// @Tags         gold-rates
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GoldRateTableResponse
// @Router       /api/gold-rates/latest [get]
func (h *GoldRateHandler) Latest(c *fiber.Ctx) error {
	out, err := h.uc.Latest()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Recent rate snapshots
// @Tags         gold-rates
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Limit"  default(30)
// @Success      200    {array}  dto.GoldRateResponse
// @Router       /api/gold-rates [get]
func (h *GoldRateHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.QueryInt("limit", 30))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
