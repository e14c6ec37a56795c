package http

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/zewarhq/zewar-api/internal/application/dto"
	"github.com/zewarhq/zewar-api/internal/application/inventory"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
)

// InventoryHandler handles HTTP requests for inventory units (protected).
type InventoryHandler struct {
	uc       *inventory.UseCase
	validate *validator.Validate
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, validate: validator.New()}
}

// Create godoc
// @Summary      Register inventory unit
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Unit data"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
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
// @Summary      Get inventory unit by ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Unit ID"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventory unit not found"})
	}
	return c.JSON(out)
}

// GetByTagNumber godoc
// @Summary      Get inventory unit by tag number
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        tag  path  int  true  "Tag number"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/tag/{tag} [get]
func (h *InventoryHandler) GetByTagNumber(c *fiber.Ctx) error {
	tag, err := strconv.ParseInt(c.Params("tag"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tag must be a number"})
	}
	out, err := h.uc.GetByTagNumber(tag)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventory unit not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List inventory units
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        status   query  string  false  "available or sold"
// @Param        item_id  query  string  false  "Item filter"
// @Param        limit    query  int     false  "Limit"   default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit > 100 {
		limit = 100
	}
	filter := repository.InventoryFilter{
		Status: c.Query("status"),
		ItemID: c.Query("item_id"),
		Limit:  limit,
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update inventory unit
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "Unit ID"
// @Param        body  body  dto.UpdateInventoryRequest  true  "Unit data"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Unit already sold"
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventory unit not found"})
	}
	return c.JSON(out)
}

// UploadImage godoc
// @Summary      Upload inventory image
// @Tags         inventory
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Image file"
// @Success      201  {object}  dto.UploadImageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/images [post]
func (h *InventoryHandler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "image file required"})
	}
	f, err := fh.Open()
	if err != nil {
		return domainError(c, err)
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	out, err := h.uc.UploadImage(c.Context(), fh.Filename, contentType, fh.Size, f)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// TagPDF godoc
// @Summary      Printable tag label
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Unit ID"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/tag.pdf [get]
func (h *InventoryHandler) TagPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.TagPDF(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if pdf == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventory unit not found"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="tag.pdf"`)
	return c.Send(pdf)
}
