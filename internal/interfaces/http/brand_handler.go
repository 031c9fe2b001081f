package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/usahakita/backoffice-api/internal/application/brands"
	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/internal/domain"
)

// BrandHandler menangani HTTP brand profile (tenant).
type BrandHandler struct {
	uc *brands.UseCase
}

// NewBrandHandler membangun handler.
func NewBrandHandler(uc *brands.UseCase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

// Create membuat brand baru.
// POST /api/brands
func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBrandRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	brand, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data tidak valid"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "nama brand sudah digunakan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

// List daftar semua brand.
// GET /api/brands
func (h *BrandHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query tidak valid"})
	}
	list, err := h.uc.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetActive brand yang sedang aktif.
// GET /api/brands/active
func (h *BrandHandler) GetActive(c *fiber.Ctx) error {
	brand, err := h.uc.GetActive()
	if err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "BRAND_NOT_FOUND", Message: domain.ErrBrandNotFound.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(brand)
}

// GetByID detail brand.
// GET /api/brands/:id
func (h *BrandHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id wajib diisi"})
	}
	brand, err := h.uc.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "brand tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(brand)
}

// SetActive menjadikan brand aktif.
// POST /api/brands/:id/activate
func (h *BrandHandler) SetActive(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id wajib diisi"})
	}
	brand, err := h.uc.SetActive(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "brand tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(brand)
}
