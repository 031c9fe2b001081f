package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/internal/application/orders"
	"github.com/usahakita/backoffice-api/internal/domain"
)

// OrderHandler menangani HTTP sales order.
type OrderHandler struct {
	uc *orders.UseCase
}

// NewOrderHandler membangun handler.
func NewOrderHandler(uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create membuat sales order baru (status DRAFT).
// POST /api/sales-orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	userID := GetUserID(c)
	if brandID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	order, err := h.uc.Create(c.Context(), brandID, userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data tidak valid"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List daftar order brand, opsional ?status=.
// GET /api/sales-orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	if brandID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query tidak valid"})
	}
	list, err := h.uc.List(brandID, c.Query("status"), page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status tidak dikenal"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID detail order + item.
// GET /api/sales-orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	if brandID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id wajib diisi"})
	}
	order, err := h.uc.GetByID(brandID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sales order tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(order)
}

// Mutations daftar mutasi stok yang dihasilkan order (pengiriman + reversal).
// GET /api/sales-orders/:id/mutations
func (h *OrderHandler) Mutations(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	if brandID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	list, err := h.uc.Mutations(brandID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sales order tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// UpdateStatus mengganti status order; transisi SHIPPED menggerakkan stok.
// PATCH /api/sales-orders/:id/status
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	userID := GetUserID(c)
	if brandID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id wajib diisi"})
	}
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	order, err := h.uc.UpdateStatus(c.Context(), brandID, userID, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status tidak dikenal"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sales order tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(order)
}
