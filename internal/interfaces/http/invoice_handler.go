package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/usahakita/backoffice-api/internal/application/billing"
	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/internal/domain"
)

// InvoiceHandler menangani HTTP invoice.
type InvoiceHandler struct {
	uc *billing.UseCase
}

// NewInvoiceHandler membangun handler.
func NewInvoiceHandler(uc *billing.UseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create membuat invoice baru.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	userID := GetUserID(c)
	if brandID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	invoice, err := h.uc.Create(c.Context(), brandID, userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data tidak valid"})
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: "total harus lebih dari nol"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// List daftar invoice brand, opsional ?payment_status=.
// GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	if brandID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query tidak valid"})
	}
	list, err := h.uc.List(brandID, c.Query("payment_status"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID detail invoice.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	if brandID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id wajib diisi"})
	}
	invoice, err := h.uc.GetByID(brandID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoice)
}
