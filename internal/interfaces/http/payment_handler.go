package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/internal/application/payments"
	"github.com/usahakita/backoffice-api/internal/domain"
)

// PaymentHandler menangani HTTP pencatatan dan listing pembayaran.
type PaymentHandler struct {
	record *payments.RecordPaymentUseCase
	query  *payments.QueryUseCase
}

// NewPaymentHandler membangun handler.
func NewPaymentHandler(record *payments.RecordPaymentUseCase, query *payments.QueryUseCase) *PaymentHandler {
	return &PaymentHandler{record: record, query: query}
}

// Record mencatat pembayaran + kwitansi (atomik) dan memicu rekalkulasi
// status dokumen referensinya.
// POST /api/payments
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	userID := GetUserID(c)
	if brandID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	result, err := h.record.RecordPayment(c.Context(), brandID, userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data tidak valid"})
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: "amount harus lebih dari nol"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dokumen referensi tidak ditemukan"})
		}
		if errors.Is(err, domain.ErrBrandNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BRAND_NOT_FOUND", Message: domain.ErrBrandNotFound.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// List daftar pembayaran brand, opsional filter ?ref_type=&ref_id=.
// GET /api/payments
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	if brandID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query tidak valid"})
	}
	list, err := h.query.ListPayments(brandID, c.Query("ref_type"), c.Query("ref_id"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID detail satu pembayaran + kwitansinya.
// GET /api/payments/:id
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	if brandID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id wajib diisi"})
	}
	result, err := h.query.GetPayment(brandID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pembayaran tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// GetReceipt detail satu kwitansi.
// GET /api/receipts/:id
func (h *PaymentHandler) GetReceipt(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	if brandID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	result, err := h.query.GetReceipt(brandID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "kwitansi tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// ListReceipts daftar kwitansi brand.
// GET /api/receipts
func (h *PaymentHandler) ListReceipts(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	if brandID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query tidak valid"})
	}
	list, err := h.query.ListReceipts(brandID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
