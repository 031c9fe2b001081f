package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/internal/application/expenses"
	"github.com/usahakita/backoffice-api/internal/domain"
)

// ExpenseHandler menangani HTTP pengeluaran.
type ExpenseHandler struct {
	uc *expenses.UseCase
}

// NewExpenseHandler membangun handler.
func NewExpenseHandler(uc *expenses.UseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create mencatat pengeluaran baru.
// POST /api/expenses
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	userID := GetUserID(c)
	if brandID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	expense, err := h.uc.Create(c.Context(), brandID, userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data tidak valid"})
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: "amount harus lebih dari nol"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

// List daftar pengeluaran brand.
// GET /api/expenses
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	if brandID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query tidak valid"})
	}
	list, err := h.uc.List(brandID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID detail pengeluaran.
// GET /api/expenses/:id
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	brandID := GetBrandID(c)
	if brandID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id wajib diisi"})
	}
	expense, err := h.uc.GetByID(brandID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pengeluaran tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(expense)
}
