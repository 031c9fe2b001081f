package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest body untuk POST /api/expenses.
type CreateExpenseRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

// ExpenseResponse representasi pengeluaran di response.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	BrandID     string          `json:"brand_profile_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentID   *string         `json:"payment_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
