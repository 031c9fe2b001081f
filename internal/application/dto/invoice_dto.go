package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body untuk POST /api/invoices.
type CreateInvoiceRequest struct {
	CustomerName string          `json:"customer_name" validate:"required"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Notes        string          `json:"notes,omitempty"`
	IssuedAt     *time.Time      `json:"issued_at,omitempty"`
	DueAt        *time.Time      `json:"due_at,omitempty"`
}

// InvoiceResponse representasi invoice di response.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	BrandID       string          `json:"brand_profile_id"`
	Number        string          `json:"number"`
	CustomerName  string          `json:"customer_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PaymentStatus string          `json:"payment_status"`
	Notes         string          `json:"notes,omitempty"`
	IssuedAt      time.Time       `json:"issued_at"`
	DueAt         *time.Time      `json:"due_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
