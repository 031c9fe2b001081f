package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest body untuk POST /api/payments.
// PaidAt opsional (default waktu server). BrandID opsional — override tenant
// dari header X-Brand-ID sudah ditangani middleware; field ini untuk klien
// lama yang mengirimnya di body.
type RecordPaymentRequest struct {
	Type    string          `json:"type" validate:"required,oneof=IN OUT"`
	Method  string          `json:"method" validate:"required,oneof=CASH BCA BRI OTHER"`
	Amount  decimal.Decimal `json:"amount"`
	PaidAt  *time.Time      `json:"paid_at,omitempty"`
	RefType string          `json:"ref_type" validate:"required,oneof=SALES_ORDER INVOICE PURCHASE EXPENSE"`
	RefID   string          `json:"ref_id" validate:"required"`
	Notes   string          `json:"notes,omitempty"`
	BrandID string          `json:"brand_profile_id,omitempty"`
}

// PaymentResponse representasi payment di response.
type PaymentResponse struct {
	ID        string          `json:"id"`
	BrandID   string          `json:"brand_profile_id"`
	Type      string          `json:"type"`
	Method    string          `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    time.Time       `json:"paid_at"`
	RefType   string          `json:"ref_type"`
	RefID     string          `json:"ref_id"`
	Notes     string          `json:"notes,omitempty"`
	CreatedBy string          `json:"created_by_id"`
	CreatedAt time.Time       `json:"created_at"`
}

// ReceiptResponse representasi kwitansi di response.
type ReceiptResponse struct {
	ID            string    `json:"id"`
	PaymentID     string    `json:"payment_id"`
	ReceiptNumber string    `json:"receipt_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// ExpenseLinkResponse hasil side effect best-effort link expense→payment.
// Status kosong kalau refType bukan EXPENSE.
type ExpenseLinkResponse struct {
	Status string `json:"status,omitempty"` // "linked" | "link_failed"
	Reason string `json:"reason,omitempty"`
}

// PaymentReceiptResponse hasil POST /api/payments: payment + kwitansi +
// outcome link expense (kalau ada).
type PaymentReceiptResponse struct {
	Payment     PaymentResponse      `json:"payment"`
	Receipt     ReceiptResponse      `json:"receipt"`
	ExpenseLink *ExpenseLinkResponse `json:"expense_link,omitempty"`
}
