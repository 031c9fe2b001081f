package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice adalah dokumen referensi piutang tanpa perilaku stok.
// PaidAmount dan PaymentStatus adalah cache hasil Status Recalculator.
type Invoice struct {
	ID            string
	BrandID       string
	Number        string
	CustomerName  string
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	PaymentStatus string // UNPAID | PARTIAL | PAID
	Notes         string
	IssuedAt      time.Time
	DueAt         *time.Time
	CreatedByID   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
