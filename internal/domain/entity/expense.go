package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense pengeluaran operasional. PaymentID diisi best-effort saat ada
// pembayaran dengan refType EXPENSE; gagal link tidak membatalkan pembayaran.
type Expense struct {
	ID          string
	BrandID     string
	Description string
	Amount      decimal.Decimal
	PaymentID   *string
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
