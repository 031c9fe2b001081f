package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Arah pembayaran.
const (
	PaymentTypeIN  = "IN"  // uang masuk (piutang)
	PaymentTypeOUT = "OUT" // uang keluar (hutang / biaya)
)

// Metode pembayaran.
const (
	PaymentMethodCash  = "CASH"
	PaymentMethodBCA   = "BCA"
	PaymentMethodBRI   = "BRI"
	PaymentMethodOther = "OTHER"
)

// Jenis dokumen referensi yang bisa menerima pembayaran.
const (
	RefTypeSalesOrder = "SALES_ORDER"
	RefTypeInvoice    = "INVOICE"
	RefTypePurchase   = "PURCHASE"
	RefTypeExpense    = "EXPENSE"
)

// Payment adalah baris ledger append-only: sekali dibuat tidak pernah
// di-update atau dihapus. Selalu dibuat bersama satu Receipt dalam satu
// transaksi database.
type Payment struct {
	ID          string
	BrandID     string
	Type        string // IN | OUT
	Method      string // CASH | BCA | BRI | OTHER
	Amount      decimal.Decimal
	PaidAt      time.Time
	RefType     string // SALES_ORDER | INVOICE | PURCHASE | EXPENSE
	RefID       string
	Notes       string
	CreatedByID string
	CreatedAt   time.Time
}

// ValidPaymentType cek apakah tipe pembayaran dikenal.
func ValidPaymentType(t string) bool {
	return t == PaymentTypeIN || t == PaymentTypeOUT
}

// ValidPaymentMethod cek apakah metode pembayaran dikenal.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBCA, PaymentMethodBRI, PaymentMethodOther:
		return true
	}
	return false
}

// ValidRefType cek apakah jenis referensi dikenal.
func ValidRefType(rt string) bool {
	switch rt {
	case RefTypeSalesOrder, RefTypeInvoice, RefTypePurchase, RefTypeExpense:
		return true
	}
	return false
}
