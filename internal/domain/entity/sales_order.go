package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status sales order. Status lama dari data legacy ("shipped", "sent",
// "dikirim") dinormalisasi lewat ParseOrderStatus.
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "DRAFT"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ParseOrderStatus menormalisasi string status (case-insensitive) ke enum.
// Literal legacy "shipped", "sent" dan "dikirim" semuanya dipetakan ke SHIPPED.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DRAFT":
		return OrderStatusDraft, true
	case "CONFIRMED":
		return OrderStatusConfirmed, true
	case "SHIPPED", "SENT", "DIKIRIM":
		return OrderStatusShipped, true
	case "COMPLETED", "SELESAI":
		return OrderStatusCompleted, true
	case "CANCELLED", "CANCELED", "BATAL":
		return OrderStatusCancelled, true
	}
	return "", false
}

// IsShipped true jika status berarti barang sudah dikirim (trigger mutasi stok OUT).
func (s OrderStatus) IsShipped() bool { return s == OrderStatusShipped }

// SalesOrder adalah dokumen referensi piutang. PaidAmount dan PaymentStatus
// adalah cache turunan dari ledger Payment (dihitung ulang penuh oleh Status
// Recalculator setiap ada pembayaran baru). StockAppliedAt/StockReversedAt
// adalah cache atas log StockMutation; log tetap jadi source of truth.
type SalesOrder struct {
	ID              string
	BrandID         string
	Number          string
	CustomerName    string
	Status          OrderStatus
	TotalAmount     decimal.Decimal
	PaidAmount      decimal.Decimal
	PaymentStatus   string // UNPAID | PARTIAL | PAID
	Notes           string
	StockAppliedAt  *time.Time
	StockReversedAt *time.Time
	Items           []*SalesOrderItem
	CreatedByID     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SalesOrderItem baris item order. ProductID boleh kosong untuk item custom
// (jasa / non-katalog) — item tanpa produk tidak pernah menyentuh stok.
type SalesOrderItem struct {
	ID          string
	OrderID     string
	ProductID   string // kosong = item custom, tidak menyentuh stok
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}
