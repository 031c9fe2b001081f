package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseDirect adalah pembelian langsung ke supplier (dokumen referensi
// hutang; pembayaran OUT). Saat diterima, item yang tracked menambah stok
// (mutasi IN); kalau dokumen dihapus setelah diterima, dibuat mutasi OUT
// sebagai reversal — compensating transaction, bukan delete log.
type PurchaseDirect struct {
	ID              string
	BrandID         string
	Number          string
	SupplierName    string
	TotalAmount     decimal.Decimal
	PaidAmount      decimal.Decimal
	PaymentStatus   string // UNPAID | PARTIAL | PAID
	Notes           string
	ReceivedAt      *time.Time
	StockAppliedAt  *time.Time
	StockReversedAt *time.Time
	Items           []*PurchaseItem
	CreatedByID     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Received true jika barang pembelian sudah diterima gudang.
func (p *PurchaseDirect) Received() bool { return p.ReceivedAt != nil }

// PurchaseItem baris item pembelian.
type PurchaseItem struct {
	ID          string
	PurchaseID  string
	ProductID   string // kosong = item non-stok
	Description string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
}
