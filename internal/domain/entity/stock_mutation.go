package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipe mutasi stok.
const (
	MutationTypeIN     = "IN"
	MutationTypeOUT    = "OUT"
	MutationTypeAdjust = "ADJUST"
)

// Nama tabel referensi untuk mutasi stok.
const (
	RefTableSalesOrder = "sales_orders"
	RefTablePurchase   = "purchases"
)

// StockMutation adalah baris audit append-only. Qty selalu magnitude positif;
// arah ditentukan Type. Jumlah mutasi bertanda untuk sebuah produk harus sama
// dengan delta Product.Qty sejak tracking dimulai. Untuk satu (RefTable, RefID)
// tidak boleh ada dua mutasi dengan Type sama — dijaga guard count sebelum insert.
type StockMutation struct {
	ID          string
	BrandID     string
	ProductID   string
	Qty         decimal.Decimal // selalu positif
	Type        string          // IN | OUT | ADJUST
	RefTable    string
	RefID       string
	Note        string
	CreatedByID string
	CreatedAt   time.Time
}
