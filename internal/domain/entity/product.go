package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product adalah item katalog per brand. Qty hanya diubah lewat Stock
// Mutation Engine dan hanya kalau TrackStock true; item jasa / custom
// disimpan dengan TrackStock false dan tidak pernah menyentuh stok.
type Product struct {
	ID         string
	BrandID    string
	SKU        string
	Name       string
	Qty        decimal.Decimal
	TrackStock bool
	Price      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
