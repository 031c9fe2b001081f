package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body untuk POST /api/products.
type CreateProductRequest struct {
	SKU        string          `json:"sku" validate:"required"`
	Name       string          `json:"name" validate:"required"`
	Price      decimal.Decimal `json:"price"`
	TrackStock bool            `json:"track_stock"`
	InitialQty decimal.Decimal `json:"initial_qty"`
}

// UpdateProductRequest body untuk PUT /api/products/:id.
// Qty tidak bisa diubah dari sini; perubahan stok hanya lewat mutasi.
type UpdateProductRequest struct {
	Name       string          `json:"name,omitempty"`
	Price      decimal.Decimal `json:"price"`
	TrackStock *bool           `json:"track_stock,omitempty"`
}

// ProductResponse representasi produk di response.
type ProductResponse struct {
	ID         string          `json:"id"`
	BrandID    string          `json:"brand_profile_id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Qty        decimal.Decimal `json:"qty"`
	TrackStock bool            `json:"track_stock"`
	Price      decimal.Decimal `json:"price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
