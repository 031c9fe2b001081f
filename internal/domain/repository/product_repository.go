package repository

import (
	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/domain/entity"
)

// ProductRepository port persistence untuk Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(brandID, id string) (*entity.Product, error)
	// GetForUpdate mengunci baris produk (SELECT FOR UPDATE) sebelum ubah qty.
	GetForUpdate(brandID, id string) (*entity.Product, error)
	List(brandID string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// AdjustQty menambah (delta positif) atau mengurangi (delta negatif) qty.
	AdjustQty(brandID, id string, delta decimal.Decimal) error
}
