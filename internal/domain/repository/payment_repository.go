package repository

import (
	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/domain/entity"
)

// PaymentRepository port persistence untuk ledger Payment (append-only:
// tidak ada Update/Delete).
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(brandID, id string) (*entity.Payment, error)
	List(brandID string, refType, refID string, limit, offset int) ([]*entity.Payment, error)
	// SumByRef menjumlahkan amount semua payment dengan arah paymentType
	// untuk satu dokumen referensi dalam scope brand.
	SumByRef(brandID, paymentType, refType, refID string) (decimal.Decimal, error)
}
