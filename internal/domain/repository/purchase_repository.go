package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/domain/entity"
)

// PurchaseRepository port persistence untuk PurchaseDirect + item.
type PurchaseRepository interface {
	Create(purchase *entity.PurchaseDirect) error
	GetByID(brandID, id string) (*entity.PurchaseDirect, error)
	GetForUpdate(brandID, id string) (*entity.PurchaseDirect, error)
	List(brandID string, limit, offset int) ([]*entity.PurchaseDirect, error)
	SetReceivedAt(brandID, id string, at time.Time) error
	UpdatePaymentCache(brandID, id string, paid decimal.Decimal, status string) error
	SetStockAppliedAt(brandID, id string, at time.Time) error
	SetStockReversedAt(brandID, id string, at time.Time) error
	// Delete menghapus dokumen pembelian + itemnya. Mutasi stok reversal
	// harus sudah dibuat caller dalam transaksi yang sama.
	Delete(brandID, id string) error
}
