package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/domain/entity"
)

// SalesOrderRepository port persistence untuk SalesOrder + item.
type SalesOrderRepository interface {
	Create(order *entity.SalesOrder) error
	GetByID(brandID, id string) (*entity.SalesOrder, error)
	// GetForUpdate mengunci baris order (SELECT FOR UPDATE) untuk transisi status.
	GetForUpdate(brandID, id string) (*entity.SalesOrder, error)
	List(brandID string, status string, limit, offset int) ([]*entity.SalesOrder, error)
	UpdateStatus(brandID, id string, status entity.OrderStatus) error
	// UpdatePaymentCache menyimpan paidAmount + paymentStatus hasil rekalkulasi.
	UpdatePaymentCache(brandID, id string, paid decimal.Decimal, status string) error
	// SetStockAppliedAt / SetStockReversedAt stempel cache atas log mutasi.
	SetStockAppliedAt(brandID, id string, at time.Time) error
	SetStockReversedAt(brandID, id string, at time.Time) error
}
