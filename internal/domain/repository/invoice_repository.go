package repository

import (
	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/domain/entity"
)

// InvoiceRepository port persistence untuk Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(brandID, id string) (*entity.Invoice, error)
	List(brandID string, status string, limit, offset int) ([]*entity.Invoice, error)
	UpdatePaymentCache(brandID, id string, paid decimal.Decimal, status string) error
}
