package repository

import "github.com/usahakita/backoffice-api/internal/domain/entity"

// ReceiptRepository port persistence untuk Receipt (append-only; nomornya
// diambil dari SequenceRepository).
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByID(brandID, id string) (*entity.Receipt, error)
	GetByPaymentID(brandID, paymentID string) (*entity.Receipt, error)
	List(brandID string, limit, offset int) ([]*entity.Receipt, error)
}
