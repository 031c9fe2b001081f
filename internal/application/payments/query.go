package payments

import (
	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/internal/domain"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

// QueryUseCase baca-saja untuk ledger payment dan kwitansi.
type QueryUseCase struct {
	paymentRepo repository.PaymentRepository
	receiptRepo repository.ReceiptRepository
}

// NewQueryUseCase membangun use case query (repo terikat pool).
func NewQueryUseCase(paymentRepo repository.PaymentRepository, receiptRepo repository.ReceiptRepository) *QueryUseCase {
	return &QueryUseCase{paymentRepo: paymentRepo, receiptRepo: receiptRepo}
}

// ListPayments mengambil daftar payment brand, opsional difilter dokumen
// referensi (refType + refID).
func (uc *QueryUseCase) ListPayments(brandID, refType, refID string, page dto.PageRequest) ([]dto.PaymentResponse, error) {
	page.DefaultPage()
	list, err := uc.paymentRepo.List(brandID, refType, refID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

// GetPayment mengambil satu payment beserta kwitansinya.
func (uc *QueryUseCase) GetPayment(brandID, id string) (*dto.PaymentReceiptResponse, error) {
	payment, err := uc.paymentRepo.GetByID(brandID, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	receipt, err := uc.receiptRepo.GetByPaymentID(brandID, id)
	if err != nil {
		return nil, err
	}
	resp := &dto.PaymentReceiptResponse{Payment: toPaymentResponse(payment)}
	if receipt != nil {
		resp.Receipt = toReceiptResponse(receipt)
	}
	return resp, nil
}

// GetReceipt mengambil satu kwitansi.
func (uc *QueryUseCase) GetReceipt(brandID, id string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(brandID, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	resp := toReceiptResponse(receipt)
	return &resp, nil
}

// ListReceipts mengambil daftar kwitansi brand.
func (uc *QueryUseCase) ListReceipts(brandID string, page dto.PageRequest) ([]dto.ReceiptResponse, error) {
	page.DefaultPage()
	list, err := uc.receiptRepo.List(brandID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReceiptResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toReceiptResponse(r))
	}
	return out, nil
}
