// Package billing mengelola invoice manual: dokumen piutang tanpa perilaku
// stok, hanya jadi target pembayaran IN.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/internal/domain"
	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/ledger"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
	"github.com/usahakita/backoffice-api/pkg/logger"
)

// DocTypeInvoice jenis dokumen di tabel sequence untuk nomor invoice.
const DocTypeInvoice = "INV"

// InvoiceNumber memformat nomor invoice: INV-YYYYMM-NNNN.
func InvoiceNumber(period string, seq int64) string {
	return fmt.Sprintf("INV-%s-%04d", period, seq)
}

// UseCase operasi invoice.
type UseCase struct {
	txRunner    TxRunner
	invoiceRepo repository.InvoiceRepository
	log         *logger.Logger
}

// NewUseCase membangun use case invoice. invoiceRepo terikat pool untuk read.
func NewUseCase(txRunner TxRunner, invoiceRepo repository.InvoiceRepository, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, invoiceRepo: invoiceRepo, log: log}
}

// Create membuat invoice baru dengan nomor dari counter atomik.
func (uc *UseCase) Create(ctx context.Context, brandID, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if brandID == "" {
		return nil, domain.ErrBrandNotFound
	}
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.TotalAmount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	now := time.Now()
	issuedAt := now
	if in.IssuedAt != nil {
		issuedAt = *in.IssuedAt
	}
	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		BrandID:       brandID,
		CustomerName:  in.CustomerName,
		TotalAmount:   in.TotalAmount,
		PaidAmount:    decimal.Zero,
		PaymentStatus: ledger.StatusUnpaid,
		Notes:         in.Notes,
		IssuedAt:      issuedAt,
		DueAt:         in.DueAt,
		CreatedByID:   userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.RunInvoice(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		seqRepo repository.SequenceRepository,
	) error {
		period := issuedAt.Format("200601")
		seq, err := seqRepo.Next(brandID, DocTypeInvoice, period)
		if err != nil {
			return fmt.Errorf("nomor invoice: %w", err)
		}
		invoice.Number = InvoiceNumber(period, seq)
		return invoiceRepo.Create(invoice)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("invoice_id", invoice.ID).
		Str("number", invoice.Number).
		Str("brand_id", brandID).
		Msg("invoice dibuat")
	resp := toInvoiceResponse(invoice)
	return &resp, nil
}

// GetByID mengambil satu invoice.
func (uc *UseCase) GetByID(brandID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(brandID, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	resp := toInvoiceResponse(invoice)
	return &resp, nil
}

// List mengambil daftar invoice brand, opsional difilter payment status.
func (uc *UseCase) List(brandID, paymentStatus string, page dto.PageRequest) ([]dto.InvoiceResponse, error) {
	page.DefaultPage()
	list, err := uc.invoiceRepo.List(brandID, paymentStatus, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:            inv.ID,
		BrandID:       inv.BrandID,
		Number:        inv.Number,
		CustomerName:  inv.CustomerName,
		TotalAmount:   inv.TotalAmount,
		PaidAmount:    inv.PaidAmount,
		PaymentStatus: inv.PaymentStatus,
		Notes:         inv.Notes,
		IssuedAt:      inv.IssuedAt,
		DueAt:         inv.DueAt,
		CreatedAt:     inv.CreatedAt,
	}
}
