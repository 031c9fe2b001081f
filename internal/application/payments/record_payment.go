package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/internal/domain"
	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
	"github.com/usahakita/backoffice-api/pkg/logger"
)

// Outcome side effect best-effort link expense→payment.
const (
	ExpenseLinkLinked = "linked"
	ExpenseLinkFailed = "link_failed"
)

// DocTypeReceipt jenis dokumen di tabel sequence untuk nomor kwitansi.
const DocTypeReceipt = "RC"

// RecordPaymentUseCase mencatat pembayaran + kwitansi secara atomik lalu
// menghitung ulang status pembayaran dokumen referensinya (satu transaksi).
// Payment dan Receipt append-only: tidak ada use case update/delete.
type RecordPaymentUseCase struct {
	txRunner     TxRunner
	orderRepo    repository.SalesOrderRepository
	invoiceRepo  repository.InvoiceRepository
	purchaseRepo repository.PurchaseRepository
	expenseRepo  repository.ExpenseRepository
	log          *logger.Logger
}

// NewRecordPaymentUseCase membangun use case. Repo dokumen di sini terikat
// pool (hanya untuk pre-validasi read-only); semua write lewat txRunner.
func NewRecordPaymentUseCase(
	txRunner TxRunner,
	orderRepo repository.SalesOrderRepository,
	invoiceRepo repository.InvoiceRepository,
	purchaseRepo repository.PurchaseRepository,
	expenseRepo repository.ExpenseRepository,
	log *logger.Logger,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		invoiceRepo:  invoiceRepo,
		purchaseRepo: purchaseRepo,
		expenseRepo:  expenseRepo,
		log:          log,
	}
}

// ReceiptNumber memformat nomor kwitansi: RC-YYYYMM-NNNN.
func ReceiptNumber(period string, seq int64) string {
	return fmt.Sprintf("RC-%s-%04d", period, seq)
}

// RecordPayment mencatat satu pembayaran. Di dalam satu transaksi:
//
//  1. insert Payment
//  2. ambil nomor kwitansi dari counter atomik per (brand, bulan), insert Receipt
//  3. refType EXPENSE  -> link expense.payment_id best-effort (gagal tidak
//     membatalkan transaksi; outcome dikembalikan ke caller)
//     refType lainnya  -> RecalcForRef di transaksi yang sama
//
// Kegagalan langkah mana pun selain link expense membuat seluruh transaksi
// rollback: tidak pernah ada Payment tanpa Receipt atau sebaliknya.
func (uc *RecordPaymentUseCase) RecordPayment(ctx context.Context, brandID, userID string, in dto.RecordPaymentRequest) (*dto.PaymentReceiptResponse, error) {
	if brandID == "" {
		return nil, domain.ErrBrandNotFound
	}
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	// Pre-validasi dokumen referensi (read-only, di luar transaksi).
	if err := uc.checkRefExists(brandID, in.RefType, in.RefID); err != nil {
		return nil, err
	}

	now := time.Now()
	paidAt := now
	if in.PaidAt != nil {
		paidAt = *in.PaidAt
	}

	payment := &entity.Payment{
		ID:          uuid.New().String(),
		BrandID:     brandID,
		Type:        in.Type,
		Method:      in.Method,
		Amount:      in.Amount,
		PaidAt:      paidAt,
		RefType:     in.RefType,
		RefID:       in.RefID,
		Notes:       in.Notes,
		CreatedByID: userID,
		CreatedAt:   now,
	}

	var receipt *entity.Receipt
	var expenseLink *dto.ExpenseLinkResponse

	err := uc.txRunner.RunPayment(ctx, func(
		paymentRepo repository.PaymentRepository,
		receiptRepo repository.ReceiptRepository,
		seqRepo repository.SequenceRepository,
		orderRepo repository.SalesOrderRepository,
		invoiceRepo repository.InvoiceRepository,
		purchaseRepo repository.PurchaseRepository,
		expenseRepo repository.ExpenseRepository,
	) error {
		if err := paymentRepo.Create(payment); err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		period := paidAt.Format("200601")
		seq, err := seqRepo.Next(brandID, DocTypeReceipt, period)
		if err != nil {
			return fmt.Errorf("nomor kwitansi: %w", err)
		}
		receipt = &entity.Receipt{
			ID:            uuid.New().String(),
			BrandID:       brandID,
			PaymentID:     payment.ID,
			ReceiptNumber: ReceiptNumber(period, seq),
			CreatedAt:     now,
		}
		if err := receiptRepo.Create(receipt); err != nil {
			return fmt.Errorf("insert receipt: %w", err)
		}

		if in.RefType == entity.RefTypeExpense {
			// Best-effort: gagal link tidak membatalkan payment + receipt.
			outcome := dto.ExpenseLinkResponse{Status: ExpenseLinkLinked}
			if err := expenseRepo.LinkPayment(brandID, in.RefID, payment.ID); err != nil {
				outcome = dto.ExpenseLinkResponse{Status: ExpenseLinkFailed, Reason: err.Error()}
				uc.log.Warn().Err(err).
					Str("expense_id", in.RefID).
					Str("payment_id", payment.ID).
					Msg("link expense ke payment gagal (non-fatal)")
			}
			expenseLink = &outcome
			return nil
		}

		return RecalcForRef(brandID, in.RefType, in.RefID, paymentRepo, orderRepo, invoiceRepo, purchaseRepo)
	})
	if err != nil {
		return nil, err
	}

	return &dto.PaymentReceiptResponse{
		Payment:     toPaymentResponse(payment),
		Receipt:     toReceiptResponse(receipt),
		ExpenseLink: expenseLink,
	}, nil
}

// checkRefExists memastikan dokumen referensi ada di brand yang sama.
func (uc *RecordPaymentUseCase) checkRefExists(brandID, refType, refID string) error {
	switch refType {
	case entity.RefTypeSalesOrder:
		order, err := uc.orderRepo.GetByID(brandID, refID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
	case entity.RefTypeInvoice:
		inv, err := uc.invoiceRepo.GetByID(brandID, refID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
	case entity.RefTypePurchase:
		purchase, err := uc.purchaseRepo.GetByID(brandID, refID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
	case entity.RefTypeExpense:
		expense, err := uc.expenseRepo.GetByID(brandID, refID)
		if err != nil {
			return err
		}
		if expense == nil {
			return domain.ErrNotFound
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:        p.ID,
		BrandID:   p.BrandID,
		Type:      p.Type,
		Method:    p.Method,
		Amount:    p.Amount,
		PaidAt:    p.PaidAt,
		RefType:   p.RefType,
		RefID:     p.RefID,
		Notes:     p.Notes,
		CreatedBy: p.CreatedByID,
		CreatedAt: p.CreatedAt,
	}
}

func toReceiptResponse(r *entity.Receipt) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		ID:            r.ID,
		PaymentID:     r.PaymentID,
		ReceiptNumber: r.ReceiptNumber,
		CreatedAt:     r.CreatedAt,
	}
}
