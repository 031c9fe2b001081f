package payments

import (
	"context"

	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

// TxRunner menjalankan fungsi di dalam satu transaksi database dengan
// repositori yang terikat ke transaksi itu. Menjamin atomisitas
// payment + receipt + rekalkulasi status.
type TxRunner interface {
	RunPayment(ctx context.Context, fn func(
		paymentRepo repository.PaymentRepository,
		receiptRepo repository.ReceiptRepository,
		seqRepo repository.SequenceRepository,
		orderRepo repository.SalesOrderRepository,
		invoiceRepo repository.InvoiceRepository,
		purchaseRepo repository.PurchaseRepository,
		expenseRepo repository.ExpenseRepository,
	) error) error
}
