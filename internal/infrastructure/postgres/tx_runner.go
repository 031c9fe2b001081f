package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/usahakita/backoffice-api/internal/application/billing"
	"github.com/usahakita/backoffice-api/internal/application/orders"
	"github.com/usahakita/backoffice-api/internal/application/payments"
	"github.com/usahakita/backoffice-api/internal/application/purchases"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

var _ payments.TxRunner = (*TxRunner)(nil)
var _ orders.TxRunner = (*TxRunner)(nil)
var _ purchases.TxRunner = (*TxRunner)(nil)
var _ billing.TxRunner = (*TxRunner)(nil)

// TxRunner menjalankan callback di dalam satu transaksi PostgreSQL dengan
// repo yang terikat ke transaksi itu.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner membangun runner dengan pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPayment transaksi pencatatan pembayaran: payment + kwitansi + nomor +
// rekalkulasi / link expense.
func (r *TxRunner) RunPayment(ctx context.Context, fn func(
	paymentRepo repository.PaymentRepository,
	receiptRepo repository.ReceiptRepository,
	seqRepo repository.SequenceRepository,
	orderRepo repository.SalesOrderRepository,
	invoiceRepo repository.InvoiceRepository,
	purchaseRepo repository.PurchaseRepository,
	expenseRepo repository.ExpenseRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewPaymentRepository(tx),
		NewReceiptRepository(tx),
		NewSequenceRepository(tx),
		NewSalesOrderRepository(tx),
		NewInvoiceRepository(tx),
		NewPurchaseRepository(tx),
		NewExpenseRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrder transaksi sales order: pembuatan dengan nomor atomik atau transisi
// status yang menggerakkan stok.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.SalesOrderRepository,
	mutationRepo repository.StockMutationRepository,
	productRepo repository.ProductRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewSalesOrderRepository(tx),
		NewStockMutationRepository(tx),
		NewProductRepository(tx),
		NewSequenceRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPurchase transaksi pembelian: pembuatan, penerimaan (stok IN), atau
// penghapusan dengan reversal.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	mutationRepo repository.StockMutationRepository,
	productRepo repository.ProductRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewPurchaseRepository(tx),
		NewStockMutationRepository(tx),
		NewProductRepository(tx),
		NewSequenceRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunInvoice transaksi pembuatan invoice dengan nomor atomik.
func (r *TxRunner) RunInvoice(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInvoiceRepository(tx), NewSequenceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
