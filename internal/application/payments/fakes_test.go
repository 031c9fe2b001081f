package payments_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

// Fake in-memory untuk menguji use case pembayaran tanpa database.

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (f *fakePaymentRepo) Create(p *entity.Payment) error {
	f.payments = append(f.payments, p)
	return nil
}

func (f *fakePaymentRepo) GetByID(brandID, id string) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.BrandID == brandID && p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) List(brandID, refType, refID string, limit, offset int) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.payments {
		if p.BrandID != brandID {
			continue
		}
		if refType != "" && p.RefType != refType {
			continue
		}
		if refID != "" && p.RefID != refID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePaymentRepo) SumByRef(brandID, paymentType, refType, refID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range f.payments {
		if p.BrandID == brandID && p.Type == paymentType && p.RefType == refType && p.RefID == refID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

type fakeReceiptRepo struct {
	receipts   []*entity.Receipt
	failCreate bool
}

func (f *fakeReceiptRepo) Create(r *entity.Receipt) error {
	if f.failCreate {
		return errors.New("receipt insert gagal")
	}
	f.receipts = append(f.receipts, r)
	return nil
}

func (f *fakeReceiptRepo) GetByID(brandID, id string) (*entity.Receipt, error) {
	for _, r := range f.receipts {
		if r.BrandID == brandID && r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReceiptRepo) GetByPaymentID(brandID, paymentID string) (*entity.Receipt, error) {
	for _, r := range f.receipts {
		if r.BrandID == brandID && r.PaymentID == paymentID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReceiptRepo) List(brandID string, limit, offset int) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, r := range f.receipts {
		if r.BrandID == brandID {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeSequenceRepo counter per (brand, docType, period) seperti tabel
// doc_sequences.
type fakeSequenceRepo struct {
	counters map[string]int64
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{counters: map[string]int64{}}
}

func (f *fakeSequenceRepo) Next(brandID, docType, period string) (int64, error) {
	key := fmt.Sprintf("%s/%s/%s", brandID, docType, period)
	f.counters[key]++
	return f.counters[key], nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.SalesOrder
}

func newFakeOrderRepo(orders ...*entity.SalesOrder) *fakeOrderRepo {
	f := &fakeOrderRepo{orders: map[string]*entity.SalesOrder{}}
	for _, o := range orders {
		f.orders[o.ID] = o
	}
	return f
}

func (f *fakeOrderRepo) Create(o *entity.SalesOrder) error { f.orders[o.ID] = o; return nil }

func (f *fakeOrderRepo) GetByID(brandID, id string) (*entity.SalesOrder, error) {
	o, ok := f.orders[id]
	if !ok || o.BrandID != brandID {
		return nil, nil
	}
	return o, nil
}

func (f *fakeOrderRepo) GetForUpdate(brandID, id string) (*entity.SalesOrder, error) {
	return f.GetByID(brandID, id)
}

func (f *fakeOrderRepo) List(brandID string, status string, limit, offset int) ([]*entity.SalesOrder, error) {
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(brandID, id string, status entity.OrderStatus) error {
	f.orders[id].Status = status
	return nil
}

func (f *fakeOrderRepo) UpdatePaymentCache(brandID, id string, paid decimal.Decimal, status string) error {
	o := f.orders[id]
	o.PaidAmount = paid
	o.PaymentStatus = status
	return nil
}

func (f *fakeOrderRepo) SetStockAppliedAt(brandID, id string, at time.Time) error {
	f.orders[id].StockAppliedAt = &at
	return nil
}

func (f *fakeOrderRepo) SetStockReversedAt(brandID, id string, at time.Time) error {
	f.orders[id].StockReversedAt = &at
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
}

func newFakeInvoiceRepo(invoices ...*entity.Invoice) *fakeInvoiceRepo {
	f := &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
	for _, inv := range invoices {
		f.invoices[inv.ID] = inv
	}
	return f
}

func (f *fakeInvoiceRepo) Create(inv *entity.Invoice) error { f.invoices[inv.ID] = inv; return nil }

func (f *fakeInvoiceRepo) GetByID(brandID, id string) (*entity.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok || inv.BrandID != brandID {
		return nil, nil
	}
	return inv, nil
}

func (f *fakeInvoiceRepo) List(brandID string, status string, limit, offset int) ([]*entity.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoiceRepo) UpdatePaymentCache(brandID, id string, paid decimal.Decimal, status string) error {
	inv := f.invoices[id]
	inv.PaidAmount = paid
	inv.PaymentStatus = status
	return nil
}

type fakePurchaseRepo struct {
	purchases map[string]*entity.PurchaseDirect
}

func newFakePurchaseRepo(purchases ...*entity.PurchaseDirect) *fakePurchaseRepo {
	f := &fakePurchaseRepo{purchases: map[string]*entity.PurchaseDirect{}}
	for _, p := range purchases {
		f.purchases[p.ID] = p
	}
	return f
}

func (f *fakePurchaseRepo) Create(p *entity.PurchaseDirect) error { f.purchases[p.ID] = p; return nil }

func (f *fakePurchaseRepo) GetByID(brandID, id string) (*entity.PurchaseDirect, error) {
	p, ok := f.purchases[id]
	if !ok || p.BrandID != brandID {
		return nil, nil
	}
	return p, nil
}

func (f *fakePurchaseRepo) GetForUpdate(brandID, id string) (*entity.PurchaseDirect, error) {
	return f.GetByID(brandID, id)
}

func (f *fakePurchaseRepo) List(brandID string, limit, offset int) ([]*entity.PurchaseDirect, error) {
	return nil, nil
}

func (f *fakePurchaseRepo) SetReceivedAt(brandID, id string, at time.Time) error {
	f.purchases[id].ReceivedAt = &at
	return nil
}

func (f *fakePurchaseRepo) UpdatePaymentCache(brandID, id string, paid decimal.Decimal, status string) error {
	p := f.purchases[id]
	p.PaidAmount = paid
	p.PaymentStatus = status
	return nil
}

func (f *fakePurchaseRepo) SetStockAppliedAt(brandID, id string, at time.Time) error {
	f.purchases[id].StockAppliedAt = &at
	return nil
}

func (f *fakePurchaseRepo) SetStockReversedAt(brandID, id string, at time.Time) error {
	f.purchases[id].StockReversedAt = &at
	return nil
}

func (f *fakePurchaseRepo) Delete(brandID, id string) error {
	delete(f.purchases, id)
	return nil
}

type fakeExpenseRepo struct {
	expenses map[string]*entity.Expense
	failLink bool
}

func newFakeExpenseRepo(expenses ...*entity.Expense) *fakeExpenseRepo {
	f := &fakeExpenseRepo{expenses: map[string]*entity.Expense{}}
	for _, e := range expenses {
		f.expenses[e.ID] = e
	}
	return f
}

func (f *fakeExpenseRepo) Create(e *entity.Expense) error { f.expenses[e.ID] = e; return nil }

func (f *fakeExpenseRepo) GetByID(brandID, id string) (*entity.Expense, error) {
	e, ok := f.expenses[id]
	if !ok || e.BrandID != brandID {
		return nil, nil
	}
	return e, nil
}

func (f *fakeExpenseRepo) List(brandID string, limit, offset int) ([]*entity.Expense, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) LinkPayment(brandID, expenseID, paymentID string) error {
	if f.failLink {
		return errors.New("update expense gagal")
	}
	e, ok := f.expenses[expenseID]
	if !ok || e.BrandID != brandID {
		return errors.New("expense tidak ditemukan")
	}
	e.PaymentID = &paymentID
	return nil
}

// fakeTxRunner menjalankan callback dengan fake repo dan mensimulasikan
// rollback: kalau callback error, payment dan receipt yang sempat masuk
// dibuang lagi.
type fakeTxRunner struct {
	paymentRepo  *fakePaymentRepo
	receiptRepo  *fakeReceiptRepo
	seqRepo      *fakeSequenceRepo
	orderRepo    *fakeOrderRepo
	invoiceRepo  *fakeInvoiceRepo
	purchaseRepo *fakePurchaseRepo
	expenseRepo  *fakeExpenseRepo
	rolledBack   bool
}

func (f *fakeTxRunner) RunPayment(ctx context.Context, fn func(
	paymentRepo repository.PaymentRepository,
	receiptRepo repository.ReceiptRepository,
	seqRepo repository.SequenceRepository,
	orderRepo repository.SalesOrderRepository,
	invoiceRepo repository.InvoiceRepository,
	purchaseRepo repository.PurchaseRepository,
	expenseRepo repository.ExpenseRepository,
) error) error {
	paymentsBefore := len(f.paymentRepo.payments)
	receiptsBefore := len(f.receiptRepo.receipts)
	err := fn(f.paymentRepo, f.receiptRepo, f.seqRepo, f.orderRepo, f.invoiceRepo, f.purchaseRepo, f.expenseRepo)
	if err != nil {
		f.paymentRepo.payments = f.paymentRepo.payments[:paymentsBefore]
		f.receiptRepo.receipts = f.receiptRepo.receipts[:receiptsBefore]
		f.rolledBack = true
	}
	return err
}
