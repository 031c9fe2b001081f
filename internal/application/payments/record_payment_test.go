package payments_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/internal/application/payments"
	"github.com/usahakita/backoffice-api/internal/domain"
	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/ledger"
	"github.com/usahakita/backoffice-api/pkg/logger"
)

const (
	testBrandID = "brand-1"
	testUserID  = "user-1"
)

func amount(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

type fixture struct {
	tx *fakeTxRunner
	uc *payments.RecordPaymentUseCase
}

func newFixture(order *entity.SalesOrder, invoice *entity.Invoice, purchase *entity.PurchaseDirect, expense *entity.Expense) *fixture {
	tx := &fakeTxRunner{
		paymentRepo: &fakePaymentRepo{},
		receiptRepo: &fakeReceiptRepo{},
		seqRepo:     newFakeSequenceRepo(),
	}
	if order != nil {
		tx.orderRepo = newFakeOrderRepo(order)
	} else {
		tx.orderRepo = newFakeOrderRepo()
	}
	if invoice != nil {
		tx.invoiceRepo = newFakeInvoiceRepo(invoice)
	} else {
		tx.invoiceRepo = newFakeInvoiceRepo()
	}
	if purchase != nil {
		tx.purchaseRepo = newFakePurchaseRepo(purchase)
	} else {
		tx.purchaseRepo = newFakePurchaseRepo()
	}
	if expense != nil {
		tx.expenseRepo = newFakeExpenseRepo(expense)
	} else {
		tx.expenseRepo = newFakeExpenseRepo()
	}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := payments.NewRecordPaymentUseCase(tx, tx.orderRepo, tx.invoiceRepo, tx.purchaseRepo, tx.expenseRepo, log)
	return &fixture{tx: tx, uc: uc}
}

func testOrder(total string) *entity.SalesOrder {
	return &entity.SalesOrder{
		ID:            "order-1",
		BrandID:       testBrandID,
		Number:        "SO-202609-0001",
		Status:        entity.OrderStatusConfirmed,
		TotalAmount:   amount(total),
		PaidAmount:    decimal.Zero,
		PaymentStatus: ledger.StatusUnpaid,
	}
}

func orderPaymentRequest(amt string) dto.RecordPaymentRequest {
	return dto.RecordPaymentRequest{
		Type:    entity.PaymentTypeIN,
		Method:  entity.PaymentMethodCash,
		Amount:  amount(amt),
		RefType: entity.RefTypeSalesOrder,
		RefID:   "order-1",
	}
}

func TestRecordPayment_MembuatPaymentDanKwitansi(t *testing.T) {
	order := testOrder("100000")
	f := newFixture(order, nil, nil, nil)

	result, err := f.uc.RecordPayment(context.Background(), testBrandID, testUserID, orderPaymentRequest("40000"))
	require.NoError(t, err)

	assert.NotEmpty(t, result.Payment.ID)
	assert.Equal(t, result.Payment.ID, result.Receipt.PaymentID)
	assert.Regexp(t, `^RC-\d{6}-0001$`, result.Receipt.ReceiptNumber)
	assert.Nil(t, result.ExpenseLink, "refType non-expense tidak punya outcome link")
	require.Len(t, f.tx.paymentRepo.payments, 1)
	require.Len(t, f.tx.receiptRepo.receipts, 1)
}

func TestRecordPayment_NomorKwitansiBerurutan(t *testing.T) {
	order := testOrder("100000")
	f := newFixture(order, nil, nil, nil)

	first, err := f.uc.RecordPayment(context.Background(), testBrandID, testUserID, orderPaymentRequest("10000"))
	require.NoError(t, err)
	second, err := f.uc.RecordPayment(context.Background(), testBrandID, testUserID, orderPaymentRequest("10000"))
	require.NoError(t, err)

	assert.Regexp(t, `-0001$`, first.Receipt.ReceiptNumber)
	assert.Regexp(t, `-0002$`, second.Receipt.ReceiptNumber)
}

// Pembayaran bertahap: 40rb lalu 60rb dari total 100rb. Status harus
// PARTIAL dulu, lalu PAID; paid_amount hasil re-agregasi penuh.
func TestRecordPayment_RekalkulasiPartialLaluPaid(t *testing.T) {
	order := testOrder("100000")
	f := newFixture(order, nil, nil, nil)

	_, err := f.uc.RecordPayment(context.Background(), testBrandID, testUserID, orderPaymentRequest("40000"))
	require.NoError(t, err)
	assert.Equal(t, ledger.StatusPartial, order.PaymentStatus)
	assert.True(t, order.PaidAmount.Equal(amount("40000")))

	_, err = f.uc.RecordPayment(context.Background(), testBrandID, testUserID, orderPaymentRequest("60000"))
	require.NoError(t, err)
	assert.Equal(t, ledger.StatusPaid, order.PaymentStatus)
	assert.True(t, order.PaidAmount.Equal(amount("100000")))
}

// Kalau insert kwitansi gagal, seluruh transaksi rollback: tidak boleh ada
// payment yatim tanpa kwitansi.
func TestRecordPayment_GagalKwitansiRollbackSemua(t *testing.T) {
	order := testOrder("100000")
	f := newFixture(order, nil, nil, nil)
	f.tx.receiptRepo.failCreate = true

	_, err := f.uc.RecordPayment(context.Background(), testBrandID, testUserID, orderPaymentRequest("40000"))
	require.Error(t, err)

	assert.True(t, f.tx.rolledBack)
	assert.Empty(t, f.tx.paymentRepo.payments, "payment tidak boleh tersisa setelah rollback")
	assert.Empty(t, f.tx.receiptRepo.receipts)
	assert.Equal(t, ledger.StatusUnpaid, order.PaymentStatus, "status dokumen tidak berubah")
}

func TestRecordPayment_AmountNolDitolak(t *testing.T) {
	f := newFixture(testOrder("100000"), nil, nil, nil)

	req := orderPaymentRequest("0")
	_, err := f.uc.RecordPayment(context.Background(), testBrandID, testUserID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	req.Amount = amount("-500")
	_, err = f.uc.RecordPayment(context.Background(), testBrandID, testUserID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Empty(t, f.tx.paymentRepo.payments)
}

func TestRecordPayment_DokumenReferensiTidakAda(t *testing.T) {
	f := newFixture(nil, nil, nil, nil)

	_, err := f.uc.RecordPayment(context.Background(), testBrandID, testUserID, orderPaymentRequest("40000"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.tx.paymentRepo.payments)
}

func TestRecordPayment_BrandKosongDitolak(t *testing.T) {
	f := newFixture(testOrder("100000"), nil, nil, nil)

	_, err := f.uc.RecordPayment(context.Background(), "", testUserID, orderPaymentRequest("40000"))
	assert.ErrorIs(t, err, domain.ErrBrandNotFound)
}

// Pembayaran PURCHASE menjumlahkan arah OUT, bukan IN.
func TestRecordPayment_PurchasePolaritasOUT(t *testing.T) {
	purchase := &entity.PurchaseDirect{
		ID:            "purchase-1",
		BrandID:       testBrandID,
		Number:        "PB-202609-0001",
		TotalAmount:   amount("50000"),
		PaidAmount:    decimal.Zero,
		PaymentStatus: ledger.StatusUnpaid,
	}
	f := newFixture(nil, nil, purchase, nil)

	req := dto.RecordPaymentRequest{
		Type:    entity.PaymentTypeOUT,
		Method:  entity.PaymentMethodBCA,
		Amount:  amount("50000"),
		RefType: entity.RefTypePurchase,
		RefID:   "purchase-1",
	}
	_, err := f.uc.RecordPayment(context.Background(), testBrandID, testUserID, req)
	require.NoError(t, err)

	assert.Equal(t, ledger.StatusPaid, purchase.PaymentStatus)
	assert.True(t, purchase.PaidAmount.Equal(amount("50000")))
}

func expensePaymentRequest() dto.RecordPaymentRequest {
	return dto.RecordPaymentRequest{
		Type:    entity.PaymentTypeOUT,
		Method:  entity.PaymentMethodCash,
		Amount:  amount("25000"),
		RefType: entity.RefTypeExpense,
		RefID:   "expense-1",
	}
}

func TestRecordPayment_ExpenseLinkBerhasil(t *testing.T) {
	expense := &entity.Expense{ID: "expense-1", BrandID: testBrandID, Description: "listrik", Amount: amount("25000")}
	f := newFixture(nil, nil, nil, expense)

	result, err := f.uc.RecordPayment(context.Background(), testBrandID, testUserID, expensePaymentRequest())
	require.NoError(t, err)

	require.NotNil(t, result.ExpenseLink)
	assert.Equal(t, payments.ExpenseLinkLinked, result.ExpenseLink.Status)
	require.NotNil(t, expense.PaymentID)
	assert.Equal(t, result.Payment.ID, *expense.PaymentID)
}

// Gagal link expense TIDAK membatalkan payment + kwitansi; outcome-nya
// dilaporkan ke caller.
func TestRecordPayment_ExpenseLinkGagalTetapCommit(t *testing.T) {
	expense := &entity.Expense{ID: "expense-1", BrandID: testBrandID, Description: "listrik", Amount: amount("25000")}
	f := newFixture(nil, nil, nil, expense)
	f.tx.expenseRepo.failLink = true

	result, err := f.uc.RecordPayment(context.Background(), testBrandID, testUserID, expensePaymentRequest())
	require.NoError(t, err, "gagal link tidak boleh menggagalkan pembayaran")

	require.NotNil(t, result.ExpenseLink)
	assert.Equal(t, payments.ExpenseLinkFailed, result.ExpenseLink.Status)
	assert.NotEmpty(t, result.ExpenseLink.Reason)
	assert.False(t, f.tx.rolledBack)
	assert.Len(t, f.tx.paymentRepo.payments, 1)
	assert.Len(t, f.tx.receiptRepo.receipts, 1)
	assert.Nil(t, expense.PaymentID)
}

func TestReceiptNumber_Format(t *testing.T) {
	assert.Equal(t, "RC-202609-0001", payments.ReceiptNumber("202609", 1))
	assert.Equal(t, "RC-202612-0042", payments.ReceiptNumber("202612", 42))
	// Di atas 4 digit nomor tetap utuh, tidak terpotong.
	assert.Equal(t, "RC-202609-12345", payments.ReceiptNumber("202609", 12345))
}
