package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usahakita/backoffice-api/internal/application/stock"
	"github.com/usahakita/backoffice-api/internal/domain/entity"
)

const (
	testBrandID = "brand-1"
	testUserID  = "user-1"
)

func qty(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func trackedProduct(id string, initial string) *entity.Product {
	return &entity.Product{
		ID:         id,
		BrandID:    testBrandID,
		SKU:        "SKU-" + id,
		Name:       "Produk " + id,
		Qty:        qty(initial),
		TrackStock: true,
	}
}

func orderWithItems(items ...*entity.SalesOrderItem) *entity.SalesOrder {
	return &entity.SalesOrder{
		ID:      "order-1",
		BrandID: testBrandID,
		Number:  "SO-202609-0001",
		Status:  entity.OrderStatusShipped,
		Items:   items,
	}
}

func TestApplyOrderShipment_MengurangiStokDanMencatatOUT(t *testing.T) {
	product := trackedProduct("p1", "10")
	productRepo := newFakeProductRepo(product)
	mutationRepo := &fakeMutationRepo{}
	order := orderWithItems(&entity.SalesOrderItem{ProductID: "p1", Quantity: qty("3")})
	orderRepo := newFakeOrderRepo(order)
	engine := stock.NewEngine()

	err := engine.ApplyOrderShipment(order, testUserID, time.Now(), orderRepo, mutationRepo, productRepo)
	require.NoError(t, err)

	assert.True(t, product.Qty.Equal(qty("7")), "stok harus berkurang 3, dapat %s", product.Qty)
	require.Len(t, mutationRepo.mutations, 1)
	m := mutationRepo.mutations[0]
	assert.Equal(t, entity.MutationTypeOUT, m.Type)
	assert.True(t, m.Qty.Equal(qty("3")), "qty mutasi selalu magnitude positif")
	assert.Equal(t, entity.RefTableSalesOrder, m.RefTable)
	assert.Equal(t, "Sales Order SO-202609-0001 dikirim", m.Note)
	assert.NotNil(t, order.StockAppliedAt)
}

// Save ulang status SHIPPED tidak boleh mengurangi stok dua kali.
func TestApplyOrderShipment_IdempotenSaatDiulang(t *testing.T) {
	product := trackedProduct("p1", "10")
	productRepo := newFakeProductRepo(product)
	mutationRepo := &fakeMutationRepo{}
	order := orderWithItems(&entity.SalesOrderItem{ProductID: "p1", Quantity: qty("3")})
	orderRepo := newFakeOrderRepo(order)
	engine := stock.NewEngine()

	for i := 0; i < 3; i++ {
		require.NoError(t, engine.ApplyOrderShipment(order, testUserID, time.Now(), orderRepo, mutationRepo, productRepo))
	}

	assert.True(t, product.Qty.Equal(qty("7")), "stok hanya boleh berkurang sekali")
	assert.Len(t, mutationRepo.mutations, 1)
}

func TestApplyOrderShipment_SkipItemNonStok(t *testing.T) {
	tracked := trackedProduct("p1", "10")
	untracked := trackedProduct("p2", "5")
	untracked.TrackStock = false
	productRepo := newFakeProductRepo(tracked, untracked)
	mutationRepo := &fakeMutationRepo{}
	order := orderWithItems(
		&entity.SalesOrderItem{ProductID: "p1", Quantity: qty("2")},
		&entity.SalesOrderItem{ProductID: "p2", Quantity: qty("4")},          // non-tracked
		&entity.SalesOrderItem{ProductID: "", Quantity: qty("1")},            // item custom
		&entity.SalesOrderItem{ProductID: "tidak-ada", Quantity: qty("1")},   // produk terhapus
		&entity.SalesOrderItem{ProductID: "p1", Quantity: decimal.Zero},      // qty nol
	)
	orderRepo := newFakeOrderRepo(order)
	engine := stock.NewEngine()

	require.NoError(t, engine.ApplyOrderShipment(order, testUserID, time.Now(), orderRepo, mutationRepo, productRepo))

	assert.True(t, tracked.Qty.Equal(qty("8")))
	assert.True(t, untracked.Qty.Equal(qty("5")), "produk non-tracked tidak boleh tersentuh")
	assert.Len(t, mutationRepo.mutations, 1, "hanya item tracked yang menghasilkan mutasi")
}

func TestRevertOrderShipment_MengembalikanStokSimetris(t *testing.T) {
	product := trackedProduct("p1", "10")
	productRepo := newFakeProductRepo(product)
	mutationRepo := &fakeMutationRepo{}
	order := orderWithItems(&entity.SalesOrderItem{ProductID: "p1", Quantity: qty("3")})
	orderRepo := newFakeOrderRepo(order)
	engine := stock.NewEngine()

	require.NoError(t, engine.ApplyOrderShipment(order, testUserID, time.Now(), orderRepo, mutationRepo, productRepo))
	require.NoError(t, engine.RevertOrderShipment(order, testUserID, time.Now(), orderRepo, mutationRepo, productRepo))

	assert.True(t, product.Qty.Equal(qty("10")), "reversal harus mengembalikan qty semula")
	require.Len(t, mutationRepo.mutations, 2, "log tidak dihapus; reversal adalah baris IN baru")
	assert.Equal(t, entity.MutationTypeIN, mutationRepo.mutations[1].Type)
	assert.Equal(t, "Reversal pengiriman SO SO-202609-0001", mutationRepo.mutations[1].Note)
	assert.NotNil(t, order.StockReversedAt)
}

func TestRevertOrderShipment_TanpaPengirimanJadiNoOp(t *testing.T) {
	product := trackedProduct("p1", "10")
	productRepo := newFakeProductRepo(product)
	mutationRepo := &fakeMutationRepo{}
	order := orderWithItems(&entity.SalesOrderItem{ProductID: "p1", Quantity: qty("3")})
	orderRepo := newFakeOrderRepo(order)
	engine := stock.NewEngine()

	require.NoError(t, engine.RevertOrderShipment(order, testUserID, time.Now(), orderRepo, mutationRepo, productRepo))

	assert.True(t, product.Qty.Equal(qty("10")))
	assert.Empty(t, mutationRepo.mutations)
}

func TestRevertOrderShipment_HanyaSatuReversal(t *testing.T) {
	product := trackedProduct("p1", "10")
	productRepo := newFakeProductRepo(product)
	mutationRepo := &fakeMutationRepo{}
	order := orderWithItems(&entity.SalesOrderItem{ProductID: "p1", Quantity: qty("3")})
	orderRepo := newFakeOrderRepo(order)
	engine := stock.NewEngine()

	require.NoError(t, engine.ApplyOrderShipment(order, testUserID, time.Now(), orderRepo, mutationRepo, productRepo))
	for i := 0; i < 3; i++ {
		require.NoError(t, engine.RevertOrderShipment(order, testUserID, time.Now(), orderRepo, mutationRepo, productRepo))
	}

	assert.True(t, product.Qty.Equal(qty("10")))
	assert.Len(t, mutationRepo.mutations, 2, "satu OUT + satu IN, tidak peduli berapa kali revert dipanggil")
}

func TestApplyPurchaseReceipt_MenambahStokDanSimetrisDenganRevert(t *testing.T) {
	product := trackedProduct("p1", "10")
	productRepo := newFakeProductRepo(product)
	mutationRepo := &fakeMutationRepo{}
	purchase := &entity.PurchaseDirect{
		ID:      "purchase-1",
		BrandID: testBrandID,
		Number:  "PB-202609-0001",
		Items:   []*entity.PurchaseItem{{ProductID: "p1", Quantity: qty("5")}},
	}
	purchaseRepo := newFakePurchaseRepo(purchase)
	engine := stock.NewEngine()

	require.NoError(t, engine.ApplyPurchaseReceipt(purchase, testUserID, time.Now(), purchaseRepo, mutationRepo, productRepo))
	assert.True(t, product.Qty.Equal(qty("15")))
	require.Len(t, mutationRepo.mutations, 1)
	assert.Equal(t, entity.MutationTypeIN, mutationRepo.mutations[0].Type)
	assert.Equal(t, "Pembelian PB-202609-0001 diterima", mutationRepo.mutations[0].Note)

	// Penerimaan ulang: no-op.
	require.NoError(t, engine.ApplyPurchaseReceipt(purchase, testUserID, time.Now(), purchaseRepo, mutationRepo, productRepo))
	assert.True(t, product.Qty.Equal(qty("15")))
	assert.Len(t, mutationRepo.mutations, 1)

	// Reversal (sebelum delete dokumen): stok kembali, baris OUT baru.
	require.NoError(t, engine.RevertPurchaseReceipt(purchase, testUserID, time.Now(), purchaseRepo, mutationRepo, productRepo))
	assert.True(t, product.Qty.Equal(qty("10")))
	require.Len(t, mutationRepo.mutations, 2)
	assert.Equal(t, entity.MutationTypeOUT, mutationRepo.mutations[1].Type)
	assert.Equal(t, "Reversal penerimaan pembelian PB-202609-0001", mutationRepo.mutations[1].Note)
}

func TestRevertPurchaseReceipt_TanpaPenerimaanJadiNoOp(t *testing.T) {
	product := trackedProduct("p1", "10")
	productRepo := newFakeProductRepo(product)
	mutationRepo := &fakeMutationRepo{}
	purchase := &entity.PurchaseDirect{
		ID:      "purchase-1",
		BrandID: testBrandID,
		Number:  "PB-202609-0001",
		Items:   []*entity.PurchaseItem{{ProductID: "p1", Quantity: qty("5")}},
	}
	purchaseRepo := newFakePurchaseRepo(purchase)
	engine := stock.NewEngine()

	require.NoError(t, engine.RevertPurchaseReceipt(purchase, testUserID, time.Now(), purchaseRepo, mutationRepo, productRepo))
	assert.True(t, product.Qty.Equal(qty("10")), "pembelian yang belum diterima tidak boleh menggeser stok saat dihapus")
	assert.Empty(t, mutationRepo.mutations)
}
