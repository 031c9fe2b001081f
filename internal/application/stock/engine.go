// Package stock berisi Stock Mutation Engine: compensating-transaction di atas
// log StockMutation. Ada-tidaknya baris mutasi untuk sebuah dokumen ADALAH
// state-nya (guard count sebelum insert), sehingga transisi status yang
// diulang-ulang tidak pernah menggandakan efek stok. Semua method tx-scoped:
// caller memberikan repositori yang terikat transaksinya sendiri.
package stock

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

// Engine menerapkan dan membalikkan efek stok dari transisi dokumen.
type Engine struct{}

// NewEngine membangun engine (stateless).
func NewEngine() *Engine {
	return &Engine{}
}

// ApplyOrderShipment mengurangi stok untuk setiap item order yang tracked dan
// mencatat mutasi OUT, saat order masuk status SHIPPED pertama kali.
// Guard: kalau sudah ada mutasi OUT untuk order ini, no-op (idempoten —
// save ulang status SHIPPED tidak mengurangi stok dua kali).
func (e *Engine) ApplyOrderShipment(
	order *entity.SalesOrder,
	userID string,
	now time.Time,
	orderRepo repository.SalesOrderRepository,
	mutationRepo repository.StockMutationRepository,
	productRepo repository.ProductRepository,
) error {
	applied, err := mutationRepo.CountByRefAndType(order.BrandID, entity.RefTableSalesOrder, order.ID, entity.MutationTypeOUT)
	if err != nil {
		return fmt.Errorf("cek mutasi OUT order %s: %w", order.ID, err)
	}
	if applied > 0 {
		return nil // stok sudah pernah dikurangi untuk order ini
	}

	for _, item := range order.Items {
		note := fmt.Sprintf("Sales Order %s dikirim", order.Number)
		if err := e.applyItem(order.BrandID, userID, now, mutationRepo, productRepo,
			item.ProductID, item.Quantity, entity.MutationTypeOUT,
			entity.RefTableSalesOrder, order.ID, note); err != nil {
			return err
		}
	}
	return orderRepo.SetStockAppliedAt(order.BrandID, order.ID, now)
}

// RevertOrderShipment mengembalikan stok ketika order yang sudah SHIPPED
// diturunkan statusnya (pengiriman keliru). Guard ganda: hanya jalan kalau
// sudah pernah ada OUT dan belum pernah ada IN reversal — satu reversal per
// pengiriman.
func (e *Engine) RevertOrderShipment(
	order *entity.SalesOrder,
	userID string,
	now time.Time,
	orderRepo repository.SalesOrderRepository,
	mutationRepo repository.StockMutationRepository,
	productRepo repository.ProductRepository,
) error {
	shipped, err := mutationRepo.CountByRefAndType(order.BrandID, entity.RefTableSalesOrder, order.ID, entity.MutationTypeOUT)
	if err != nil {
		return fmt.Errorf("cek mutasi OUT order %s: %w", order.ID, err)
	}
	if shipped == 0 {
		return nil // tidak ada pengiriman yang perlu dibalik
	}
	reversed, err := mutationRepo.CountByRefAndType(order.BrandID, entity.RefTableSalesOrder, order.ID, entity.MutationTypeIN)
	if err != nil {
		return fmt.Errorf("cek mutasi IN order %s: %w", order.ID, err)
	}
	if reversed > 0 {
		return nil // reversal sudah pernah dibuat
	}

	for _, item := range order.Items {
		note := fmt.Sprintf("Reversal pengiriman SO %s", order.Number)
		if err := e.applyItem(order.BrandID, userID, now, mutationRepo, productRepo,
			item.ProductID, item.Quantity, entity.MutationTypeIN,
			entity.RefTableSalesOrder, order.ID, note); err != nil {
			return err
		}
	}
	return orderRepo.SetStockReversedAt(order.BrandID, order.ID, now)
}

// ApplyPurchaseReceipt menambah stok untuk item pembelian yang tracked dan
// mencatat mutasi IN, saat pembelian ditandai diterima. Guard sama dengan
// pengiriman order, arah kebalikan.
func (e *Engine) ApplyPurchaseReceipt(
	purchase *entity.PurchaseDirect,
	userID string,
	now time.Time,
	purchaseRepo repository.PurchaseRepository,
	mutationRepo repository.StockMutationRepository,
	productRepo repository.ProductRepository,
) error {
	applied, err := mutationRepo.CountByRefAndType(purchase.BrandID, entity.RefTablePurchase, purchase.ID, entity.MutationTypeIN)
	if err != nil {
		return fmt.Errorf("cek mutasi IN pembelian %s: %w", purchase.ID, err)
	}
	if applied > 0 {
		return nil
	}

	for _, item := range purchase.Items {
		note := fmt.Sprintf("Pembelian %s diterima", purchase.Number)
		if err := e.applyItem(purchase.BrandID, userID, now, mutationRepo, productRepo,
			item.ProductID, item.Quantity, entity.MutationTypeIN,
			entity.RefTablePurchase, purchase.ID, note); err != nil {
			return err
		}
	}
	return purchaseRepo.SetStockAppliedAt(purchase.BrandID, purchase.ID, now)
}

// RevertPurchaseReceipt mengeluarkan kembali stok ketika pembelian yang sudah
// diterima dihapus. Hanya jalan kalau penerimaan pernah diterapkan dan belum
// pernah dibalik.
func (e *Engine) RevertPurchaseReceipt(
	purchase *entity.PurchaseDirect,
	userID string,
	now time.Time,
	purchaseRepo repository.PurchaseRepository,
	mutationRepo repository.StockMutationRepository,
	productRepo repository.ProductRepository,
) error {
	received, err := mutationRepo.CountByRefAndType(purchase.BrandID, entity.RefTablePurchase, purchase.ID, entity.MutationTypeIN)
	if err != nil {
		return fmt.Errorf("cek mutasi IN pembelian %s: %w", purchase.ID, err)
	}
	if received == 0 {
		return nil
	}
	reversed, err := mutationRepo.CountByRefAndType(purchase.BrandID, entity.RefTablePurchase, purchase.ID, entity.MutationTypeOUT)
	if err != nil {
		return fmt.Errorf("cek mutasi OUT pembelian %s: %w", purchase.ID, err)
	}
	if reversed > 0 {
		return nil
	}

	for _, item := range purchase.Items {
		note := fmt.Sprintf("Reversal penerimaan pembelian %s", purchase.Number)
		if err := e.applyItem(purchase.BrandID, userID, now, mutationRepo, productRepo,
			item.ProductID, item.Quantity, entity.MutationTypeOUT,
			entity.RefTablePurchase, purchase.ID, note); err != nil {
			return err
		}
	}
	return purchaseRepo.SetStockReversedAt(purchase.BrandID, purchase.ID, now)
}

// applyItem satu baris item: skip item custom / qty nol / produk tidak
// ditemukan / produk tidak tracked; selain itu kunci baris produk, geser qty
// sesuai arah, dan tulis baris mutasi (qty selalu magnitude positif).
func (e *Engine) applyItem(
	brandID, userID string,
	now time.Time,
	mutationRepo repository.StockMutationRepository,
	productRepo repository.ProductRepository,
	productID string,
	qty decimal.Decimal,
	mutationType, refTable, refID, note string,
) error {
	if productID == "" || !qty.GreaterThan(decimal.Zero) {
		return nil // item custom atau qty nol: bukan item stok
	}
	product, err := productRepo.GetForUpdate(brandID, productID)
	if err != nil {
		return fmt.Errorf("lock produk %s: %w", productID, err)
	}
	if product == nil || !product.TrackStock {
		return nil // produk non-stok: dilewati, bukan error
	}

	delta := qty
	if mutationType == entity.MutationTypeOUT {
		delta = qty.Neg()
	}
	if err := productRepo.AdjustQty(brandID, productID, delta); err != nil {
		return fmt.Errorf("update qty produk %s: %w", productID, err)
	}

	mutation := &entity.StockMutation{
		ID:          uuid.New().String(),
		BrandID:     brandID,
		ProductID:   productID,
		Qty:         qty,
		Type:        mutationType,
		RefTable:    refTable,
		RefID:       refID,
		Note:        note,
		CreatedByID: userID,
		CreatedAt:   now,
	}
	if err := mutationRepo.Create(mutation); err != nil {
		return fmt.Errorf("insert mutasi stok: %w", err)
	}
	return nil
}
