// Package purchases mengelola pembelian langsung: pembuatan, penerimaan
// barang (stok IN), dan penghapusan dengan reversal stok simetris.
package purchases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/internal/application/stock"
	"github.com/usahakita/backoffice-api/internal/domain"
	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/ledger"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
	"github.com/usahakita/backoffice-api/pkg/logger"
)

// DocTypePurchase jenis dokumen di tabel sequence untuk nomor pembelian.
const DocTypePurchase = "PB"

// PurchaseNumber memformat nomor pembelian: PB-YYYYMM-NNNN.
func PurchaseNumber(period string, seq int64) string {
	return fmt.Sprintf("PB-%s-%04d", period, seq)
}

// UseCase operasi pembelian langsung.
type UseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository
	mutationRepo repository.StockMutationRepository
	engine       *stock.Engine
	log          *logger.Logger
}

// NewUseCase membangun use case pembelian. purchaseRepo dan mutationRepo
// terikat pool untuk read.
func NewUseCase(txRunner TxRunner, purchaseRepo repository.PurchaseRepository, mutationRepo repository.StockMutationRepository, engine *stock.Engine, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, purchaseRepo: purchaseRepo, mutationRepo: mutationRepo, engine: engine, log: log}
}

// Create membuat dokumen pembelian baru (belum diterima, belum menyentuh stok).
func (uc *UseCase) Create(ctx context.Context, brandID, userID string, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if brandID == "" {
		return nil, domain.ErrBrandNotFound
	}
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	purchase := &entity.PurchaseDirect{
		ID:            uuid.New().String(),
		BrandID:       brandID,
		SupplierName:  in.SupplierName,
		PaidAmount:    decimal.Zero,
		PaymentStatus: ledger.StatusUnpaid,
		Notes:         in.Notes,
		CreatedByID:   userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	total := decimal.Zero
	for _, it := range in.Items {
		if !it.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		purchase.Items = append(purchase.Items, &entity.PurchaseItem{
			ID:          uuid.New().String(),
			PurchaseID:  purchase.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitCost:    it.UnitCost,
		})
		total = total.Add(it.Quantity.Mul(it.UnitCost))
	}
	purchase.TotalAmount = total

	err := uc.txRunner.RunPurchase(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		_ repository.StockMutationRepository,
		_ repository.ProductRepository,
		seqRepo repository.SequenceRepository,
	) error {
		period := now.Format("200601")
		seq, err := seqRepo.Next(brandID, DocTypePurchase, period)
		if err != nil {
			return fmt.Errorf("nomor pembelian: %w", err)
		}
		purchase.Number = PurchaseNumber(period, seq)
		return purchaseRepo.Create(purchase)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("purchase_id", purchase.ID).
		Str("number", purchase.Number).
		Str("brand_id", brandID).
		Msg("pembelian dibuat")
	resp := toPurchaseResponse(purchase)
	return &resp, nil
}

// GetByID mengambil satu pembelian beserta itemnya.
func (uc *UseCase) GetByID(brandID, id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(brandID, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	resp := toPurchaseResponse(purchase)
	return &resp, nil
}

// List mengambil daftar pembelian brand.
func (uc *UseCase) List(brandID string, page dto.PageRequest) ([]dto.PurchaseResponse, error) {
	page.DefaultPage()
	list, err := uc.purchaseRepo.List(brandID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPurchaseResponse(p))
	}
	return out, nil
}

// Receive menandai pembelian diterima: stempel receivedAt dan terapkan
// mutasi stok IN untuk item yang tracked. Penerimaan ulang jadi no-op
// (guard count di engine).
func (uc *UseCase) Receive(ctx context.Context, brandID, userID, purchaseID string) (*dto.PurchaseResponse, error) {
	now := time.Now()
	err := uc.txRunner.RunPurchase(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		mutationRepo repository.StockMutationRepository,
		productRepo repository.ProductRepository,
		_ repository.SequenceRepository,
	) error {
		purchase, err := purchaseRepo.GetForUpdate(brandID, purchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		if !purchase.Received() {
			if err := purchaseRepo.SetReceivedAt(brandID, purchaseID, now); err != nil {
				return err
			}
		}
		return uc.engine.ApplyPurchaseReceipt(purchase, userID, now, purchaseRepo, mutationRepo, productRepo)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("purchase_id", purchaseID).
		Msg("pembelian diterima")
	return uc.GetByID(brandID, purchaseID)
}

// Delete menghapus pembelian. Kalau barangnya sudah pernah diterima, reversal
// stok OUT dibuat dulu di transaksi yang sama — log mutasi tetap utuh,
// dokumennya saja yang hilang.
func (uc *UseCase) Delete(ctx context.Context, brandID, userID, purchaseID string) error {
	now := time.Now()
	err := uc.txRunner.RunPurchase(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		mutationRepo repository.StockMutationRepository,
		productRepo repository.ProductRepository,
		_ repository.SequenceRepository,
	) error {
		purchase, err := purchaseRepo.GetForUpdate(brandID, purchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		if err := uc.engine.RevertPurchaseReceipt(purchase, userID, now, purchaseRepo, mutationRepo, productRepo); err != nil {
			return err
		}
		return purchaseRepo.Delete(brandID, purchaseID)
	})
	if err != nil {
		return err
	}

	uc.log.Info().
		Str("purchase_id", purchaseID).
		Msg("pembelian dihapus")
	return nil
}

// Mutations mengambil mutasi stok yang dihasilkan satu pembelian (audit
// trail penerimaan + reversal-nya; tetap bisa dibaca setelah dokumen dihapus
// selama id-nya diketahui — baris log tidak ikut terhapus).
func (uc *UseCase) Mutations(brandID, purchaseID string) ([]dto.StockMutationResponse, error) {
	list, err := uc.mutationRepo.ListByRef(brandID, entity.RefTablePurchase, purchaseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMutationResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.StockMutationResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Qty:       m.Qty,
			Type:      m.Type,
			RefTable:  m.RefTable,
			RefID:     m.RefID,
			Note:      m.Note,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

func toPurchaseResponse(p *entity.PurchaseDirect) dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitCost:    it.UnitCost,
		})
	}
	return dto.PurchaseResponse{
		ID:              p.ID,
		BrandID:         p.BrandID,
		Number:          p.Number,
		SupplierName:    p.SupplierName,
		TotalAmount:     p.TotalAmount,
		PaidAmount:      p.PaidAmount,
		PaymentStatus:   p.PaymentStatus,
		Notes:           p.Notes,
		ReceivedAt:      p.ReceivedAt,
		StockAppliedAt:  p.StockAppliedAt,
		StockReversedAt: p.StockReversedAt,
		Items:           items,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
