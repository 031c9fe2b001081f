// Package orders mengelola sales order: pembuatan dengan penomoran atomik dan
// transisi status yang menggerakkan Stock Mutation Engine.
package orders

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

// DocTypeOrder jenis dokumen di tabel sequence untuk nomor sales order.
const DocTypeOrder = "SO"

// OrderNumber memformat nomor sales order: SO-YYYYMM-NNNN.
func OrderNumber(period string, seq int64) string {
	return fmt.Sprintf("SO-%s-%04d", period, seq)
}

// UseCase operasi sales order.
type UseCase struct {
	txRunner     TxRunner
	orderRepo    repository.SalesOrderRepository
	mutationRepo repository.StockMutationRepository
	engine       *stock.Engine
	log          *logger.Logger
}

// NewUseCase membangun use case order. orderRepo dan mutationRepo terikat
// pool untuk read.
func NewUseCase(txRunner TxRunner, orderRepo repository.SalesOrderRepository, mutationRepo repository.StockMutationRepository, engine *stock.Engine, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, orderRepo: orderRepo, mutationRepo: mutationRepo, engine: engine, log: log}
}

// Create membuat sales order baru berstatus DRAFT. Nomor diambil dari counter
// atomik per (brand, SO, bulan); header dan item masuk dalam satu transaksi.
func (uc *UseCase) Create(ctx context.Context, brandID, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if brandID == "" {
		return nil, domain.ErrBrandNotFound
	}
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	order := &entity.SalesOrder{
		ID:            uuid.New().String(),
		BrandID:       brandID,
		CustomerName:  in.CustomerName,
		Status:        entity.OrderStatusDraft,
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
		item := &entity.SalesOrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
		order.Items = append(order.Items, item)
		total = total.Add(it.Quantity.Mul(it.UnitPrice))
	}
	order.TotalAmount = total

	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.SalesOrderRepository,
		_ repository.StockMutationRepository,
		_ repository.ProductRepository,
		seqRepo repository.SequenceRepository,
	) error {
		period := now.Format("200601")
		seq, err := seqRepo.Next(brandID, DocTypeOrder, period)
		if err != nil {
			return fmt.Errorf("nomor sales order: %w", err)
		}
		order.Number = OrderNumber(period, seq)
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("order_id", order.ID).
		Str("number", order.Number).
		Str("brand_id", brandID).
		Msg("sales order dibuat")
	resp := toOrderResponse(order)
	return &resp, nil
}

// GetByID mengambil satu order beserta itemnya.
func (uc *UseCase) GetByID(brandID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(brandID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

// List mengambil daftar order brand, opsional difilter status.
func (uc *UseCase) List(brandID, status string, page dto.PageRequest) ([]dto.OrderResponse, error) {
	page.DefaultPage()
	if status != "" {
		normalized, ok := entity.ParseOrderStatus(status)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		status = string(normalized)
	}
	list, err := uc.orderRepo.List(brandID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// UpdateStatus mengganti status order dan menggerakkan stok sesuai transisi:
//
//   - masuk SHIPPED dari status non-shipped  -> mutasi OUT (sekali saja)
//   - keluar dari SHIPPED ke non-shipped     -> reversal IN (sekali saja)
//
// Seluruhnya satu transaksi dengan lock baris order, jadi dua request
// bersamaan tidak bisa menerapkan efek stok dua kali.
func (uc *UseCase) UpdateStatus(ctx context.Context, brandID, userID, orderID string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	newStatus, ok := entity.ParseOrderStatus(in.Status)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.SalesOrderRepository,
		mutationRepo repository.StockMutationRepository,
		productRepo repository.ProductRepository,
		_ repository.SequenceRepository,
	) error {
		order, err := orderRepo.GetForUpdate(brandID, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		wasShipped := order.Status.IsShipped()
		willShip := newStatus.IsShipped()

		if err := orderRepo.UpdateStatus(brandID, orderID, newStatus); err != nil {
			return err
		}

		switch {
		case willShip && !wasShipped:
			return uc.engine.ApplyOrderShipment(order, userID, now, orderRepo, mutationRepo, productRepo)
		case wasShipped && !willShip:
			return uc.engine.RevertOrderShipment(order, userID, now, orderRepo, mutationRepo, productRepo)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("order_id", orderID).
		Str("status", string(newStatus)).
		Msg("status sales order diperbarui")
	return uc.GetByID(brandID, orderID)
}

// Mutations mengambil mutasi stok yang dihasilkan satu order (audit trail
// pengiriman + reversal-nya).
func (uc *UseCase) Mutations(brandID, orderID string) ([]dto.StockMutationResponse, error) {
	order, err := uc.orderRepo.GetByID(brandID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.mutationRepo.ListByRef(brandID, entity.RefTableSalesOrder, orderID)
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

func toOrderResponse(o *entity.SalesOrder) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return dto.OrderResponse{
		ID:              o.ID,
		BrandID:         o.BrandID,
		Number:          o.Number,
		CustomerName:    o.CustomerName,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		PaidAmount:      o.PaidAmount,
		PaymentStatus:   o.PaymentStatus,
		Notes:           o.Notes,
		StockAppliedAt:  o.StockAppliedAt,
		StockReversedAt: o.StockReversedAt,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
