// Package products mengelola katalog produk. Qty tidak pernah diubah dari
// sini — perubahan stok hanya lewat Stock Mutation Engine.
package products

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/internal/domain"
	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
	"github.com/usahakita/backoffice-api/pkg/logger"
)

// UseCase operasi produk.
type UseCase struct {
	productRepo  repository.ProductRepository
	mutationRepo repository.StockMutationRepository
	log          *logger.Logger
}

// NewUseCase membangun use case produk.
func NewUseCase(productRepo repository.ProductRepository, mutationRepo repository.StockMutationRepository, log *logger.Logger) *UseCase {
	return &UseCase{productRepo: productRepo, mutationRepo: mutationRepo, log: log}
}

// Create membuat produk baru. InitialQty jadi qty awal apa adanya (bukan
// mutasi; mutasi hanya untuk pergerakan dokumen).
func (uc *UseCase) Create(ctx context.Context, brandID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if brandID == "" {
		return nil, domain.ErrBrandNotFound
	}
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		BrandID:    brandID,
		SKU:        in.SKU,
		Name:       in.Name,
		Qty:        in.InitialQty,
		TrackStock: in.TrackStock,
		Price:      in.Price,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrDuplicate
		}
		return nil, err
	}

	uc.log.Info().
		Str("product_id", product.ID).
		Str("sku", product.SKU).
		Str("brand_id", brandID).
		Msg("produk dibuat")
	resp := toProductResponse(product)
	return &resp, nil
}

// GetByID mengambil satu produk.
func (uc *UseCase) GetByID(brandID, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(brandID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List mengambil daftar produk brand.
func (uc *UseCase) List(brandID string, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.productRepo.List(brandID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update mengubah atribut produk (nama, harga, flag track stock). Qty tidak
// tersentuh.
func (uc *UseCase) Update(ctx context.Context, brandID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(brandID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Price.IsPositive() {
		product.Price = in.Price
	}
	if in.TrackStock != nil {
		product.TrackStock = *in.TrackStock
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Mutations mengambil riwayat mutasi stok satu produk (audit trail).
func (uc *UseCase) Mutations(brandID, productID string, page dto.PageRequest) ([]dto.StockMutationResponse, error) {
	page.DefaultPage()
	list, err := uc.mutationRepo.ListByProduct(brandID, productID, page.Limit, page.Offset)
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

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:         p.ID,
		BrandID:    p.BrandID,
		SKU:        p.SKU,
		Name:       p.Name,
		Qty:        p.Qty,
		TrackStock: p.TrackStock,
		Price:      p.Price,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
