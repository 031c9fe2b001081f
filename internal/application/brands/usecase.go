// Package brands mengelola brand profile (tenant) dan brand aktif.
package brands

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

// UseCase operasi brand profile.
type UseCase struct {
	brandRepo repository.BrandRepository
	log       *logger.Logger
}

// NewUseCase membangun use case brand.
func NewUseCase(brandRepo repository.BrandRepository, log *logger.Logger) *UseCase {
	return &UseCase{brandRepo: brandRepo, log: log}
}

// Create membuat brand baru. Brand pertama langsung dijadikan aktif.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}

	active, err := uc.brandRepo.GetActive()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	brand := &entity.BrandProfile{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		IsActive:  active == nil, // brand pertama otomatis aktif
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.brandRepo.Create(brand); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrDuplicate
		}
		return nil, err
	}

	uc.log.Info().
		Str("brand_id", brand.ID).
		Str("name", brand.Name).
		Msg("brand dibuat")
	resp := toBrandResponse(brand)
	return &resp, nil
}

// GetByID mengambil satu brand.
func (uc *UseCase) GetByID(id string) (*dto.BrandResponse, error) {
	brand, err := uc.brandRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	resp := toBrandResponse(brand)
	return &resp, nil
}

// GetActive mengambil brand yang sedang aktif.
func (uc *UseCase) GetActive() (*dto.BrandResponse, error) {
	brand, err := uc.brandRepo.GetActive()
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrBrandNotFound
	}
	resp := toBrandResponse(brand)
	return &resp, nil
}

// List mengambil semua brand.
func (uc *UseCase) List(page dto.PageRequest) ([]dto.BrandResponse, error) {
	page.DefaultPage()
	list, err := uc.brandRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBrandResponse(b))
	}
	return out, nil
}

// SetActive menjadikan satu brand aktif (brand lain dinonaktifkan atomik).
func (uc *UseCase) SetActive(ctx context.Context, id string) (*dto.BrandResponse, error) {
	brand, err := uc.brandRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.brandRepo.SetActive(id); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("brand_id", id).
		Msg("brand aktif diganti")
	return uc.GetByID(id)
}

func toBrandResponse(b *entity.BrandProfile) dto.BrandResponse {
	return dto.BrandResponse{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}
