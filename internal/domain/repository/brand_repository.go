package repository

import "github.com/usahakita/backoffice-api/internal/domain/entity"

// BrandRepository port persistence untuk BrandProfile (tenant).
type BrandRepository interface {
	Create(brand *entity.BrandProfile) error
	GetByID(id string) (*entity.BrandProfile, error)
	// GetActive mengembalikan brand yang sedang aktif, atau nil kalau tidak ada.
	GetActive() (*entity.BrandProfile, error)
	List(limit, offset int) ([]*entity.BrandProfile, error)
	Update(brand *entity.BrandProfile) error
	// SetActive menjadikan satu brand aktif dan menonaktifkan sisanya (atomik).
	SetActive(id string) error
}
