package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/usahakita/backoffice-api/internal/domain"
	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementasi PostgreSQL (bisa pool atau tx).
type BrandRepo struct {
	q Querier
}

// NewBrandRepository membangun adaptor.
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

const brandColumns = `id, name, address, phone, is_active, created_at, updated_at`

// Create menyimpan brand. Nama unik dijaga constraint database.
func (r *BrandRepo) Create(brand *entity.BrandProfile) error {
	if brand.ID == "" {
		brand.ID = uuid.New().String()
	}
	query := `
		INSERT INTO brand_profiles (` + brandColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		brand.ID, brand.Name, brand.Address, brand.Phone, brand.IsActive,
		brand.CreatedAt, brand.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create brand: %w", err)
	}
	return nil
}

// GetByID mengambil satu brand.
func (r *BrandRepo) GetByID(id string) (*entity.BrandProfile, error) {
	query := `SELECT ` + brandColumns + ` FROM brand_profiles WHERE id = $1`
	return r.getOne(query, id)
}

// GetActive mengambil brand yang sedang aktif, nil kalau tidak ada.
func (r *BrandRepo) GetActive() (*entity.BrandProfile, error) {
	query := `SELECT ` + brandColumns + ` FROM brand_profiles WHERE is_active LIMIT 1`
	return r.getOne(query)
}

// List mengambil semua brand, urut nama.
func (r *BrandRepo) List(limit, offset int) ([]*entity.BrandProfile, error) {
	query := `SELECT ` + brandColumns + ` FROM brand_profiles ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.BrandProfile
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update menyimpan atribut brand.
func (r *BrandRepo) Update(brand *entity.BrandProfile) error {
	query := `
		UPDATE brand_profiles SET name = $2, address = $3, phone = $4, updated_at = NOW()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, brand.ID, brand.Name, brand.Address, brand.Phone)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update brand: %w", err)
	}
	return nil
}

// SetActive menjadikan satu brand aktif dan menonaktifkan sisanya dalam satu
// statement, jadi tidak pernah ada dua brand aktif.
func (r *BrandRepo) SetActive(id string) error {
	query := `UPDATE brand_profiles SET is_active = (id = $1), updated_at = NOW()`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("set active brand: %w", err)
	}
	return nil
}

func (r *BrandRepo) getOne(query string, args ...any) (*entity.BrandProfile, error) {
	b, err := scanBrand(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return b, nil
}

func scanBrand(row pgx.Row) (*entity.BrandProfile, error) {
	var b entity.BrandProfile
	var address, phone *string
	if err := row.Scan(&b.ID, &b.Name, &address, &phone, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if address != nil {
		b.Address = *address
	}
	if phone != nil {
		b.Phone = *phone
	}
	return &b, nil
}
