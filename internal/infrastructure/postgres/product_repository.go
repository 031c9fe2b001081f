package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/domain"
	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementasi PostgreSQL (bisa pool atau tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository membangun adaptor.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, brand_profile_id, sku, name, qty, track_stock, price, created_at, updated_at`

// Create menyimpan produk. SKU unik per brand.
func (r *ProductRepo) Create(product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.BrandID, product.SKU, product.Name,
		product.Qty, product.TrackStock, product.Price, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID mengambil satu produk dalam scope brand.
func (r *ProductRepo) GetByID(brandID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE brand_profile_id = $1 AND id = $2`
	return r.getOne(query, brandID, id)
}

// GetForUpdate seperti GetByID tapi mengunci baris produk (SELECT FOR UPDATE).
// Wajib dipanggil sebelum AdjustQty supaya dua transaksi tidak balapan qty.
func (r *ProductRepo) GetForUpdate(brandID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE brand_profile_id = $1 AND id = $2 FOR UPDATE`
	return r.getOne(query, brandID, id)
}

// List mengambil produk brand, urut nama.
func (r *ProductRepo) List(brandID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE brand_profile_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, brandID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update menyimpan atribut produk. Qty sengaja tidak disentuh dari sini.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $3, track_stock = $4, price = $5, updated_at = $6
		WHERE brand_profile_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		product.BrandID, product.ID, product.Name, product.TrackStock, product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// AdjustQty menggeser qty dengan delta bertanda. Caller harus sudah memegang
// row lock (GetForUpdate) di transaksi yang sama.
func (r *ProductRepo) AdjustQty(brandID, id string, delta decimal.Decimal) error {
	query := `UPDATE products SET qty = qty + $3, updated_at = NOW() WHERE brand_profile_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, brandID, id, delta)
	if err != nil {
		return fmt.Errorf("adjust product qty: %w", err)
	}
	return nil
}

func (r *ProductRepo) getOne(query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(
		&p.ID, &p.BrandID, &p.SKU, &p.Name, &p.Qty, &p.TrackStock, &p.Price,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
