package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementasi PostgreSQL (bisa pool atau tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository membangun adaptor.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, brand_profile_id, number, supplier_name, total_amount, paid_amount, payment_status, notes, received_at, stock_applied_at, stock_reversed_at, created_by_id, created_at, updated_at`

// Create menyimpan header pembelian + semua itemnya.
func (r *PurchaseRepo) Create(purchase *entity.PurchaseDirect) error {
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	createdBy := (*string)(nil)
	if purchase.CreatedByID != "" {
		createdBy = &purchase.CreatedByID
	}
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.BrandID, purchase.Number, purchase.SupplierName,
		purchase.TotalAmount, purchase.PaidAmount, purchase.PaymentStatus, purchase.Notes,
		purchase.ReceivedAt, purchase.StockAppliedAt, purchase.StockReversedAt,
		createdBy, purchase.CreatedAt, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create purchase: %w", err)
	}

	itemQuery := `
		INSERT INTO purchase_items (id, purchase_id, product_id, description, quantity, unit_cost)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, item := range purchase.Items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		productID := (*string)(nil)
		if item.ProductID != "" {
			productID = &item.ProductID
		}
		if _, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, purchase.ID, productID, item.Description, item.Quantity, item.UnitCost,
		); err != nil {
			return fmt.Errorf("create purchase item: %w", err)
		}
	}
	return nil
}

// GetByID mengambil pembelian + itemnya dalam scope brand.
func (r *PurchaseRepo) GetByID(brandID, id string) (*entity.PurchaseDirect, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE brand_profile_id = $1 AND id = $2`
	return r.getOne(query, brandID, id)
}

// GetForUpdate seperti GetByID tapi mengunci baris pembelian.
func (r *PurchaseRepo) GetForUpdate(brandID, id string) (*entity.PurchaseDirect, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE brand_profile_id = $1 AND id = $2 FOR UPDATE`
	return r.getOne(query, brandID, id)
}

// List mengambil pembelian brand, terbaru dulu. Items tidak dimuat di listing.
func (r *PurchaseRepo) List(brandID string, limit, offset int) ([]*entity.PurchaseDirect, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE brand_profile_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, brandID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseDirect
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SetReceivedAt stempel waktu barang diterima.
func (r *PurchaseRepo) SetReceivedAt(brandID, id string, at time.Time) error {
	query := `UPDATE purchases SET received_at = $3, updated_at = NOW() WHERE brand_profile_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, brandID, id, at)
	if err != nil {
		return fmt.Errorf("set received at: %w", err)
	}
	return nil
}

// UpdatePaymentCache menyimpan hasil rekalkulasi paid_amount + payment_status.
func (r *PurchaseRepo) UpdatePaymentCache(brandID, id string, paid decimal.Decimal, status string) error {
	query := `UPDATE purchases SET paid_amount = $3, payment_status = $4, updated_at = NOW() WHERE brand_profile_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, brandID, id, paid, status)
	if err != nil {
		return fmt.Errorf("update purchase payment cache: %w", err)
	}
	return nil
}

// SetStockAppliedAt stempel waktu stok pembelian diterapkan.
func (r *PurchaseRepo) SetStockAppliedAt(brandID, id string, at time.Time) error {
	query := `UPDATE purchases SET stock_applied_at = $3, updated_at = NOW() WHERE brand_profile_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, brandID, id, at)
	if err != nil {
		return fmt.Errorf("set stock applied at: %w", err)
	}
	return nil
}

// SetStockReversedAt stempel waktu reversal stok pembelian.
func (r *PurchaseRepo) SetStockReversedAt(brandID, id string, at time.Time) error {
	query := `UPDATE purchases SET stock_reversed_at = $3, updated_at = NOW() WHERE brand_profile_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, brandID, id, at)
	if err != nil {
		return fmt.Errorf("set stock reversed at: %w", err)
	}
	return nil
}

// Delete menghapus pembelian + itemnya. Log mutasi stok tidak ikut terhapus.
func (r *PurchaseRepo) Delete(brandID, id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM purchase_items WHERE purchase_id = $1`, id); err != nil {
		return fmt.Errorf("delete purchase items: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM purchases WHERE brand_profile_id = $1 AND id = $2`, brandID, id); err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) getOne(query string, args ...any) (*entity.PurchaseDirect, error) {
	p, err := scanPurchase(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	if err := r.loadItems(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PurchaseRepo) loadItems(p *entity.PurchaseDirect) error {
	query := `
		SELECT id, purchase_id, product_id, description, quantity, unit_cost
		FROM purchase_items WHERE purchase_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, p.ID)
	if err != nil {
		return fmt.Errorf("load purchase items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.PurchaseItem
		var productID, description *string
		if err := rows.Scan(&item.ID, &item.PurchaseID, &productID, &description, &item.Quantity, &item.UnitCost); err != nil {
			return fmt.Errorf("scan purchase item: %w", err)
		}
		if productID != nil {
			item.ProductID = *productID
		}
		if description != nil {
			item.Description = *description
		}
		p.Items = append(p.Items, &item)
	}
	return rows.Err()
}

func scanPurchase(row pgx.Row) (*entity.PurchaseDirect, error) {
	var p entity.PurchaseDirect
	var notes, createdBy *string
	if err := row.Scan(
		&p.ID, &p.BrandID, &p.Number, &p.SupplierName,
		&p.TotalAmount, &p.PaidAmount, &p.PaymentStatus, &notes,
		&p.ReceivedAt, &p.StockAppliedAt, &p.StockReversedAt,
		&createdBy, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if notes != nil {
		p.Notes = *notes
	}
	if createdBy != nil {
		p.CreatedByID = *createdBy
	}
	return &p, nil
}
