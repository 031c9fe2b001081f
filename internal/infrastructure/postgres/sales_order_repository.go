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

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implementasi PostgreSQL (bisa pool atau tx).
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository membangun adaptor.
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

const salesOrderColumns = `id, brand_profile_id, number, customer_name, status, total_amount, paid_amount, payment_status, notes, stock_applied_at, stock_reversed_at, created_by_id, created_at, updated_at`

// Create menyimpan header order + semua itemnya.
func (r *SalesOrderRepo) Create(order *entity.SalesOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales_orders (` + salesOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	createdBy := (*string)(nil)
	if order.CreatedByID != "" {
		createdBy = &order.CreatedByID
	}
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.BrandID, order.Number, order.CustomerName, string(order.Status),
		order.TotalAmount, order.PaidAmount, order.PaymentStatus, order.Notes,
		order.StockAppliedAt, order.StockReversedAt, createdBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create sales order: %w", err)
	}

	itemQuery := `
		INSERT INTO sales_order_items (id, order_id, product_id, description, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, item := range order.Items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		productID := (*string)(nil)
		if item.ProductID != "" {
			productID = &item.ProductID
		}
		if _, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, order.ID, productID, item.Description, item.Quantity, item.UnitPrice,
		); err != nil {
			return fmt.Errorf("create sales order item: %w", err)
		}
	}
	return nil
}

// GetByID mengambil order + itemnya dalam scope brand.
func (r *SalesOrderRepo) GetByID(brandID, id string) (*entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE brand_profile_id = $1 AND id = $2`
	return r.getOne(query, brandID, id)
}

// GetForUpdate seperti GetByID tapi mengunci baris order (SELECT FOR UPDATE).
// Transisi status paralel untuk order yang sama jadi berurutan.
func (r *SalesOrderRepo) GetForUpdate(brandID, id string) (*entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE brand_profile_id = $1 AND id = $2 FOR UPDATE`
	return r.getOne(query, brandID, id)
}

// List mengambil order brand, terbaru dulu; status kosong = semua.
// Items tidak dimuat di listing.
func (r *SalesOrderRepo) List(brandID string, status string, limit, offset int) ([]*entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE brand_profile_id = $1`
	args := []any{brandID}
	pos := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesOrder
	for rows.Next() {
		o, err := scanSalesOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// UpdateStatus mengganti status order.
func (r *SalesOrderRepo) UpdateStatus(brandID, id string, status entity.OrderStatus) error {
	query := `UPDATE sales_orders SET status = $3, updated_at = NOW() WHERE brand_profile_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, brandID, id, string(status))
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// UpdatePaymentCache menyimpan hasil rekalkulasi paid_amount + payment_status.
func (r *SalesOrderRepo) UpdatePaymentCache(brandID, id string, paid decimal.Decimal, status string) error {
	query := `UPDATE sales_orders SET paid_amount = $3, payment_status = $4, updated_at = NOW() WHERE brand_profile_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, brandID, id, paid, status)
	if err != nil {
		return fmt.Errorf("update order payment cache: %w", err)
	}
	return nil
}

// SetStockAppliedAt stempel waktu stok order diterapkan.
func (r *SalesOrderRepo) SetStockAppliedAt(brandID, id string, at time.Time) error {
	query := `UPDATE sales_orders SET stock_applied_at = $3, updated_at = NOW() WHERE brand_profile_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, brandID, id, at)
	if err != nil {
		return fmt.Errorf("set stock applied at: %w", err)
	}
	return nil
}

// SetStockReversedAt stempel waktu reversal stok order.
func (r *SalesOrderRepo) SetStockReversedAt(brandID, id string, at time.Time) error {
	query := `UPDATE sales_orders SET stock_reversed_at = $3, updated_at = NOW() WHERE brand_profile_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, brandID, id, at)
	if err != nil {
		return fmt.Errorf("set stock reversed at: %w", err)
	}
	return nil
}

func (r *SalesOrderRepo) getOne(query string, args ...any) (*entity.SalesOrder, error) {
	o, err := scanSalesOrder(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	if err := r.loadItems(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *SalesOrderRepo) loadItems(o *entity.SalesOrder) error {
	query := `
		SELECT id, order_id, product_id, description, quantity, unit_price
		FROM sales_order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, o.ID)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.SalesOrderItem
		var productID, description *string
		if err := rows.Scan(&item.ID, &item.OrderID, &productID, &description, &item.Quantity, &item.UnitPrice); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		if productID != nil {
			item.ProductID = *productID
		}
		if description != nil {
			item.Description = *description
		}
		o.Items = append(o.Items, &item)
	}
	return rows.Err()
}

func scanSalesOrder(row pgx.Row) (*entity.SalesOrder, error) {
	var o entity.SalesOrder
	var status string
	var notes, createdBy *string
	if err := row.Scan(
		&o.ID, &o.BrandID, &o.Number, &o.CustomerName, &status,
		&o.TotalAmount, &o.PaidAmount, &o.PaymentStatus, &notes,
		&o.StockAppliedAt, &o.StockReversedAt, &createdBy, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	// Data lama bisa menyimpan literal legacy; normalisasi saat baca.
	if parsed, ok := entity.ParseOrderStatus(status); ok {
		o.Status = parsed
	} else {
		o.Status = entity.OrderStatus(status)
	}
	if notes != nil {
		o.Notes = *notes
	}
	if createdBy != nil {
		o.CreatedByID = *createdBy
	}
	return &o, nil
}
