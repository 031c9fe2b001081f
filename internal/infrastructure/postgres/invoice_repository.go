package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementasi PostgreSQL (bisa pool atau tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository membangun adaptor.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, brand_profile_id, number, customer_name, total_amount, paid_amount, payment_status, notes, issued_at, due_at, created_by_id, created_at, updated_at`

// Create menyimpan invoice.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	createdBy := (*string)(nil)
	if invoice.CreatedByID != "" {
		createdBy = &invoice.CreatedByID
	}
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.BrandID, invoice.Number, invoice.CustomerName,
		invoice.TotalAmount, invoice.PaidAmount, invoice.PaymentStatus, invoice.Notes,
		invoice.IssuedAt, invoice.DueAt, createdBy, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}
	return nil
}

// GetByID mengambil satu invoice dalam scope brand.
func (r *InvoiceRepo) GetByID(brandID, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE brand_profile_id = $1 AND id = $2`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, brandID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// List mengambil invoice brand, opsional difilter payment status.
func (r *InvoiceRepo) List(brandID string, status string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE brand_profile_id = $1`
	args := []any{brandID}
	pos := 2
	if status != "" {
		query += fmt.Sprintf(" AND payment_status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY issued_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// UpdatePaymentCache menyimpan hasil rekalkulasi paid_amount + payment_status.
func (r *InvoiceRepo) UpdatePaymentCache(brandID, id string, paid decimal.Decimal, status string) error {
	query := `UPDATE invoices SET paid_amount = $3, payment_status = $4, updated_at = NOW() WHERE brand_profile_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, brandID, id, paid, status)
	if err != nil {
		return fmt.Errorf("update invoice payment cache: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var notes, createdBy *string
	if err := row.Scan(
		&inv.ID, &inv.BrandID, &inv.Number, &inv.CustomerName,
		&inv.TotalAmount, &inv.PaidAmount, &inv.PaymentStatus, &notes,
		&inv.IssuedAt, &inv.DueAt, &createdBy, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if notes != nil {
		inv.Notes = *notes
	}
	if createdBy != nil {
		inv.CreatedByID = *createdBy
	}
	return &inv, nil
}
