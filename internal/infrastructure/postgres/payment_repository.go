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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementasi PostgreSQL (bisa pool atau tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository membangun adaptor. Terima pool atau tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create menyimpan satu baris payment. Ledger append-only: tidak ada Update/Delete.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	query := `
		INSERT INTO payments (id, brand_profile_id, type, method, amount, paid_at, ref_type, ref_id, notes, created_by_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	createdBy := (*string)(nil)
	if payment.CreatedByID != "" {
		createdBy = &payment.CreatedByID
	}
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.BrandID, payment.Type, payment.Method, payment.Amount,
		payment.PaidAt, payment.RefType, payment.RefID, payment.Notes, createdBy, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

// GetByID mengambil satu payment dalam scope brand.
func (r *PaymentRepo) GetByID(brandID, id string) (*entity.Payment, error) {
	query := `
		SELECT id, brand_profile_id, type, method, amount, paid_at, ref_type, ref_id, notes, created_by_id, created_at
		FROM payments WHERE brand_profile_id = $1 AND id = $2`
	p, err := scanPayment(r.q.QueryRow(context.Background(), query, brandID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// List mengambil payment brand, opsional difilter dokumen referensi.
func (r *PaymentRepo) List(brandID, refType, refID string, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, brand_profile_id, type, method, amount, paid_at, ref_type, ref_id, notes, created_by_id, created_at
		FROM payments WHERE brand_profile_id = $1`
	args := []any{brandID}
	pos := 2
	if refType != "" {
		query += fmt.Sprintf(" AND ref_type = $%d", pos)
		args = append(args, refType)
		pos++
	}
	if refID != "" {
		query += fmt.Sprintf(" AND ref_id = $%d", pos)
		args = append(args, refID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY paid_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SumByRef menjumlahkan amount payment berarah paymentType untuk satu dokumen.
func (r *PaymentRepo) SumByRef(brandID, paymentType, refType, refID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE brand_profile_id = $1 AND type = $2 AND ref_type = $3 AND ref_id = $4`
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, brandID, paymentType, refType, refID).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum payments: %w", err)
	}
	return sum, nil
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	var notes, createdBy *string
	if err := row.Scan(
		&p.ID, &p.BrandID, &p.Type, &p.Method, &p.Amount, &p.PaidAt,
		&p.RefType, &p.RefID, &notes, &createdBy, &p.CreatedAt,
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
