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

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementasi PostgreSQL (bisa pool atau tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository membangun adaptor.
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create menyimpan kwitansi. Nomor unik per brand dijaga constraint database;
// tabrakan nomor (tidak seharusnya terjadi dengan counter atomik) jadi
// ErrDuplicate supaya transaksi pembayaran rollback utuh.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	query := `
		INSERT INTO receipts (id, brand_profile_id, payment_id, receipt_number, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.BrandID, receipt.PaymentID, receipt.ReceiptNumber, receipt.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create receipt: %w", err)
	}
	return nil
}

// GetByID mengambil satu kwitansi dalam scope brand.
func (r *ReceiptRepo) GetByID(brandID, id string) (*entity.Receipt, error) {
	query := `
		SELECT id, brand_profile_id, payment_id, receipt_number, created_at
		FROM receipts WHERE brand_profile_id = $1 AND id = $2`
	return r.getOne(query, brandID, id)
}

// GetByPaymentID mengambil kwitansi milik satu payment.
func (r *ReceiptRepo) GetByPaymentID(brandID, paymentID string) (*entity.Receipt, error) {
	query := `
		SELECT id, brand_profile_id, payment_id, receipt_number, created_at
		FROM receipts WHERE brand_profile_id = $1 AND payment_id = $2`
	return r.getOne(query, brandID, paymentID)
}

// List mengambil kwitansi brand, terbaru dulu.
func (r *ReceiptRepo) List(brandID string, limit, offset int) ([]*entity.Receipt, error) {
	query := `
		SELECT id, brand_profile_id, payment_id, receipt_number, created_at
		FROM receipts WHERE brand_profile_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, brandID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rc entity.Receipt
		if err := rows.Scan(&rc.ID, &rc.BrandID, &rc.PaymentID, &rc.ReceiptNumber, &rc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, &rc)
	}
	return list, rows.Err()
}

func (r *ReceiptRepo) getOne(query string, args ...any) (*entity.Receipt, error) {
	var rc entity.Receipt
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&rc.ID, &rc.BrandID, &rc.PaymentID, &rc.ReceiptNumber, &rc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return &rc, nil
}
