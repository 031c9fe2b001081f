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

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementasi PostgreSQL (bisa pool atau tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository membangun adaptor.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, brand_profile_id, description, amount, payment_id, created_by_id, created_at, updated_at`

// Create menyimpan expense.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	createdBy := (*string)(nil)
	if expense.CreatedByID != "" {
		createdBy = &expense.CreatedByID
	}
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.BrandID, expense.Description, expense.Amount,
		expense.PaymentID, createdBy, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// GetByID mengambil satu expense dalam scope brand.
func (r *ExpenseRepo) GetByID(brandID, id string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE brand_profile_id = $1 AND id = $2`
	e, err := scanExpense(r.q.QueryRow(context.Background(), query, brandID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

// List mengambil expense brand, terbaru dulu.
func (r *ExpenseRepo) List(brandID string, limit, offset int) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE brand_profile_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, brandID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// LinkPayment mengisi payment_id expense. Expense yang tidak ada dianggap
// error supaya caller (Payment Recorder) bisa mencatat outcome link_failed.
func (r *ExpenseRepo) LinkPayment(brandID, expenseID, paymentID string) error {
	query := `UPDATE expenses SET payment_id = $3, updated_at = NOW() WHERE brand_profile_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, brandID, expenseID, paymentID)
	if err != nil {
		return fmt.Errorf("link expense payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var e entity.Expense
	var createdBy *string
	if err := row.Scan(
		&e.ID, &e.BrandID, &e.Description, &e.Amount, &e.PaymentID,
		&createdBy, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if createdBy != nil {
		e.CreatedByID = *createdBy
	}
	return &e, nil
}
