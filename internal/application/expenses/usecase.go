// Package expenses mengelola pengeluaran operasional. Expense bukan dokumen
// ledger piutang/hutang: pembayarannya hanya di-link best-effort oleh Payment
// Recorder, tanpa rekalkulasi status.
package expenses

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/internal/domain"
	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
	"github.com/usahakita/backoffice-api/pkg/logger"
)

// UseCase operasi expense.
type UseCase struct {
	expenseRepo repository.ExpenseRepository
	log         *logger.Logger
}

// NewUseCase membangun use case expense.
func NewUseCase(expenseRepo repository.ExpenseRepository, log *logger.Logger) *UseCase {
	return &UseCase{expenseRepo: expenseRepo, log: log}
}

// Create mencatat pengeluaran baru. Insert tunggal, tidak perlu transaksi.
func (uc *UseCase) Create(ctx context.Context, brandID, userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if brandID == "" {
		return nil, domain.ErrBrandNotFound
	}
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	now := time.Now()
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		BrandID:     brandID,
		Description: in.Description,
		Amount:      in.Amount,
		CreatedByID: userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("expense_id", expense.ID).
		Str("brand_id", brandID).
		Msg("pengeluaran dicatat")
	resp := toExpenseResponse(expense)
	return &resp, nil
}

// GetByID mengambil satu expense.
func (uc *UseCase) GetByID(brandID, id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.expenseRepo.GetByID(brandID, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	resp := toExpenseResponse(expense)
	return &resp, nil
}

// List mengambil daftar expense brand.
func (uc *UseCase) List(brandID string, page dto.PageRequest) ([]dto.ExpenseResponse, error) {
	page.DefaultPage()
	list, err := uc.expenseRepo.List(brandID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

func toExpenseResponse(e *entity.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID,
		BrandID:     e.BrandID,
		Description: e.Description,
		Amount:      e.Amount,
		PaymentID:   e.PaymentID,
		CreatedAt:   e.CreatedAt,
	}
}
