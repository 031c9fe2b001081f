package repository

import "github.com/usahakita/backoffice-api/internal/domain/entity"

// ExpenseRepository port persistence untuk Expense.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(brandID, id string) (*entity.Expense, error)
	List(brandID string, limit, offset int) ([]*entity.Expense, error)
	// LinkPayment mengisi payment_id pada expense. Dipanggil best-effort oleh
	// Payment Recorder; error dari sini tidak membatalkan transaksi pembayaran.
	LinkPayment(brandID, expenseID, paymentID string) error
}
