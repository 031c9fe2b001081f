package orders

import (
	"context"

	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

// TxRunner menjalankan fungsi di dalam satu transaksi database dengan
// repositori yang terikat ke transaksi itu. Dipakai untuk pembuatan order
// (header + item + nomor) dan transisi status yang menggerakkan stok.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.SalesOrderRepository,
		mutationRepo repository.StockMutationRepository,
		productRepo repository.ProductRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}
