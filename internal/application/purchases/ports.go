package purchases

import (
	"context"

	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

// TxRunner menjalankan fungsi di dalam satu transaksi database dengan
// repositori yang terikat ke transaksi itu. Dipakai untuk pembuatan,
// penerimaan, dan penghapusan pembelian (semuanya bisa menyentuh stok).
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		mutationRepo repository.StockMutationRepository,
		productRepo repository.ProductRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}
