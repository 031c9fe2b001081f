package billing

import (
	"context"

	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

// TxRunner menjalankan fungsi di dalam satu transaksi database. Dipakai untuk
// pembuatan invoice dengan penomoran atomik.
type TxRunner interface {
	RunInvoice(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}
