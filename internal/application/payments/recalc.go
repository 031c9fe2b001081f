package payments

import (
	"fmt"

	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/ledger"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

// RecalcForRef menghitung ulang cache paidAmount + paymentStatus sebuah
// dokumen referensi dari jumlah seluruh payment yang menunjuk ke dokumen itu
// (re-agregasi penuh, bukan patch inkremental — idempoten: dipanggil berapa
// kali pun hasilnya sama selama ledger tidak berubah).
//
// Dokumen yang sudah tidak ada dianggap race jinak (dihapus bersamaan) dan
// jadi no-op, bukan error. Dipanggil di dalam transaksi pembayaran dengan
// repositori yang terikat transaksi itu.
func RecalcForRef(
	brandID, refType, refID string,
	paymentRepo repository.PaymentRepository,
	orderRepo repository.SalesOrderRepository,
	invoiceRepo repository.InvoiceRepository,
	purchaseRepo repository.PurchaseRepository,
) error {
	polarity := ledger.SumPolarity(refType)
	paid, err := paymentRepo.SumByRef(brandID, polarity, refType, refID)
	if err != nil {
		return fmt.Errorf("sum payments %s/%s: %w", refType, refID, err)
	}

	switch refType {
	case entity.RefTypeSalesOrder:
		order, err := orderRepo.GetByID(brandID, refID)
		if err != nil {
			return err
		}
		if order == nil {
			return nil // dokumen sudah dihapus, no-op
		}
		status := ledger.ComputeStatus(paid, order.TotalAmount)
		return orderRepo.UpdatePaymentCache(brandID, refID, paid, status)

	case entity.RefTypeInvoice:
		inv, err := invoiceRepo.GetByID(brandID, refID)
		if err != nil {
			return err
		}
		if inv == nil {
			return nil
		}
		status := ledger.ComputeStatus(paid, inv.TotalAmount)
		return invoiceRepo.UpdatePaymentCache(brandID, refID, paid, status)

	case entity.RefTypePurchase:
		purchase, err := purchaseRepo.GetByID(brandID, refID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return nil
		}
		status := ledger.ComputeStatus(paid, purchase.TotalAmount)
		return purchaseRepo.UpdatePaymentCache(brandID, refID, paid, status)
	}
	return fmt.Errorf("ref type %q tidak didukung rekalkulasi", refType)
}
