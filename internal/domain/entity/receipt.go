package entity

import "time"

// Receipt (kwitansi) dibuat 1:1 dengan setiap Payment, dalam transaksi
// yang sama. Nomornya unik per brand, format RC-YYYYMM-NNNN.
type Receipt struct {
	ID            string
	BrandID       string
	PaymentID     string
	ReceiptNumber string
	CreatedAt     time.Time
}
