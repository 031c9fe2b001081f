// Package ledger berisi aturan murni pembukuan pembayaran: fungsi status
// dihitung dari paidAmount vs totalAmount saja, tanpa akses database,
// sehingga Status Recalculator idempoten by construction.
package ledger

import "github.com/shopspring/decimal"

// Status pembayaran dokumen referensi.
const (
	StatusUnpaid  = "UNPAID"
	StatusPartial = "PARTIAL"
	StatusPaid    = "PAID"
)

// paidTolerance toleransi pembulatan untuk status PAID (0.0001).
var paidTolerance = decimal.NewFromFloat(0.0001)

// ComputeStatus menentukan status pembayaran dari total terbayar vs nilai
// dokumen. paid <= 0 berarti UNPAID; paid + toleransi >= total berarti PAID
// (termasuk overpaid); sisanya PARTIAL.
func ComputeStatus(paid, total decimal.Decimal) string {
	if paid.LessThanOrEqual(decimal.Zero) {
		return StatusUnpaid
	}
	if paid.Add(paidTolerance).GreaterThanOrEqual(total) {
		return StatusPaid
	}
	return StatusPartial
}

// SumPolarity arah pembayaran yang dijumlahkan untuk tiap jenis dokumen:
// SALES_ORDER dan INVOICE adalah piutang (IN), PURCHASE adalah hutang (OUT).
func SumPolarity(refType string) string {
	if refType == "PURCHASE" {
		return "OUT"
	}
	return "IN"
}
