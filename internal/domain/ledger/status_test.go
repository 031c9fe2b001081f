package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/usahakita/backoffice-api/internal/domain/ledger"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeStatus(t *testing.T) {
	cases := []struct {
		name  string
		paid  string
		total string
		want  string
	}{
		{"belum ada pembayaran", "0", "100000", ledger.StatusUnpaid},
		{"paid negatif (refund lebih besar)", "-5000", "100000", ledger.StatusUnpaid},
		{"sebagian", "40000", "100000", ledger.StatusPartial},
		{"hampir lunas di luar toleransi", "99999.999", "100000", ledger.StatusPartial},
		{"lunas persis", "100000", "100000", ledger.StatusPaid},
		{"lunas dalam toleransi pembulatan", "99999.9999", "100000", ledger.StatusPaid},
		{"overpaid", "150000", "100000", ledger.StatusPaid},
		{"total nol dengan pembayaran", "1", "0", ledger.StatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ledger.ComputeStatus(d(tc.paid), d(tc.total))
			assert.Equal(t, tc.want, got)
		})
	}
}

// Rekalkulasi harus idempoten: input sama, hasil sama, berapa kali pun.
func TestComputeStatus_Idempoten(t *testing.T) {
	paid, total := d("40000"), d("100000")
	first := ledger.ComputeStatus(paid, total)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ledger.ComputeStatus(paid, total))
	}
}

func TestSumPolarity(t *testing.T) {
	assert.Equal(t, "IN", ledger.SumPolarity("SALES_ORDER"))
	assert.Equal(t, "IN", ledger.SumPolarity("INVOICE"))
	assert.Equal(t, "OUT", ledger.SumPolarity("PURCHASE"))
	assert.Equal(t, "IN", ledger.SumPolarity("EXPENSE"))
}
