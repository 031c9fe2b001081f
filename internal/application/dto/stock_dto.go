package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMutationResponse satu baris log mutasi stok di response.
type StockMutationResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Qty       decimal.Decimal `json:"qty"`
	Type      string          `json:"type"`
	RefTable  string          `json:"ref_table"`
	RefID     string          `json:"ref_id"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
