package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest baris item pembelian.
type PurchaseItemRequest struct {
	ProductID   string          `json:"product_id,omitempty"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseRequest body untuk POST /api/purchases.
type CreatePurchaseRequest struct {
	SupplierName string                `json:"supplier_name" validate:"required"`
	Notes        string                `json:"notes,omitempty"`
	Items        []PurchaseItemRequest `json:"items" validate:"required,min=1"`
}

// PurchaseItemResponse baris item pembelian di response.
type PurchaseItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// PurchaseResponse representasi pembelian langsung di response.
type PurchaseResponse struct {
	ID              string                 `json:"id"`
	BrandID         string                 `json:"brand_profile_id"`
	Number          string                 `json:"number"`
	SupplierName    string                 `json:"supplier_name"`
	TotalAmount     decimal.Decimal        `json:"total_amount"`
	PaidAmount      decimal.Decimal        `json:"paid_amount"`
	PaymentStatus   string                 `json:"payment_status"`
	Notes           string                 `json:"notes,omitempty"`
	ReceivedAt      *time.Time             `json:"received_at,omitempty"`
	StockAppliedAt  *time.Time             `json:"stock_applied_at,omitempty"`
	StockReversedAt *time.Time             `json:"stock_reversed_at,omitempty"`
	Items           []PurchaseItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}
