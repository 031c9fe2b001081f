package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest baris item saat membuat sales order. ProductID boleh
// kosong untuk item custom (tidak menyentuh stok).
type OrderItemRequest struct {
	ProductID   string          `json:"product_id,omitempty"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest body untuk POST /api/sales-orders.
type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name" validate:"required"`
	Notes        string             `json:"notes,omitempty"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1"`
}

// UpdateOrderStatusRequest body untuk PATCH /api/sales-orders/:id/status.
// Status menerima enum baru maupun literal legacy ("dikirim", "sent", ...).
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse baris item di response.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// OrderResponse representasi sales order di response.
type OrderResponse struct {
	ID              string              `json:"id"`
	BrandID         string              `json:"brand_profile_id"`
	Number          string              `json:"number"`
	CustomerName    string              `json:"customer_name"`
	Status          string              `json:"status"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	PaidAmount      decimal.Decimal     `json:"paid_amount"`
	PaymentStatus   string              `json:"payment_status"`
	Notes           string              `json:"notes,omitempty"`
	StockAppliedAt  *time.Time          `json:"stock_applied_at,omitempty"`
	StockReversedAt *time.Time          `json:"stock_reversed_at,omitempty"`
	Items           []OrderItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}
