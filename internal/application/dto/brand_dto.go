package dto

import "time"

// CreateBrandRequest body untuk POST /api/brands.
type CreateBrandRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// BrandResponse representasi brand profile di response.
type BrandResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
