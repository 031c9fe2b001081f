package entity

import "time"

// BrandProfile adalah tenant: semua data ledger di-scope brand_id.
// Hanya satu brand yang aktif pada satu waktu (dipakai resolver kalau
// request tidak membawa override brand).
type BrandProfile struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
