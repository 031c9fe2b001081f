package entity

import "time"

// Role user. Role hanya dipakai RBAC di layer HTTP; logika rekonsiliasi
// cuma menyimpan CreatedByID.
const (
	RoleAdmin  = "admin"
	RoleKasir  = "kasir"
	RoleGudang = "gudang"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
