package domain

import "errors"

// Error domain (tanpa dependency eksternal).
var (
	ErrNotFound           = errors.New("data tidak ditemukan")
	ErrUserNotFound       = errors.New("user tidak ditemukan")
	ErrEmailAlreadyExists = errors.New("email sudah terdaftar")
	ErrInvalidInput       = errors.New("input tidak valid")
	ErrDuplicate          = errors.New("data duplikat")
	ErrUnauthorized       = errors.New("tidak terautentikasi")
	ErrForbidden          = errors.New("akses ditolak")
	ErrConflict           = errors.New("konflik dengan status saat ini")
	ErrBrandNotFound      = errors.New("brand aktif tidak ditemukan")
	ErrInvalidAmount      = errors.New("jumlah pembayaran harus lebih dari 0")
)
