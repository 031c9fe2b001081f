package repository

import "github.com/usahakita/backoffice-api/internal/domain/entity"

// StockMutationRepository port persistence untuk log mutasi stok
// (append-only; tidak ada update/delete).
type StockMutationRepository interface {
	Create(mutation *entity.StockMutation) error
	ListByProduct(brandID, productID string, limit, offset int) ([]*entity.StockMutation, error)
	ListByRef(brandID, refTable, refID string) ([]*entity.StockMutation, error)
	// CountByRefAndType guard idempotensi: berapa mutasi bertipe mutationType
	// yang sudah ada untuk satu dokumen referensi.
	CountByRefAndType(brandID, refTable, refID, mutationType string) (int, error)
}
