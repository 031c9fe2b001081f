package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

var _ repository.StockMutationRepository = (*StockMutationRepo)(nil)

// StockMutationRepo implementasi PostgreSQL untuk log mutasi stok
// (append-only; tidak ada UPDATE/DELETE).
type StockMutationRepo struct {
	q Querier
}

// NewStockMutationRepository membangun adaptor.
func NewStockMutationRepository(q Querier) *StockMutationRepo {
	return &StockMutationRepo{q: q}
}

const mutationColumns = `id, brand_profile_id, product_id, qty, type, ref_table, ref_id, note, created_by_id, created_at`

// Create menyimpan satu baris mutasi.
func (r *StockMutationRepo) Create(mutation *entity.StockMutation) error {
	if mutation.ID == "" {
		mutation.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_mutations (` + mutationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	createdBy := (*string)(nil)
	if mutation.CreatedByID != "" {
		createdBy = &mutation.CreatedByID
	}
	_, err := r.q.Exec(context.Background(), query,
		mutation.ID, mutation.BrandID, mutation.ProductID, mutation.Qty, mutation.Type,
		mutation.RefTable, mutation.RefID, mutation.Note, createdBy, mutation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock mutation: %w", err)
	}
	return nil
}

// ListByProduct riwayat mutasi satu produk, terbaru dulu.
func (r *StockMutationRepo) ListByProduct(brandID, productID string, limit, offset int) ([]*entity.StockMutation, error) {
	query := `SELECT ` + mutationColumns + ` FROM stock_mutations
		WHERE brand_profile_id = $1 AND product_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	return r.list(query, brandID, productID, limit, offset)
}

// ListByRef semua mutasi yang dihasilkan satu dokumen referensi.
func (r *StockMutationRepo) ListByRef(brandID, refTable, refID string) ([]*entity.StockMutation, error) {
	query := `SELECT ` + mutationColumns + ` FROM stock_mutations
		WHERE brand_profile_id = $1 AND ref_table = $2 AND ref_id = $3
		ORDER BY created_at`
	return r.list(query, brandID, refTable, refID)
}

// CountByRefAndType guard idempotensi engine: berapa mutasi bertipe
// mutationType yang sudah ada untuk satu dokumen.
func (r *StockMutationRepo) CountByRefAndType(brandID, refTable, refID, mutationType string) (int, error) {
	query := `
		SELECT COUNT(*) FROM stock_mutations
		WHERE brand_profile_id = $1 AND ref_table = $2 AND ref_id = $3 AND type = $4`
	var count int
	err := r.q.QueryRow(context.Background(), query, brandID, refTable, refID, mutationType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count mutations: %w", err)
	}
	return count, nil
}

func (r *StockMutationRepo) list(query string, args ...any) ([]*entity.StockMutation, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock mutations: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMutation
	for rows.Next() {
		m, err := scanMutation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock mutation: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMutation(row pgx.Row) (*entity.StockMutation, error) {
	var m entity.StockMutation
	var note, createdBy *string
	if err := row.Scan(
		&m.ID, &m.BrandID, &m.ProductID, &m.Qty, &m.Type,
		&m.RefTable, &m.RefID, &note, &createdBy, &m.CreatedAt,
	); err != nil {
		return nil, err
	}
	if note != nil {
		m.Note = *note
	}
	if createdBy != nil {
		m.CreatedByID = *createdBy
	}
	return &m, nil
}
