package postgres

import (
	"context"
	"fmt"

	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo counter nomor dokumen di tabel doc_sequences. Satu baris per
// (brand, jenis dokumen, periode); UPSERT + RETURNING membuat increment
// atomik — dua transaksi paralel tidak pernah dapat nomor yang sama karena
// yang kedua menunggu row lock milik yang pertama.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository membangun adaptor.
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next menaikkan counter dan mengembalikan nilai barunya.
func (r *SequenceRepo) Next(brandID, docType, period string) (int64, error) {
	query := `
		INSERT INTO doc_sequences (brand_profile_id, doc_type, period, last_value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (brand_profile_id, doc_type, period)
		DO UPDATE SET last_value = doc_sequences.last_value + 1
		RETURNING last_value`
	var next int64
	err := r.q.QueryRow(context.Background(), query, brandID, docType, period).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next sequence %s/%s: %w", docType, period, err)
	}
	return next, nil
}
