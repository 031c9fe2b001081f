package repository

// SequenceRepository counter nomor dokumen per (brand, jenis dokumen, periode
// "YYYYMM"). Next menaikkan counter secara atomik (UPSERT ... RETURNING) dan
// mengembalikan nilai barunya, jadi dua request paralel tidak pernah dapat
// nomor yang sama. Dipanggil di dalam transaksi dokumen supaya nomor yang
// hangus ikut rollback.
type SequenceRepository interface {
	Next(brandID, docType, period string) (int64, error)
}
