package ports

import "regstub/internal/domain"

// FetchIndex records the outcome of fetch attempts. It is bookkeeping only:
// the fetch loop never consults it to skip or resume work.
type FetchIndex interface {
	// Lifecycle
	Open(stubBase string) error
	Close() error

	// Record upserts the outcome of a fetch attempt, keyed by path.
	Record(rec domain.FetchRecord) error

	// Recent returns up to limit records, newest first.
	Recent(limit int) ([]domain.FetchRecord, error)

	// ByRegulation returns up to limit records for one regulation, newest first.
	ByRegulation(part string, limit int) ([]domain.FetchRecord, error)
}
