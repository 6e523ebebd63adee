package domain

import "time"

// Fetch outcome recorded in the manifest
const (
	FetchStatusOK     = "ok"
	FetchStatusFailed = "failed"
)

// FetchRecord is one row of the fetch manifest: the outcome of the most
// recent attempt to mirror a document path.
type FetchRecord struct {
	Path       string
	Regulation string
	Notice     string
	Status     string
	Detail     string // error text for failed fetches
	Bytes      int64
	FetchedAt  time.Time
}
