package ports

import "context"

// RegulationAPI defines the interface for reading documents from a
// regulations-core server
type RegulationAPI interface {
	// Notices queries regulation/{part} and returns the notice versions
	// that make up the regulation, in API order.
	Notices(ctx context.Context, part string) ([]string, error)

	// Document fetches the JSON document at the given path relative to
	// the API base and returns it decoded.
	Document(ctx context.Context, path string) (any, error)
}
