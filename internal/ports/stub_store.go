package ports

import "regstub/internal/domain"

// StubStore defines the interface for the local stub tree where mirrored
// documents are written
type StubStore interface {
	// WriteDocument serializes doc as JSON to {stub_base}/{path}, creating
	// intermediate directories as needed and overwriting any existing file.
	// Returns the number of bytes written.
	WriteDocument(path string, doc any) (int64, error)

	// ReadDocument returns the raw bytes of a mirrored document.
	ReadDocument(path string) ([]byte, error)

	// List returns the relative paths of all mirrored documents, sorted.
	List() ([]string, error)

	// BuildTree builds a navigable tree of the stub directory.
	BuildTree() (*domain.TreeNode, error)

	// Root returns the absolute path of the stub base directory.
	Root() string
}
