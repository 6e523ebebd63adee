// Package stub stores mirrored JSON documents in a local directory tree
// whose layout mirrors the API paths they came from.
package stub

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"regstub/internal/application"
	"regstub/internal/ports"
)

// manifestDir is the store-internal directory, excluded from listings
const manifestDir = ".regstub"

// Store implements ports.StubStore on a directory tree
type Store struct {
	root string
}

// Ensure Store implements StubStore
var _ ports.StubStore = (*Store)(nil)

// NewStore creates a store rooted at stubBase
func NewStore(stubBase string) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(stubBase, "~") {
		home, _ := os.UserHomeDir()
		stubBase = filepath.Join(home, stubBase[1:])
	}
	if abs, err := filepath.Abs(stubBase); err == nil {
		stubBase = abs
	}
	return &Store{root: stubBase}
}

// Root returns the absolute stub base path
func (s *Store) Root() string {
	return s.root
}

// WriteDocument serializes doc to {root}/{path}, creating directories as
// needed. An existing file is overwritten.
func (s *Store) WriteDocument(path string, doc any) (int64, error) {
	filePath, err := s.resolve(path)
	if err != nil {
		return 0, err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return int64(len(data)), nil
}

// ReadDocument returns the raw bytes of a mirrored document
func (s *Store) ReadDocument(path string) ([]byte, error) {
	filePath, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", path, application.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// List returns the relative paths of all mirrored documents, sorted
func (s *Store) List() ([]string, error) {
	var paths []string

	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == manifestDir {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to walk stub tree: %w", err)
	}

	sort.Strings(paths)
	return paths, nil
}

// resolve maps a relative document path to an absolute file path, rejecting
// anything that would escape the stub base.
func (s *Store) resolve(path string) (string, error) {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return "", &application.ValidationError{Field: "path", Message: "path is required"}
	}

	filePath := filepath.Join(s.root, filepath.FromSlash(path))
	if !strings.HasPrefix(filePath, s.root+string(filepath.Separator)) {
		return "", &application.ValidationError{
			Field:   "path",
			Message: fmt.Sprintf("path escapes the stub base: %q", path),
		}
	}
	return filePath, nil
}
