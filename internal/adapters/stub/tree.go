package stub

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"regstub/internal/domain"
)

// BuildTree builds a navigable tree of the stub directory. Directories
// become expandable nodes; files become document leaves classified by their
// relative path.
func (s *Store) BuildTree() (*domain.TreeNode, error) {
	root := &domain.TreeNode{
		ID:         "root",
		Name:       s.root,
		Path:       s.root,
		IsDir:      true,
		IsExpanded: true,
	}

	if err := s.loadChildren(root, ""); err != nil {
		return nil, err
	}
	return root, nil
}

func (s *Store) loadChildren(node *domain.TreeNode, rel string) error {
	entries, err := os.ReadDir(filepath.Join(s.root, filepath.FromSlash(rel)))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read stub tree: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() && entry.Name() == manifestDir {
			continue
		}

		childRel := path.Join(rel, entry.Name())
		child := &domain.TreeNode{
			ID:     childRel,
			Name:   entry.Name(),
			Path:   filepath.Join(s.root, filepath.FromSlash(childRel)),
			IsDir:  entry.IsDir(),
			Parent: node,
		}
		if !entry.IsDir() {
			child.Kind = domain.ParseDocumentPath(childRel).Kind
		}
		node.Children = append(node.Children, child)

		if entry.IsDir() {
			if err := s.loadChildren(child, childRel); err != nil {
				return err
			}
		}
	}
	return nil
}
