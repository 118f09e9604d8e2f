// Package localfile persists the flow document as a JSON file on disk. It
// backs local development and doubles as the cache layer of the fallback
// repository.
package localfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/NicollasRezende/flow-management-app/domain/menu"
	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
)

// Repository stores the flow document at a fixed path.
type Repository struct {
	path string
}

// NewRepository creates a repository writing to the given path.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load reads and decodes the document. A missing file maps to NOT_FOUND.
func (r *Repository) Load(ctx context.Context) (menu.Tree, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return menu.Tree{}, apperrors.NewNotFoundError("flow document")
		}
		return menu.Tree{}, apperrors.NewDatabaseError("read", err)
	}

	var tree menu.Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return menu.Tree{}, apperrors.NewDatabaseError("decode", err)
	}
	return tree, nil
}

// Save writes the document atomically: encode to a temp file in the same
// directory, then rename over the target.
func (r *Repository) Save(ctx context.Context, tree menu.Tree) error {
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return apperrors.NewDatabaseError("encode", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".flow-*.json")
	if err != nil {
		return apperrors.NewDatabaseError("write", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.NewDatabaseError("write", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.NewDatabaseError("write", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return apperrors.NewDatabaseError("write", err)
	}
	return nil
}
