// Package memory provides an in-memory flow repository, used by tests and
// the memory storage driver.
package memory

import (
	"context"
	"sync"

	"github.com/NicollasRezende/flow-management-app/domain/menu"
	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
)

// Repository stores the flow document in process memory.
type Repository struct {
	mu   sync.RWMutex
	tree *menu.Tree
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Load returns the stored tree, or NOT_FOUND when nothing has been saved.
func (r *Repository) Load(ctx context.Context) (menu.Tree, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.tree == nil {
		return menu.Tree{}, apperrors.NewNotFoundError("flow document")
	}
	return r.tree.Clone(), nil
}

// Save stores a copy of the tree.
func (r *Repository) Save(ctx context.Context, tree menu.Tree) error {
	clone := tree.Clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tree = &clone
	return nil
}
