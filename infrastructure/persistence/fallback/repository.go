// Package fallback decorates a primary flow repository with a local cache.
// Saves land in the cache first so an editor keeps its work even when the
// primary store is unreachable; loads fall back to the cache when the
// primary fails.
package fallback

import (
	"context"

	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/ports"
	"github.com/NicollasRezende/flow-management-app/domain/menu"
	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
)

// Repository chains a primary store and a cache store.
type Repository struct {
	primary ports.FlowRepository
	cache   ports.FlowRepository
	logger  *zap.Logger
}

// NewRepository creates the decorator.
func NewRepository(primary, cache ports.FlowRepository, logger *zap.Logger) *Repository {
	return &Repository{primary: primary, cache: cache, logger: logger}
}

// Load reads from the primary store, falling back to the cache on any
// failure except a clean NOT_FOUND.
func (r *Repository) Load(ctx context.Context) (menu.Tree, error) {
	tree, err := r.primary.Load(ctx)
	if err == nil {
		return tree, nil
	}
	if apperrors.IsNotFound(err) {
		return menu.Tree{}, err
	}

	r.logger.Warn("primary store unavailable, loading from cache", zap.Error(err))
	cached, cacheErr := r.cache.Load(ctx)
	if cacheErr != nil {
		// The cache could not help either; the primary failure is the one
		// worth reporting.
		return menu.Tree{}, err
	}
	return cached, nil
}

// Save writes to the cache first, then the primary. A cache failure is
// logged and ignored; a primary failure is returned so the caller knows the
// document is not durably saved.
func (r *Repository) Save(ctx context.Context, tree menu.Tree) error {
	if err := r.cache.Save(ctx, tree); err != nil {
		r.logger.Warn("failed to write flow cache", zap.Error(err))
	}
	return r.primary.Save(ctx, tree)
}
