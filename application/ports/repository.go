// Package ports declares the interfaces the application layer depends on.
// Infrastructure supplies the implementations.
package ports

import (
	"context"

	"github.com/NicollasRezende/flow-management-app/domain/menu"
)

// FlowRepository persists the canonical menu tree. Load returns a NOT_FOUND
// error when no document has ever been saved; callers fall back to the
// default tree in that case.
type FlowRepository interface {
	Load(ctx context.Context) (menu.Tree, error)
	Save(ctx context.Context, tree menu.Tree) error
}
