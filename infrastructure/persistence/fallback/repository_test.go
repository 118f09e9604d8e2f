package fallback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/domain/menu"
	"github.com/NicollasRezende/flow-management-app/infrastructure/persistence/memory"
	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
)

type brokenRepo struct{}

func (brokenRepo) Load(ctx context.Context) (menu.Tree, error) {
	return menu.Tree{}, apperrors.NewDatabaseError("read", assert.AnError)
}

func (brokenRepo) Save(ctx context.Context, tree menu.Tree) error {
	return apperrors.NewDatabaseError("write", assert.AnError)
}

func TestRepository_LoadPrefersPrimary(t *testing.T) {
	primary := memory.NewRepository()
	cache := memory.NewRepository()
	require.NoError(t, primary.Save(context.Background(), menu.DefaultTree()))

	repo := NewRepository(primary, cache, zap.NewNop())
	tree, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, tree.Menus, 3)
}

func TestRepository_LoadFallsBackToCache(t *testing.T) {
	cache := memory.NewRepository()
	require.NoError(t, cache.Save(context.Background(), menu.DefaultTree()))

	repo := NewRepository(brokenRepo{}, cache, zap.NewNop())
	tree, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, tree.HasMenu(menu.InitialMenuID))
}

func TestRepository_LoadNotFoundDoesNotFallBack(t *testing.T) {
	cache := memory.NewRepository()
	require.NoError(t, cache.Save(context.Background(), menu.DefaultTree()))

	// An empty primary means no document exists; serving stale cache here
	// would resurrect deleted flows.
	repo := NewRepository(memory.NewRepository(), cache, zap.NewNop())
	_, err := repo.Load(context.Background())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRepository_LoadReportsPrimaryErrorWhenCacheEmpty(t *testing.T) {
	repo := NewRepository(brokenRepo{}, memory.NewRepository(), zap.NewNop())

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.False(t, apperrors.IsNotFound(err))
}

func TestRepository_SaveWritesBothStores(t *testing.T) {
	primary := memory.NewRepository()
	cache := memory.NewRepository()
	repo := NewRepository(primary, cache, zap.NewNop())

	require.NoError(t, repo.Save(context.Background(), menu.DefaultTree()))

	_, err := primary.Load(context.Background())
	assert.NoError(t, err)
	_, err = cache.Load(context.Background())
	assert.NoError(t, err)
}

func TestRepository_SavePrimaryFailureReturned(t *testing.T) {
	cache := memory.NewRepository()
	repo := NewRepository(brokenRepo{}, cache, zap.NewNop())

	err := repo.Save(context.Background(), menu.DefaultTree())
	assert.Error(t, err)

	// The cache still holds the document for the next fallback load.
	_, err = cache.Load(context.Background())
	assert.NoError(t, err)
}
