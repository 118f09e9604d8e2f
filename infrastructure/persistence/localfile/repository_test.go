package localfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicollasRezende/flow-management-app/domain/menu"
	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
)

func TestRepository_LoadMissingFile(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "flow.json"))

	_, err := repo.Load(context.Background())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRepository_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := NewRepository(path).Load(context.Background())
	require.Error(t, err)
	assert.False(t, apperrors.IsNotFound(err))
}

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow.json")
	repo := NewRepository(path)

	saved := menu.DefaultTree()
	require.NoError(t, repo.Save(context.Background(), saved))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	// The temp file used for the atomic write must not linger.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRepository_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow.json")
	repo := NewRepository(path)

	require.NoError(t, repo.Save(context.Background(), menu.DefaultTree()))

	next := menu.Tree{Menus: map[string]menu.Menu{
		"initial": {Title: "Only", Options: menu.Options{MenuType: menu.MenuTypeButton}},
	}}
	require.NoError(t, repo.Save(context.Background(), next))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, loaded.Menus, 1)
}
