package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/aide/internal/platform"
	"github.com/aretw0/aide/pkg/core"
	"github.com/aretw0/aide/pkg/typed"
)

func TestOpen_FourCollectionsInOneDirectory(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	fixed := time.Date(2024, 3, 5, 9, 8, 7, 0, time.UTC)

	ws, err := platform.Open(ctx, dir, platform.WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)
	assert.Equal(t, dir, ws.Dir)

	note, err := ws.Notes.Add(ctx, "Идея", "text")
	require.NoError(t, err)
	assert.Equal(t, "05-03-2024 09:08:07", note.Timestamp)

	_, err = ws.Tasks.Add(ctx, "Buy milk", "", "", "")
	require.NoError(t, err)
	_, err = ws.Contacts.Add(ctx, "Ann", "+100", "")
	require.NoError(t, err)
	_, err = ws.Finance.Add(ctx, decimal.NewFromInt(-5), "food", "01-01-2024", "")
	require.NoError(t, err)

	for _, name := range []string{"notes", "tasks", "contacts", "finance"} {
		assert.FileExists(t, filepath.Join(dir, name+".json"))
	}

	// A second workspace sees the persisted records.
	again, err := platform.Open(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Notes.Len())
	assert.Equal(t, 1, again.Tasks.Len())
	assert.Equal(t, 1, again.Contacts.Len())
	assert.Equal(t, 1, again.Finance.Len())
}

func TestOpen_ReadOnly(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	ws, err := platform.Open(ctx, dir, platform.WithReadOnly(true))
	require.NoError(t, err)

	_, err = ws.Tasks.Add(ctx, "x", "", "", "")
	assert.ErrorIs(t, err, core.ErrReadOnly)

	_, statErr := os.Stat(filepath.Join(dir, "tasks.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestOpen_IDStrategy(t *testing.T) {
	ctx := context.Background()
	ws, err := platform.Open(ctx, t.TempDir(), platform.WithIDStrategy(typed.IDAfterMax))
	require.NoError(t, err)

	for _, name := range []string{"a", "b", "c"} {
		_, err := ws.Contacts.Add(ctx, name, "1", "")
		require.NoError(t, err)
	}
	_, err = ws.Contacts.Delete(ctx, 1)
	require.NoError(t, err)

	c, err := ws.Contacts.Add(ctx, "d", "2", "")
	require.NoError(t, err)
	assert.Equal(t, 4, c.ID)
}

func TestWorkspace_Components(t *testing.T) {
	ws, err := platform.Open(context.Background(), t.TempDir())
	require.NoError(t, err)

	components := ws.Components()
	require.Len(t, components, 4)

	state, ok := components[3].State().(typed.RepositoryState)
	require.True(t, ok)
	assert.Equal(t, "finance", state.Collection)
	assert.True(t, state.Loaded)
	assert.Equal(t, "count", state.IDStrategy)
}
