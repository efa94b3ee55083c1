package notes_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/aide/pkg/adapters/fs"
	"github.com/aretw0/aide/pkg/core"
	"github.com/aretw0/aide/pkg/notes"
	"github.com/aretw0/aide/pkg/typed"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func setup(t *testing.T) (*notes.Repository, *clock, string) {
	t.Helper()
	c := &clock{t: time.Date(2025, time.January, 2, 10, 0, 0, 0, time.Local)}
	path := filepath.Join(t.TempDir(), "notes.json")
	repo := notes.NewRepository(fs.NewFile(fs.Config{Path: path}), typed.Config{}, c.Now)
	return repo, c, path
}

func TestNotes_AddAndFind(t *testing.T) {
	ctx := context.Background()
	repo, _, path := setup(t)

	n, err := repo.Add(ctx, "Покупки", "молоко, хлеб")
	require.NoError(t, err)
	assert.Equal(t, 1, n.ID)
	assert.Equal(t, "02-01-2025 10:00:00", n.Timestamp)

	found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, n, found)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"timestamp": "02-01-2025 10:00:00"`)
	assert.Contains(t, string(raw), "молоко, хлеб")
}

func TestNotes_Update(t *testing.T) {
	ctx := context.Background()
	repo, c, _ := setup(t)

	_, err := repo.Add(ctx, "title", "content")
	require.NoError(t, err)

	t.Run("Empty Update Only Refreshes Timestamp", func(t *testing.T) {
		c.t = c.t.Add(time.Hour)
		n, err := repo.Update(ctx, 1, notes.Update{})
		require.NoError(t, err)
		assert.Equal(t, "title", n.Title)
		assert.Equal(t, "content", n.Content)
		assert.Equal(t, "02-01-2025 11:00:00", n.Timestamp)
	})

	t.Run("Changes Provided Fields", func(t *testing.T) {
		n, err := repo.Update(ctx, 1, notes.Update{Content: typed.NonEmpty("new content")})
		require.NoError(t, err)
		assert.Equal(t, "title", n.Title)
		assert.Equal(t, "new content", n.Content)
	})

	t.Run("Unknown ID", func(t *testing.T) {
		_, err := repo.Update(ctx, 7, notes.Update{})
		assert.True(t, errors.Is(err, core.ErrNotFound))
	})
}

func TestNotes_ExportImportKeepsTimestamp(t *testing.T) {
	ctx := context.Background()
	repo, c, _ := setup(t)

	_, err := repo.Add(ctx, "a", "first")
	require.NoError(t, err)
	c.t = c.t.Add(24 * time.Hour)
	_, err = repo.Add(ctx, "b", "second")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "notes.csv")
	require.NoError(t, repo.ExportCSV(ctx, out))

	fresh, c2, _ := setup(t)
	c2.t = c2.t.Add(1000 * time.Hour)
	n, err := fresh.ImportCSV(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	want, err := repo.List(ctx)
	require.NoError(t, err)
	got, err := fresh.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNotes_ImportWithoutTimestamp(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := setup(t)

	src := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(src, []byte("title,content\nx,y\n"), 0644))

	_, err := repo.ImportCSV(ctx, src)
	require.NoError(t, err)

	n, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "02-01-2025 10:00:00", n.Timestamp)
}

func TestNotes_ImportRejectsBadTimestamp(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := setup(t)

	src := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(src, []byte("title,content,timestamp\nx,y,yesterday\n"), 0644))

	_, err := repo.ImportCSV(ctx, src)
	assert.True(t, errors.Is(err, core.ErrValidation))
}
