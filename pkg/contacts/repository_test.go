package contacts_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/aide/pkg/adapters/fs"
	"github.com/aretw0/aide/pkg/contacts"
	"github.com/aretw0/aide/pkg/typed"
)

func setup(t *testing.T) (*contacts.Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts.json")
	return contacts.NewRepository(fs.NewFile(fs.Config{Path: path}), typed.Config{}), path
}

func TestContacts_AddUpdateSearch(t *testing.T) {
	ctx := context.Background()
	repo, _ := setup(t)

	_, err := repo.Add(ctx, "Иван Петров", "+79001112233", "")
	require.NoError(t, err)
	_, err = repo.Add(ctx, "Anna Smith", "555-0101", "anna@example.com")
	require.NoError(t, err)

	t.Run("By Name Ignoring Case", func(t *testing.T) {
		found, err := repo.Search(ctx, "иван")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, 1, found[0].ID)
	})

	t.Run("By Phone Fragment", func(t *testing.T) {
		found, err := repo.Search(ctx, "0101")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Anna Smith", found[0].Name)
	})

	t.Run("No Match", func(t *testing.T) {
		found, err := repo.Search(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("Update Only Provided Fields", func(t *testing.T) {
		c, err := repo.Update(ctx, 2, contacts.Update{Email: typed.NonEmpty("anna@work.example")})
		require.NoError(t, err)
		assert.Equal(t, "Anna Smith", c.Name)
		assert.Equal(t, "555-0101", c.Phone)
		assert.Equal(t, "anna@work.example", c.Email)
	})
}

func TestContacts_LoadWithoutEmail(t *testing.T) {
	ctx := context.Background()
	repo, path := setup(t)
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1, "name": "Old", "phone": "123"}]`), 0644))

	c, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "", c.Email)
}

func TestContacts_ImportWithoutEmailColumn(t *testing.T) {
	ctx := context.Background()
	repo, _ := setup(t)

	src := filepath.Join(t.TempDir(), "contacts.csv")
	require.NoError(t, os.WriteFile(src, []byte("name,phone\nBob,42\n"), 0644))

	n, err := repo.ImportCSV(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*contacts.Contact{{ID: 1, Name: "Bob", Phone: "42"}}, items)
}
