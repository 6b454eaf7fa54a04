package users

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONRepo(t *testing.T) *JSONRepository {
	t.Helper()
	repo, err := NewJSONRepository(filepath.Join(t.TempDir(), "users.json"))
	require.NoError(t, err)
	return repo
}

func TestJSONRepository_CreateAndLookup(t *testing.T) {
	repo := newJSONRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{
		Email:        "alice@example.com",
		FirstName:    "Alice",
		LastName:     "Smith",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
}

func TestJSONRepository_LookupMissing(t *testing.T) {
	repo := newJSONRepo(t)
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = repo.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestJSONRepository_CorruptFileReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	repo, err := NewJSONRepository(path)
	require.NoError(t, err)

	_, err = repo.GetByEmail(context.Background(), "alice@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)

	// a write after the corrupt read starts a fresh collection
	created, err := repo.Create(context.Background(), &models.User{Email: "alice@example.com"})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestJSONRepository_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "users.json")

	repo, err := NewJSONRepository(path)
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), &models.User{Email: "a@b.c"})
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
