package csvfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JRossell27/Job-tracker/internal/domain"
	"github.com/JRossell27/Job-tracker/internal/repository/csvfile"
)

func TestUserCreateAndGet(t *testing.T) {
	dir := t.TempDir()
	repo := csvfile.NewUserRepository(dir)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "hash-a"}))
	require.NoError(t, repo.Create(ctx, &domain.User{Username: "bob", PasswordHash: "hash-b"}))

	user, err := repo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, "hash-b", user.PasswordHash)

	raw, err := os.ReadFile(filepath.Join(dir, csvfile.CredentialFile))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "User,PasswordHash\n"))
}

func TestUserUnknownIsDistinguishable(t *testing.T) {
	repo := csvfile.NewUserRepository(t.TempDir())

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserDuplicateCreate(t *testing.T) {
	repo := csvfile.NewUserRepository(t.TempDir())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h1"}))
	err := repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	user, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "h1", user.PasswordHash, "original record is kept")
}
