package auth_test

import (
	"context"
	"testing"

	"github.com/DRSN-tech/soares-modas/internal/cfg"
	"github.com/DRSN-tech/soares-modas/internal/infrastructure/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptCredentialStore_PlainPassword(t *testing.T) {
	store, err := auth.NewBcryptCredentialStore(&cfg.AdminCfg{Username: "soaresmodas", Password: "segredo"})
	require.NoError(t, err)

	ctx := context.Background()

	ok, err := store.Verify(ctx, "soaresmodas", "segredo")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Verify(ctx, "soaresmodas", "errado")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Verify(ctx, "outro", "segredo")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptCredentialStore_Hash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	require.NoError(t, err)

	store, err := auth.NewBcryptCredentialStore(&cfg.AdminCfg{Username: "admin", PasswordHash: string(hash)})
	require.NoError(t, err)

	ok, err := store.Verify(context.Background(), "admin", "segredo")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptCredentialStore_InvalidHash(t *testing.T) {
	_, err := auth.NewBcryptCredentialStore(&cfg.AdminCfg{Username: "admin", PasswordHash: "not-a-hash"})
	assert.Error(t, err)
}
