package session

import (
	"path/filepath"
	"testing"

	"grocery_admin/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewStoreAt(path, nil)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	sess := FromLogin("admin@example.com", api.LoginResult{
		Message:     "Login successful",
		IsSuperuser: true,
		Permissions: []string{"products", "orders"},
	})
	require.NoError(t, store.Save(sess))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", loaded.Email)
	assert.True(t, loaded.IsSuperuser)
	assert.Equal(t, []string{"products", "orders"}, loaded.Permissions)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	// Clearing an already-cleared session is fine.
	require.NoError(t, store.Clear())
}

func TestLoginResponseEmailWins(t *testing.T) {
	sess := FromLogin("typed@example.com", api.LoginResult{Email: "canonical@example.com"})
	assert.Equal(t, "canonical@example.com", sess.Email)
}

func TestHasPermission(t *testing.T) {
	sess := Session{Permissions: []string{"products"}}
	assert.True(t, sess.HasPermission("products"))
	assert.False(t, sess.HasPermission("orders"))

	super := Session{IsSuperuser: true}
	assert.True(t, super.HasPermission("anything"))
}
