package agriclient

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireSession(t *testing.T) {
	store := NewStore(NewFileStorage(filepath.Join(t.TempDir(), "credentials.json")))

	_, err := RequireSession(store)
	assert.ErrorIs(t, err, ErrNoSession)

	user := User{ID: "u1", FullName: "Ada Obi", Role: "admin"}
	require.NoError(t, store.SetAuth(user, signedToken(t, time.Now().Add(time.Hour))))

	got, err := RequireSession(store)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestNavItemsPerRole(t *testing.T) {
	volunteer := NavItems("volunteer")
	assert.Len(t, volunteer, 2)
	assert.Equal(t, "/volunteer/dashboard", volunteer[0].Path)

	admin := NavItems("admin")
	adminPaths := make([]string, 0, len(admin))
	for _, item := range admin {
		adminPaths = append(adminPaths, item.Path)
	}
	assert.Contains(t, adminPaths, "/admin/applications")
	assert.Contains(t, adminPaths, "/admin/volunteer-calls")
	assert.NotContains(t, adminPaths, "/admin/users")

	super := NavItems("superadmin")
	superPaths := make([]string, 0, len(super))
	for _, item := range super {
		superPaths = append(superPaths, item.Path)
	}
	assert.Contains(t, superPaths, "/admin/users")
	assert.Len(t, super, len(admin)+1)

	assert.Nil(t, NavItems("stranger"))
}
