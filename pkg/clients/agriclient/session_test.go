package agriclient

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	return NewStore(NewFileStorage(path)), path
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSessionRoundTrip(t *testing.T) {
	store, path := tempStore(t)
	user := User{ID: "u1", FullName: "Ada Obi", Email: "ada@example.com", Role: "admin"}
	token := signedToken(t, time.Now().Add(time.Hour))

	require.NoError(t, store.SetAuth(user, token))

	// a fresh store over the same file must hydrate the identical pair
	fresh := NewStore(NewFileStorage(path))
	fresh.InitAuth()

	assert.True(t, fresh.IsAuthenticated())
	gotUser, ok := fresh.User()
	require.True(t, ok)
	assert.Equal(t, user, gotUser)
	gotToken, ok := fresh.Token()
	require.True(t, ok)
	assert.Equal(t, token, gotToken)
}

func TestClearAuthThenInitIsUnauthenticated(t *testing.T) {
	store, path := tempStore(t)
	require.NoError(t, store.SetAuth(User{ID: "u1"}, signedToken(t, time.Now().Add(time.Hour))))
	require.NoError(t, store.ClearAuth())

	fresh := NewStore(NewFileStorage(path))
	fresh.InitAuth()

	assert.False(t, fresh.IsAuthenticated())
	_, ok := fresh.Token()
	assert.False(t, ok)
}

func TestInitAuthIsIdempotent(t *testing.T) {
	store, _ := tempStore(t)
	user := User{ID: "u1", Role: "volunteer"}
	require.NoError(t, store.SetAuth(user, signedToken(t, time.Now().Add(time.Hour))))

	store.InitAuth()
	store.InitAuth()
	store.InitAuth()

	assert.True(t, store.IsAuthenticated())
	gotUser, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, user, gotUser)
}

func TestCorruptCredentialsFileFailsClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewStore(NewFileStorage(path))
	assert.NotPanics(t, func() { store.InitAuth() })
	assert.False(t, store.IsAuthenticated())
}

func TestCorruptUserJSONFailsClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	storage := NewFileStorage(path)
	require.NoError(t, storage.Set("token", signedToken(t, time.Now().Add(time.Hour))))
	require.NoError(t, storage.Set("user", "{broken"))

	store := NewStore(storage)
	store.InitAuth()
	assert.False(t, store.IsAuthenticated())
}

func TestInitAuthDropsLocallyExpiredJWT(t *testing.T) {
	store, path := tempStore(t)
	require.NoError(t, store.SetAuth(User{ID: "u1"}, signedToken(t, time.Now().Add(-time.Hour))))

	store.InitAuth()
	assert.False(t, store.IsAuthenticated())

	// the stale credentials are removed from disk, not just from memory
	fresh := NewStore(NewFileStorage(path))
	fresh.InitAuth()
	assert.False(t, fresh.IsAuthenticated())
}

func TestInitAuthKeepsOpaqueTokens(t *testing.T) {
	// non-JWT tokens cannot be judged locally; the server decides
	store, _ := tempStore(t)
	require.NoError(t, store.SetAuth(User{ID: "u1"}, "opaque-session-token"))

	store.InitAuth()
	assert.True(t, store.IsAuthenticated())
	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "opaque-session-token", token)
}
