package agriclient

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Durable storage keys. These names are part of the persisted format.
const (
	storageKeyToken = "token"
	storageKeyUser  = "user"
)

// Storage is a small durable key-value surface behind the session store.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// FileStorage keeps keys in a single JSON file, created with user-only
// permissions. Corrupt or unreadable content reads as empty rather than
// failing, so a damaged credentials file never breaks session hydration.
type FileStorage struct {
	Path string
	mu   sync.Mutex
}

// DefaultCredentialsPath is ~/.agrictl/credentials.json.
func DefaultCredentialsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".agrictl", "credentials.json"), nil
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

func (fs *FileStorage) load() map[string]string {
	raw, err := os.ReadFile(fs.Path)
	if err != nil {
		return map[string]string{}
	}
	values := map[string]string{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return map[string]string{}
	}
	return values
}

func (fs *FileStorage) save(values map[string]string) error {
	raw, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fs.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(fs.Path, raw, 0o600)
}

func (fs *FileStorage) Get(key string) (string, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	value, ok := fs.load()[key]
	return value, ok
}

func (fs *FileStorage) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	values := fs.load()
	values[key] = value
	return fs.save(values)
}

func (fs *FileStorage) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	values := fs.load()
	delete(values, key)
	return fs.save(values)
}

// Store is the single source of truth for "is a caller logged in, and as
// whom". It holds the session in memory and mirrors it to durable storage.
// One Store is created per process and passed by reference; it is not a
// package global.
type Store struct {
	mu      sync.RWMutex
	storage Storage

	user            *User
	token           string
	isAuthenticated bool
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// NewFileStore is the common construction: a Store over the default
// credentials file.
func NewFileStore() (*Store, error) {
	path, err := DefaultCredentialsPath()
	if err != nil {
		return nil, err
	}
	return NewStore(NewFileStorage(path)), nil
}

// SetAuth persists the identity and token and marks the session
// authenticated. The token is stored as given; the server rejects bad tokens
// later.
func (s *Store) SetAuth(user User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.storage.Set(storageKeyToken, token); err != nil {
		return err
	}
	if err := s.storage.Set(storageKeyUser, string(raw)); err != nil {
		return err
	}

	s.user = &user
	s.token = token
	s.isAuthenticated = true
	return nil
}

// ClearAuth removes the session from memory and durable storage.
func (s *Store) ClearAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.storage.Delete(storageKeyToken)
	_ = s.storage.Delete(storageKeyUser)

	s.user = nil
	s.token = ""
	s.isAuthenticated = false
	return nil
}

// InitAuth hydrates the in-memory session from durable storage. It is
// idempotent and safe to call on every guarded entry point. It fails closed:
// missing keys, corrupt user JSON, or a locally expired JWT all leave the
// store unauthenticated. Tokens that do not parse as JWTs are kept as-is and
// left for the server to judge.
func (s *Store) InitAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, okToken := s.storage.Get(storageKeyToken)
	rawUser, okUser := s.storage.Get(storageKeyUser)
	if !okToken || !okUser || token == "" {
		s.reset()
		return
	}

	var user User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.reset()
		return
	}

	if tokenLocallyExpired(token, time.Now()) {
		_ = s.storage.Delete(storageKeyToken)
		_ = s.storage.Delete(storageKeyUser)
		s.reset()
		return
	}

	s.user = &user
	s.token = token
	s.isAuthenticated = true
}

func (s *Store) reset() {
	s.user = nil
	s.token = ""
	s.isAuthenticated = false
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

func (s *Store) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.isAuthenticated {
		return "", false
	}
	return s.token, true
}

// tokenLocallyExpired parses the token without verifying the signature and
// checks only the exp claim. Unparseable tokens are not treated as expired.
func tokenLocallyExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return now.After(time.Unix(int64(exp), 0))
}
