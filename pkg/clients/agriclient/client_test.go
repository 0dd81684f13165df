package agriclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, code int, status, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    code,
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, 200, "success", "OK", map[string]interface{}{
			"user": User{ID: "u1", Role: "admin"},
		})
	}))
	defer server.Close()

	store := NewStore(NewFileStorage(filepath.Join(t.TempDir(), "credentials.json")))
	require.NoError(t, store.SetAuth(User{ID: "u1"}, "tok-123"))

	client := New(server.URL, WithSession(store))
	_, err := client.Auth().Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    400,
			"status":  "error",
			"message": "Validation failed",
			"errors":  map[string]string{"deadline": "must be before the event date"},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	_, _, err := client.Calls().PublicList(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Code)
	assert.Equal(t, "must be before the event date", apiErr.Fields["deadline"])
}

func TestLoginPersistsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		writeEnvelope(w, 200, "success", "Login successful", map[string]interface{}{
			"user":  User{ID: "u1", FullName: "Ada Obi", Role: "admin"},
			"token": "tok-abc",
		})
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewStore(NewFileStorage(path))
	client := New(server.URL, WithSession(store))

	user, token, err := client.Auth().Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
	assert.Equal(t, "tok-abc", token)

	fresh := NewStore(NewFileStorage(path))
	fresh.InitAuth()
	assert.True(t, fresh.IsAuthenticated())
}

func TestCreateCallWithBadDeadlineSendsNoRequest(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		writeEnvelope(w, 201, "success", "Call created", nil)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Calls().Create(context.Background(), CreateCallRequest{
		Title:     "Harvest support",
		EventDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Deadline:  time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "deadline", fieldErr.Field)
	assert.Equal(t, int32(0), atomic.LoadInt32(&requests), "no network call may be made")
}

// Publishing a gallery must make it visible to the public listing.
func TestPublishToggleThenPublicListingIncludesGallery(t *testing.T) {
	published := false
	gallery := Gallery{ID: "g1", Title: "Farm day", Category: "farm_excursion"}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/galleries/g1/publish", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			IsPublished bool `json:"is_published"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		published = body.IsPublished
		gallery.IsPublished = published
		writeEnvelope(w, 200, "success", "Publish state updated", map[string]interface{}{
			"gallery": gallery,
		})
	})
	mux.HandleFunc("/api/galleries/public", func(w http.ResponseWriter, r *http.Request) {
		items := []Gallery{}
		if published {
			items = append(items, gallery)
		}
		writeEnvelope(w, 200, "success", "OK", map[string]interface{}{
			"items": items,
			"meta":  Meta{Page: 1, PerPage: 25, Total: int64(len(items)), TotalPages: 1},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := New(server.URL)

	items, _, err := client.Galleries().PublicList(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items, "unpublished gallery must not be listed")

	updated, err := client.Galleries().SetPublished(context.Background(), "g1", true)
	require.NoError(t, err)
	assert.True(t, updated.IsPublished)

	items, _, err = client.Galleries().PublicList(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "g1", items[0].ID)
}
