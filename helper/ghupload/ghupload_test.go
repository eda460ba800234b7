package ghupload

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-github/v59/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGitHub serves the three contents endpoints the store uses and keeps
// the files in memory.
type fakeGitHub struct {
	mu      sync.Mutex
	files   map[string][]byte
	deletes []string
	fail    bool
}

func (f *fakeGitHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	const prefix = "/repos/acme/images/contents/"
	if !strings.HasPrefix(r.URL.Path, prefix) || f.fail {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	filePath := strings.TrimPrefix(r.URL.Path, prefix)

	switch r.Method {
	case http.MethodPut:
		var body struct {
			Content []byte `json:"content"`
			Branch  string `json:"branch"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.files[filePath] = body.Content
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": map[string]any{"path": filePath, "sha": "sha-" + filePath},
		})
	case http.MethodGet:
		if _, ok := f.files[filePath]; !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "Not Found"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type": "file", "path": filePath, "sha": "sha-" + filePath,
		})
	case http.MethodDelete:
		delete(f.files, filePath)
		f.deletes = append(f.deletes, filePath)
		_ = json.NewEncoder(w).Encode(map[string]any{"commit": map[string]any{"sha": "c1"}})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestStore(t *testing.T) (*Store, *fakeGitHub) {
	t.Helper()
	fake := &fakeGitHub{files: map[string][]byte{}}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client := github.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL

	store := NewStoreWithClient(client, Config{
		Owner: "acme", Repo: "images", Branch: "main",
		AuthorName: "bot", AuthorEmail: "bot@example.com",
	})
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return store, fake
}

func TestUploadAndDelete(t *testing.T) {
	store, fake := newTestStore(t)
	ctx := context.Background()

	imageURL, err := store.Upload(ctx, "shoes", "Runner.PNG", "image/png", []byte("png-bytes"))
	require.NoError(t, err)

	prefix := "https://raw.githubusercontent.com/acme/images/main/shoes/1700000000000-"
	assert.True(t, strings.HasPrefix(imageURL, prefix), imageURL)
	assert.True(t, strings.HasSuffix(imageURL, ".png"), imageURL)
	assert.Len(t, fake.files, 1)

	require.NoError(t, store.Delete(ctx, imageURL))
	assert.Empty(t, fake.files)
	require.Len(t, fake.deletes, 1)
	assert.True(t, strings.HasPrefix(fake.deletes[0], "shoes/"))
}

func TestUploadDefaultsFolder(t *testing.T) {
	store, _ := newTestStore(t)

	imageURL, err := store.Upload(context.Background(), "", "logo", "image/jpeg", []byte("jpg"))
	require.NoError(t, err)
	assert.Contains(t, imageURL, "/main/brands/")
	assert.True(t, strings.HasSuffix(imageURL, ".jpg"), imageURL)
}

func TestUploadValidation(t *testing.T) {
	store, fake := newTestStore(t)
	ctx := context.Background()

	_, err := store.Upload(ctx, "brands", "a.txt", "text/plain", []byte("x"))
	assert.ErrorIs(t, err, ErrNotImage)

	big := make([]byte, MaxImageSize+1)
	_, err = store.Upload(ctx, "brands", "a.png", "image/png", big)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = store.Upload(ctx, "../secrets", "a.png", "image/png", []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = store.Upload(ctx, "brands", "a.png", "image/png", nil)
	assert.ErrorIs(t, err, ErrEmptyContent)

	assert.Empty(t, fake.files)
}

func TestUploadExactlyMaxSize(t *testing.T) {
	assert.NoError(t, Validate("image/webp", MaxImageSize))
}

func TestDeleteRejectsForeignURL(t *testing.T) {
	store, fake := newTestStore(t)

	err := store.Delete(context.Background(), "https://example.com/brands/a.png")
	assert.ErrorIs(t, err, ErrInvalidURL)
	assert.Empty(t, fake.deletes)
}

func TestDeleteMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Delete(context.Background(), store.PublicBaseURL()+"/brands/missing.png")
	assert.Error(t, err)
}

func TestUploadStorageFailure(t *testing.T) {
	store, fake := newTestStore(t)
	fake.fail = true

	_, err := store.Upload(context.Background(), "brands", "a.png", "image/png", []byte("x"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotImage)
}

func TestCalculateHash(t *testing.T) {
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		CalculateHash([]byte("hello")))
}
