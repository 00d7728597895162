package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, handler http.Handler) *Fetcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := NewFetcherWithHTTPClient(srv.Client())
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	f.GitHub().BaseURL = base
	return f
}

func TestFetcher_Supports(t *testing.T) {
	f := NewFetcher(context.Background(), "")

	assert.True(t, f.Supports("github:o/r/x.bas"))
	assert.False(t, f.Supports("https://github.com/o/r/x.bas"))
	assert.False(t, f.Supports(""))
	assert.Equal(t, "github", f.Name())
}

func TestFetcher_Fetch(t *testing.T) {
	var gotRef string
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/owner/repo/contents/lib/gfx.bas", func(w http.ResponseWriter, r *http.Request) {
		gotRef = r.URL.Query().Get("ref")
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(HeaderRateRemaining, "42")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":     "file",
			"name":     "gfx.bas",
			"path":     "lib/gfx.bas",
			"encoding": "base64",
			"content":  base64.StdEncoding.EncodeToString([]byte("LABEL plot\nRETURN\n")),
		})
	})
	f := newTestFetcher(t, mux)

	body, err := f.Fetch(context.Background(), "github:owner/repo/lib/gfx.bas@v1.2.0")

	require.NoError(t, err)
	assert.Equal(t, "LABEL plot\nRETURN\n", string(body))
	assert.Equal(t, "v1.2.0", gotRef)
	assert.Equal(t, 42, f.rateLimiter.Remaining())
}

func TestFetcher_Fetch_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/owner/repo/contents/missing.bas", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})
	f := newTestFetcher(t, mux)

	_, err := f.Fetch(context.Background(), "github:owner/repo/missing.bas")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Not Found")
	assert.NotContains(t, err.Error(), TokenHint)
}

func TestFetcher_Fetch_Unauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/owner/private/contents/lib.bas", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	})
	f := newTestFetcher(t, mux)

	_, err := f.Fetch(context.Background(), "github:owner/private/lib.bas")

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "Bad credentials")
	assert.Contains(t, err.Error(), TokenHint)
}

func TestFetcher_WrapError_RateLimited(t *testing.T) {
	f := NewFetcher(context.Background(), "")

	err := f.wrapError(&gh.RateLimitError{Message: "API rate limit exceeded"}, "get contents")

	assert.True(t, IsRateLimited(err))
	assert.Contains(t, err.Error(), "rate limit exceeded")
	assert.Contains(t, err.Error(), TokenHint)
}

func TestFetcher_Fetch_Directory(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/owner/repo/contents/lib", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"type":"file","name":"gfx.bas","path":"lib/gfx.bas"}]`))
	})
	f := newTestFetcher(t, mux)

	_, err := f.Fetch(context.Background(), "github:owner/repo/lib")

	assert.ErrorIs(t, err, ErrNotAFile)
}

func TestFetcher_Fetch_InvalidSource(t *testing.T) {
	f := NewFetcher(context.Background(), "token")

	_, err := f.Fetch(context.Background(), "github:owner")

	assert.ErrorIs(t, err, ErrInvalidSource)
}

func TestFetcher_Fetch_Cancelled(t *testing.T) {
	f := NewFetcher(context.Background(), "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Fetch(ctx, "github:o/r/x.bas")

	assert.ErrorIs(t, err, context.Canceled)
}
