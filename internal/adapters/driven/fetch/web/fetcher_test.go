package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Supports(t *testing.T) {
	f := NewFetcher()

	assert.True(t, f.Supports("https://example.com/maths.bas"))
	assert.True(t, f.Supports("HTTP://example.com/maths.bas"))
	assert.False(t, f.Supports("github:o/r/maths.bas"))
	assert.False(t, f.Supports(""))
	assert.Equal(t, "web", f.Name())
}

func TestFetcher_Fetch(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("LABEL sqrt\r\nRETURN\r\n"))
	}))
	defer srv.Close()
	f := NewFetcherWithHTTPClient(srv.Client())

	body, err := f.Fetch(context.Background(), srv.URL+"/maths.bas")

	require.NoError(t, err)
	assert.Equal(t, "LABEL sqrt\r\nRETURN\r\n", string(body))
	assert.Equal(t, "bargo", gotAgent)
}

func TestFetcher_Fetch_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()
	f := NewFetcherWithHTTPClient(srv.Client())

	_, err := f.Fetch(context.Background(), srv.URL+"/missing.bas")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "404 Not Found")
}

func TestFetcher_Fetch_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("A", MaxBodySize+1)))
	}))
	defer srv.Close()
	f := NewFetcherWithHTTPClient(srv.Client())

	_, err := f.Fetch(context.Background(), srv.URL)

	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestFetcher_Fetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	f := NewFetcherWithHTTPClient(&http.Client{})

	_, err := f.Fetch(context.Background(), url+"/x.bas")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "request")
}

func TestFetcher_Fetch_Cancelled(t *testing.T) {
	f := NewFetcher()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Fetch(ctx, "https://example.com/x.bas")

	assert.ErrorIs(t, err, context.Canceled)
}
