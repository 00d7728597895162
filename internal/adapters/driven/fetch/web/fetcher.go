// Package web fetches dependency sources over plain HTTP(S).
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/bargo/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRate is the number of requests per second allowed to any host.
	DefaultRate = 4

	// MaxBodySize caps a downloaded source file.
	MaxBodySize = 8 << 20

	userAgent = "bargo"
)

// ErrTooLarge indicates a response body exceeded MaxBodySize.
var ErrTooLarge = errors.New("web: response too large")

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("web: %s returned %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// Fetcher downloads http:// and https:// sources.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewFetcher creates a fetcher with the default timeout and rate.
func NewFetcher() *Fetcher {
	return NewFetcherWithHTTPClient(&http.Client{Timeout: DefaultTimeout})
}

// NewFetcherWithHTTPClient creates a fetcher over a custom http.Client.
func NewFetcherWithHTTPClient(client *http.Client) *Fetcher {
	return &Fetcher{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(DefaultRate), 1),
	}
}

// Name identifies the fetcher in error messages.
func (f *Fetcher) Name() string {
	return "web"
}

// Supports reports whether source is an http or https URL.
func (f *Fetcher) Supports(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Fetch performs a GET and returns the body of a 2xx response.
func (f *Fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: source}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	if len(body) > MaxBodySize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, source, MaxBodySize)
	}
	return body, nil
}
