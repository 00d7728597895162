package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/bargo/internal/core/ports/driven"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// encodingNone is reported for files too large to inline in a contents response.
const encodingNone = "none"

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// Fetcher downloads single files from GitHub repositories.
type Fetcher struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewFetcher creates a fetcher. An empty token uses unauthenticated access,
// which only reaches public repositories.
func NewFetcher(ctx context.Context, token string) *Fetcher {
	if token == "" {
		return NewFetcherWithHTTPClient(&http.Client{Timeout: DefaultTimeout})
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout
	return NewFetcherWithHTTPClient(tc)
}

// NewFetcherWithHTTPClient creates a fetcher over a custom http.Client.
func NewFetcherWithHTTPClient(httpClient *http.Client) *Fetcher {
	return &Fetcher{
		gh:          gh.NewClient(httpClient),
		rateLimiter: NewRateLimiter(),
	}
}

// GitHub returns the underlying go-github client.
func (f *Fetcher) GitHub() *gh.Client {
	return f.gh
}

// Name identifies the fetcher in error messages.
func (f *Fetcher) Name() string {
	return "github"
}

// Supports reports whether source is a github: reference.
func (f *Fetcher) Supports(source string) bool {
	return strings.HasPrefix(source, SourcePrefix)
}

// Fetch returns the raw contents of the referenced file.
func (f *Fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	src, err := ParseSource(source)
	if err != nil {
		return nil, err
	}

	if err := f.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.RepositoryContentGetOptions{Ref: src.Ref}
	content, _, resp, err := f.gh.Repositories.GetContents(ctx, src.Owner, src.Repo, src.Path, opts)
	f.updateRateLimitFromResponse(resp)
	if err != nil {
		return nil, f.wrapError(err, "get contents")
	}
	if content == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, src.Path)
	}

	if content.GetEncoding() == encodingNone {
		return f.download(ctx, src)
	}

	decoded, err := content.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return []byte(decoded), nil
}

// download streams files larger than the contents API inlines.
func (f *Fetcher) download(ctx context.Context, src Source) ([]byte, error) {
	if err := f.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.RepositoryContentGetOptions{Ref: src.Ref}
	rc, resp, err := f.gh.Repositories.DownloadContents(ctx, src.Owner, src.Repo, src.Path, opts)
	f.updateRateLimitFromResponse(resp)
	if err != nil {
		return nil, f.wrapError(err, "download contents")
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("download contents: %w", err)
	}
	return data, nil
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (f *Fetcher) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	f.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (f *Fetcher) wrapError(err error, operation string) error {
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return withTokenHint(&RateLimitError{
			ResetAt:   f.rateLimiter.ResetTime(),
			Remaining: f.rateLimiter.Remaining(),
			Limit:     f.rateLimiter.Limit(),
		})
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{StatusCode: ghErr.Response.StatusCode, Message: ghErr.Message}
		if ghErr.Response.Request != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return withTokenHint(apiErr)
	}

	return fmt.Errorf("%s: %w", operation, err)
}
