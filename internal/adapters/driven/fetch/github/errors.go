package github

import (
	"errors"
	"fmt"
	"time"
)

// GitHub-specific errors.
var (
	// ErrInvalidSource indicates a source string is not a github: reference.
	ErrInvalidSource = errors.New("github: invalid source")

	// ErrNotAFile indicates the referenced path is a directory.
	ErrNotAFile = errors.New("github: path is a directory, not a file")
)

// TokenHint is appended to authentication and rate limit failures.
const TokenHint = "set BARGO_GITHUB_TOKEN or GITHUB_TOKEN to authenticate"

// RateLimitError represents a rate limit exceeded error with reset time.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// APIError represents a GitHub API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}

// withTokenHint adds TokenHint to errors a token would resolve.
func withTokenHint(err error) error {
	if IsUnauthorized(err) || IsRateLimited(err) {
		return fmt.Errorf("%w (%s)", err, TokenHint)
	}
	return err
}
