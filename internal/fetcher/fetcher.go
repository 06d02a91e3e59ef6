package fetcher

import (
	"context"
	"time"
)

// Result is the outcome of a successful fetch.
type Result struct {
	// URL is the originally requested URL.
	URL string

	// FinalURL is the URL after any redirects.
	FinalURL string

	// StatusCode is the HTTP status code (always 2xx for a Result).
	StatusCode int

	// Body is the raw response body, decompressed.
	Body []byte

	// Duration is how long the fetch took.
	Duration time.Duration
}

// Fetcher retrieves raw markup for a URL. All failure modes are
// converted to a *types.FetchError; implementations never panic past
// this boundary.
type Fetcher interface {
	// Fetch retrieves the content at the given URL.
	Fetch(ctx context.Context, rawURL string) (*Result, error)

	// Close releases any resources held by the fetcher.
	Close() error

	// Type returns the fetcher type identifier.
	Type() string
}
