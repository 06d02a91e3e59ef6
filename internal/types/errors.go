package types

import (
	"errors"
	"fmt"
)

// FailureKind classifies why an article could not be fetched.
type FailureKind int

const (
	// KindRequestError covers connection failures, DNS errors, and
	// non-2xx HTTP statuses.
	KindRequestError FailureKind = iota

	// KindTimeout means the request exceeded its deadline.
	KindTimeout

	// KindMissingInput means there was no URL to fetch.
	KindMissingInput
)

// String returns a human-readable name for the failure kind.
func (k FailureKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindMissingInput:
		return "missing_input"
	default:
		return "request_error"
	}
}

// ErrMissingURL marks a listing entry that carried no link to fetch.
var ErrMissingURL = errors.New("no URL to fetch")

// FetchError wraps errors that occur during fetching.
type FetchError struct {
	URL        string
	StatusCode int
	Kind       FailureKind
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s (status %d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError wraps errors that occur during markup traversal.
type ParseError struct {
	URL      string
	Selector string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Selector != "" {
		return fmt.Sprintf("parse error for %s (selector=%q): %v", e.URL, e.Selector, e.Err)
	}
	return fmt.Sprintf("parse error for %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Sentinel body strings consumed by downstream presentation and export.
// Analyzers treat any body carrying the "Error" prefix as non-scorable.
const (
	BodyNoURL       = "No URL provided."
	BodyTimeout     = "Error: Request timed out."
	BodyErrorPrefix = "Error fetching content: "
)

// SentinelBody renders a typed fetch failure as the sentinel body text
// embedded in the output record. The sentinel is generated only here, at
// the record-assembly boundary; components below it deal in typed errors.
func SentinelBody(err error) string {
	var fe *FetchError
	if errors.As(err, &fe) {
		switch fe.Kind {
		case KindMissingInput:
			return BodyNoURL
		case KindTimeout:
			return BodyTimeout
		}
	}
	return BodyErrorPrefix + err.Error()
}
