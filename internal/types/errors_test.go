package types

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFetchErrorUnwrap(t *testing.T) {
	base := context.DeadlineExceeded
	err := &FetchError{URL: "https://example.com", Kind: KindTimeout, Err: base}

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("FetchError must unwrap to its cause")
	}

	wrapped := fmt.Errorf("article fetch: %w", err)
	var fe *FetchError
	if !errors.As(wrapped, &fe) {
		t.Fatal("errors.As failed through wrapping")
	}
	if fe.Kind != KindTimeout {
		t.Errorf("kind = %v, want timeout", fe.Kind)
	}
}

func TestSentinelBody(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			"timeout",
			&FetchError{URL: "u", Kind: KindTimeout, Err: context.DeadlineExceeded},
			BodyTimeout,
		},
		{
			"missing input",
			&FetchError{Kind: KindMissingInput, Err: ErrMissingURL},
			BodyNoURL,
		},
		{
			"wrapped timeout",
			fmt.Errorf("outer: %w", &FetchError{Kind: KindTimeout, Err: context.DeadlineExceeded}),
			BodyTimeout,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SentinelBody(tc.err); got != tc.want {
				t.Errorf("SentinelBody() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSentinelBodyRequestError(t *testing.T) {
	err := &FetchError{
		URL:        "https://example.com/a",
		StatusCode: 503,
		Kind:       KindRequestError,
		Err:        errors.New("service unavailable"),
	}

	got := SentinelBody(err)
	if !strings.HasPrefix(got, BodyErrorPrefix) {
		t.Errorf("SentinelBody() = %q, want %q prefix", got, BodyErrorPrefix)
	}
}

func TestSentinelBodyGenericError(t *testing.T) {
	got := SentinelBody(errors.New("boom"))
	if !strings.HasPrefix(got, BodyErrorPrefix) {
		t.Errorf("SentinelBody() = %q, want %q prefix", got, BodyErrorPrefix)
	}
}
