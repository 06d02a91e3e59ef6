package fetcher

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/andybalholm/brotli"

	"github.com/newslens/newslens/internal/config"
	"github.com/newslens/newslens/internal/types"
)

// HTTPFetcher implements Fetcher using net/http.
type HTTPFetcher struct {
	client    *http.Client
	cfg       *config.FetcherConfig
	userAgent string
	logger    *slog.Logger
}

// NewHTTPFetcher creates a new HTTP fetcher.
func NewHTTPFetcher(cfg *config.Config, logger *slog.Logger) *HTTPFetcher {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   cfg.Fetcher.RequestTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        cfg.Fetcher.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.Fetcher.MaxIdleConns / 2,
		IdleConnTimeout:     cfg.Fetcher.IdleConnTimeout,
		TLSHandshakeTimeout: 10 * time.Second,
		DisableCompression:  true, // We handle decompression ourselves (including brotli)
	}

	redirectPolicy := func(req *http.Request, via []*http.Request) error {
		if len(via) >= cfg.Fetcher.MaxRedirects {
			return fmt.Errorf("max redirects (%d) reached", cfg.Fetcher.MaxRedirects)
		}
		return nil
	}

	client := &http.Client{
		Transport:     transport,
		Timeout:       cfg.Fetcher.RequestTimeout,
		CheckRedirect: redirectPolicy,
	}

	return &HTTPFetcher{
		client:    client,
		cfg:       &cfg.Fetcher,
		userAgent: cfg.Fetcher.UserAgent,
		logger:    logger.With("component", "http_fetcher"),
	}
}

// Fetch executes an HTTP GET and returns the decompressed body.
// Any failure comes back as a *types.FetchError classified as timeout or
// request error; nothing is raised past this boundary.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	if rawURL == "" {
		return nil, &types.FetchError{Kind: types.KindMissingInput, Err: types.ErrMissingURL}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &types.FetchError{URL: rawURL, Kind: types.KindRequestError, Err: err}
	}

	httpReq.Header.Set("User-Agent", f.userAgent)
	httpReq.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	httpReq.Header.Set("Accept-Language", "en-US,en;q=0.9")
	httpReq.Header.Set("Accept-Encoding", "gzip, deflate, br")

	start := time.Now()
	httpResp, err := f.client.Do(httpReq)
	duration := time.Since(start)

	if err != nil {
		fe := &types.FetchError{URL: rawURL, Kind: classifyNetError(err), Err: err}
		f.logger.Error("fetch failed", "url", rawURL, "kind", fe.Kind.String(), "error", err)
		return nil, fe
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(httpResp.Body, 1024))
		fe := &types.FetchError{
			URL:        rawURL,
			StatusCode: httpResp.StatusCode,
			Kind:       types.KindRequestError,
			Err:        fmt.Errorf("HTTP %d: %s", httpResp.StatusCode, string(body)),
		}
		f.logger.Error("fetch failed", "url", rawURL, "status", httpResp.StatusCode)
		return nil, fe
	}

	var reader io.Reader = httpResp.Body
	if f.cfg.MaxBodySize > 0 {
		reader = io.LimitReader(reader, f.cfg.MaxBodySize)
	}

	reader, err = decompressReader(httpResp, reader)
	if err != nil {
		return nil, &types.FetchError{URL: rawURL, Kind: types.KindRequestError, Err: err}
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		fe := &types.FetchError{URL: rawURL, Kind: classifyNetError(err), Err: err}
		f.logger.Error("fetch failed", "url", rawURL, "kind", fe.Kind.String(), "error", err)
		return nil, fe
	}

	f.logger.Debug("fetch complete",
		"url", rawURL,
		"status", httpResp.StatusCode,
		"size", len(body),
		"duration", duration,
	)

	return &Result{
		URL:        rawURL,
		FinalURL:   httpResp.Request.URL.String(),
		StatusCode: httpResp.StatusCode,
		Body:       body,
		Duration:   duration,
	}, nil
}

// Close releases resources.
func (f *HTTPFetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// Type returns the fetcher type identifier.
func (f *HTTPFetcher) Type() string {
	return "http"
}

// decompressReader wraps a reader with the appropriate decompressor.
// Handles gzip, deflate, and brotli (br) encodings.
func decompressReader(resp *http.Response, reader io.Reader) (io.Reader, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		return gzip.NewReader(reader)
	case "deflate":
		return flate.NewReader(reader), nil
	case "br":
		return brotli.NewReader(reader), nil
	default:
		return reader, nil
	}
}

// classifyNetError maps a transport-level error to a failure kind.
// Deadline and timeout conditions become KindTimeout; everything else
// (DNS failure, connection refused, reset) is a request error.
func classifyNetError(err error) types.FailureKind {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return types.KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return types.KindTimeout
	}
	return types.KindRequestError
}
