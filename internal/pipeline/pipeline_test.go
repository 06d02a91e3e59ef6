package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/newslens/newslens/internal/config"
	"github.com/newslens/newslens/internal/fetcher"
	"github.com/newslens/newslens/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

// stubFetcher serves canned pages and canned failures keyed by URL.
type stubFetcher struct {
	pages map[string]string
	errs  map[string]error
}

func (s *stubFetcher) Fetch(ctx context.Context, rawURL string) (*fetcher.Result, error) {
	if err, ok := s.errs[rawURL]; ok {
		return nil, err
	}
	page, ok := s.pages[rawURL]
	if !ok {
		return nil, &types.FetchError{
			URL:  rawURL,
			Kind: types.KindRequestError,
			Err:  errors.New("no canned page"),
		}
	}
	return &fetcher.Result{URL: rawURL, FinalURL: rawURL, StatusCode: 200, Body: []byte(page)}, nil
}

func (s *stubFetcher) Close() error { return nil }
func (s *stubFetcher) Type() string { return "stub" }

// cancellingFetcher cancels the run's context while serving one URL,
// simulating an interrupt that lands mid-category.
type cancellingFetcher struct {
	stub   *stubFetcher
	cancel context.CancelFunc
	on     string
}

func (c *cancellingFetcher) Fetch(ctx context.Context, rawURL string) (*fetcher.Result, error) {
	if rawURL == c.on {
		c.cancel()
	}
	return c.stub.Fetch(ctx, rawURL)
}

func (c *cancellingFetcher) Close() error { return nil }
func (c *cancellingFetcher) Type() string { return "stub" }

const politicsListing = `<html><body>
	<h2><a class="AnchorLink" href="/a1">Alpha story</a></h2>
	<h2><a class="AnchorLink" href="/a2">Beta story</a></h2>
</body></html>`

const businessListing = `<html><body>
	<h2 class="t">Gamma story</h2>
	<h2 class="t">Delta story</h2>
	<div><a class="l" href="/b1">read</a></div>
</body></html>`

const alphaArticle = `<html>
<head>
	<title>Alpha story in full</title>
	<meta name="description" content="Everything about the alpha story.">
	<meta name="keywords" content="alpha, story">
</head>
<body><article>
	<p>The committee met on Tuesday to review the quarterly schedule for the department.</p>
	<p>Members agreed to publish the revised schedule before the end of the current month.</p>
</article></body></html>`

const gammaArticle = `<html><body><article>
	<p>The regional office confirmed the updated figures during the afternoon briefing session.</p>
</article></body></html>`

func anchorCategory(name, url string) config.CategorySource {
	rule := config.SelectorRule{Selector: "h2 a.AnchorLink"}
	return config.CategorySource{Name: name, URL: url, Title: rule, Link: rule}
}

func testFixture() (*stubFetcher, []config.CategorySource) {
	f := &stubFetcher{
		pages: map[string]string{
			"https://example.com/politics": politicsListing,
			"https://example.com/business": businessListing,
			"https://example.com/a1":       alphaArticle,
			"https://example.com/b1":       gammaArticle,
		},
		errs: map[string]error{
			"https://example.com/a2": &types.FetchError{
				URL:  "https://example.com/a2",
				Kind: types.KindTimeout,
				Err:  context.DeadlineExceeded,
			},
			"https://example.com/broken": &types.FetchError{
				URL:        "https://example.com/broken",
				StatusCode: 503,
				Kind:       types.KindRequestError,
				Err:        errors.New("service unavailable"),
			},
		},
	}

	categories := []config.CategorySource{
		anchorCategory("Politics", "https://example.com/politics"),
		{
			Name:  "Business",
			URL:   "https://example.com/business",
			Title: config.SelectorRule{Selector: "h2.t"},
			Link:  config.SelectorRule{Selector: "a.l"},
		},
		anchorCategory("Broken", "https://example.com/broken"),
	}
	return f, categories
}

func TestRunAssemblesRecordsInOrder(t *testing.T) {
	f, categories := testFixture()
	p := New(f, 1, testLogger)

	records := p.Run(context.Background(), categories)

	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}

	wantOrder := []struct{ category, title string }{
		{"Politics", "Alpha story"},
		{"Politics", "Beta story"},
		{"Business", "Gamma story"},
		{"Business", "Delta story"},
	}
	for i, want := range wantOrder {
		if records[i].Category != want.category || records[i].Title != want.title {
			t.Errorf("record %d = %s/%q, want %s/%q",
				i, records[i].Category, records[i].Title, want.category, want.title)
		}
	}

	alpha := records[0]
	if alpha.URL != "https://example.com/a1" {
		t.Errorf("alpha URL = %q", alpha.URL)
	}
	if !strings.Contains(alpha.Content, "committee met on Tuesday") {
		t.Errorf("alpha content missing body text: %q", alpha.Content)
	}
	if alpha.MetaTitle != "Alpha story in full" {
		t.Errorf("alpha meta title = %q", alpha.MetaTitle)
	}
	if !alpha.Readability.Valid {
		t.Error("alpha readability should be scorable")
	}
}

func TestRunTimeoutArticleDegradesToSentinel(t *testing.T) {
	f, categories := testFixture()
	p := New(f, 1, testLogger)

	records := p.Run(context.Background(), categories)
	beta := records[1]

	if beta.Content != types.BodyTimeout {
		t.Errorf("content = %q, want %q", beta.Content, types.BodyTimeout)
	}
	if beta.Sentiment != 0.0 {
		t.Errorf("sentiment = %v, want 0.0 for error body", beta.Sentiment)
	}
	if beta.MetaTitle != "" || beta.MetaDescription != "" || beta.MetaKeywords != "" {
		t.Errorf("metadata should be empty on fetch failure: %+v", beta)
	}
	// The record still exists with its listing title intact.
	if beta.Title != "Beta story" {
		t.Errorf("title = %q", beta.Title)
	}
}

func TestRunMissingLinkDegradesToSentinel(t *testing.T) {
	f, categories := testFixture()
	p := New(f, 1, testLogger)

	records := p.Run(context.Background(), categories)
	delta := records[3]

	if delta.URL != "" {
		t.Fatalf("expected empty URL for unpaired title, got %q", delta.URL)
	}
	if delta.Content != types.BodyNoURL {
		t.Errorf("content = %q, want %q", delta.Content, types.BodyNoURL)
	}
}

func TestRunFailedListingContributesNothing(t *testing.T) {
	f, categories := testFixture()
	p := New(f, 1, testLogger)

	records := p.Run(context.Background(), categories)

	for _, r := range records {
		if r.Category == "Broken" {
			t.Errorf("record leaked from failed listing: %+v", r)
		}
	}
}

func TestRunCancellationReturnsOnlyProcessedRecords(t *testing.T) {
	f, _ := testFixture()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancellation lands while the first article is being fetched; the
	// second listed article must not surface as a zero-valued record.
	cf := &cancellingFetcher{stub: f, cancel: cancel, on: "https://example.com/a1"}
	p := New(cf, 1, testLogger)

	records := p.Run(ctx, []config.CategorySource{
		anchorCategory("Politics", "https://example.com/politics"),
	})

	if len(records) != 1 {
		t.Fatalf("expected 1 processed record, got %d", len(records))
	}
	for _, r := range records {
		if r.Category == "" || r.Title == "" {
			t.Errorf("unprocessed zero-valued record leaked: %+v", r)
		}
		if r.KeywordDensity == nil {
			t.Errorf("record %q has nil density map", r.Title)
		}
	}
}

func TestRunConcurrencyIsDeterministic(t *testing.T) {
	f, categories := testFixture()

	sequential := New(f, 1, testLogger).Run(context.Background(), categories)
	concurrent := New(f, 4, testLogger).Run(context.Background(), categories)

	if !reflect.DeepEqual(sequential, concurrent) {
		t.Error("worker pool output differs from sequential output")
	}
}

func TestRunContentPreviewCapped(t *testing.T) {
	long := strings.Repeat("The committee published another lengthy update today. ", 20)
	f := &stubFetcher{
		pages: map[string]string{
			"https://example.com/politics": politicsListing,
			"https://example.com/a1":       "<html><body><article><p>" + long + "</p></article></body></html>",
			"https://example.com/a2":       "<html><body></body></html>",
		},
	}

	p := New(f, 1, testLogger)
	records := p.Run(context.Background(), []config.CategorySource{
		anchorCategory("Politics", "https://example.com/politics"),
	})

	if got := utf8.RuneCountInString(records[0].Content); got != previewLen {
		t.Errorf("preview length = %d, want %d", got, previewLen)
	}
}

func TestFilter(t *testing.T) {
	records := []types.ArticleRecord{
		{Category: "Politics", Title: "Senate passes budget deal"},
		{Category: "Business", Title: "Markets rally on jobs report"},
		{Category: "Politics", Title: "Governor signs energy bill"},
	}

	if got := Filter(records, "", ""); len(got) != 3 {
		t.Errorf("empty filter returned %d records", len(got))
	}
	if got := Filter(records, "Politics", ""); len(got) != 2 {
		t.Errorf("category filter returned %d records", len(got))
	}
	got := Filter(records, "", "BUDGET")
	if len(got) != 1 || got[0].Title != "Senate passes budget deal" {
		t.Errorf("title match is not case-insensitive: %+v", got)
	}
	if got := Filter(records, "Business", "budget"); len(got) != 0 {
		t.Errorf("combined filter returned %d records", len(got))
	}
}

func TestBaseURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"https://abcnews.go.com/Politics", "https://abcnews.go.com"},
		{"http://example.com/a/b?c=d", "http://example.com"},
	}
	for _, tc := range cases {
		if got := baseURL(tc.in); got != tc.want {
			t.Errorf("baseURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
