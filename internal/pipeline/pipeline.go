package pipeline

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/newslens/newslens/internal/analyze"
	"github.com/newslens/newslens/internal/config"
	"github.com/newslens/newslens/internal/extract"
	"github.com/newslens/newslens/internal/fetcher"
	"github.com/newslens/newslens/internal/types"
)

// previewLen caps the content preview carried in each record.
const previewLen = 500

// Pipeline drives link discovery, content fetch, and metric computation
// for the configured categories, producing one ArticleRecord per listed
// article.
type Pipeline struct {
	fetcher   fetcher.Fetcher
	links     *extract.LinkExtractor
	content   *extract.ContentExtractor
	sentiment *analyze.SentimentAnalyzer
	seo       *analyze.SEOAnalyzer
	workers   int
	logger    *slog.Logger
}

// New creates a pipeline. workers bounds the per-article fetch+analyze
// pool; values below 1 are treated as 1 (strictly sequential).
func New(f fetcher.Fetcher, workers int, logger *slog.Logger) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		fetcher:   f,
		links:     extract.NewLinkExtractor(logger),
		content:   extract.NewContentExtractor(logger),
		sentiment: analyze.NewSentimentAnalyzer(),
		seo:       analyze.NewSEOAnalyzer(nil),
		workers:   workers,
		logger:    logger.With("component", "pipeline"),
	}
}

// Run processes every category in configuration order and returns the
// full record list, category-major, listing order within each category.
// A category whose listing fetch or parse fails contributes zero records
// and never aborts the run; per-article failures degrade into
// sentinel-filled records.
func (p *Pipeline) Run(ctx context.Context, categories []config.CategorySource) []types.ArticleRecord {
	var out []types.ArticleRecord

	for _, cat := range categories {
		if ctx.Err() != nil {
			break
		}
		out = append(out, p.runCategory(ctx, cat)...)
	}

	return out
}

// runCategory scrapes one listing page and assembles its records.
func (p *Pipeline) runCategory(ctx context.Context, cat config.CategorySource) []types.ArticleRecord {
	base := baseURL(cat.URL)

	res, err := p.fetcher.Fetch(ctx, cat.URL)
	if err != nil {
		p.logger.Error("listing fetch failed", "category", cat.Name, "url", cat.URL, "error", err)
		return nil
	}

	refs, err := p.links.Extract(res.Body, cat.Title, cat.Link, base)
	if err != nil {
		p.logger.Error("listing parse failed", "category", cat.Name, "url", cat.URL, "error", err)
		return nil
	}

	p.logger.Info("articles scraped", "category", cat.Name, "url", cat.URL, "articles", len(refs))

	if len(refs) == 0 {
		return nil
	}

	records := make([]types.ArticleRecord, len(refs))

	workerCount := p.workers
	if workerCount > len(refs) {
		workerCount = len(refs)
	}

	// Workers write results by index so the concurrent run is
	// indistinguishable from the sequential one.
	jobCh := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobCh {
				records[idx] = p.buildRecord(ctx, cat.Name, refs[idx])
			}
		}()
	}

	// Indices are dispatched in order, so on cancellation the processed
	// records are exactly the prefix that was fed before the break.
	sent := 0
	for idx := range refs {
		if ctx.Err() != nil {
			break
		}
		jobCh <- idx
		sent++
	}
	close(jobCh)
	wg.Wait()

	return records[:sent]
}

// buildRecord fetches one article and computes its metrics. Fetch and
// parse failures become sentinel bodies with empty metadata; the record
// is assembled either way.
func (p *Pipeline) buildRecord(ctx context.Context, category string, ref types.ArticleRef) types.ArticleRecord {
	content := p.fetchContent(ctx, ref.URL)

	sentiment := p.sentiment.Polarity(content.Body)
	metrics := p.seo.Analyze(content.Body)

	return types.ArticleRecord{
		Category:        category,
		Title:           ref.Title,
		URL:             ref.URL,
		Sentiment:       sentiment,
		MetaTitle:       content.MetaTitle,
		MetaDescription: content.MetaDescription,
		MetaKeywords:    content.MetaKeywords,
		KeywordDensity:  metrics.KeywordDensity,
		Readability:     metrics.Readability,
		Content:         preview(content.Body),
	}
}

// fetchContent retrieves and extracts one article, converting typed
// failures into their sentinel bodies at this boundary.
func (p *Pipeline) fetchContent(ctx context.Context, rawURL string) types.ArticleContent {
	if rawURL == "" {
		return types.ArticleContent{Body: types.BodyNoURL}
	}

	res, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		p.logger.Error("article fetch failed", "url", rawURL, "error", err)
		return types.ArticleContent{Body: types.SentinelBody(err)}
	}

	content, err := p.content.Extract(res.Body)
	if err != nil {
		p.logger.Error("article parse failed", "url", rawURL, "error", err)
		return types.ArticleContent{Body: types.SentinelBody(err)}
	}

	return content
}

// Filter returns the records matching a category name and/or a
// case-insensitive title substring. Empty arguments match everything.
func Filter(records []types.ArticleRecord, category, titleMatch string) []types.ArticleRecord {
	if category == "" && titleMatch == "" {
		return records
	}
	match := strings.ToLower(titleMatch)
	out := make([]types.ArticleRecord, 0, len(records))
	for _, r := range records {
		if category != "" && r.Category != category {
			continue
		}
		if match != "" && !strings.Contains(strings.ToLower(r.Title), match) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// baseURL derives scheme://host from a listing URL for relative-link
// resolution.
func baseURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Scheme + "://" + u.Host
}

// preview returns the first 500 characters of the body.
func preview(body string) string {
	runes := []rune(body)
	if len(runes) <= previewLen {
		return body
	}
	return string(runes[:previewLen])
}
