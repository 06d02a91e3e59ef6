package extract

import (
	"bytes"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/newslens/newslens/internal/types"
)

// minParagraphLen filters boilerplate and captions: only paragraphs
// whose trimmed text exceeds this many characters count as body text.
const minParagraphLen = 50

// ContentExtractor isolates an article page's main textual body and its
// SEO metadata fields.
type ContentExtractor struct {
	logger *slog.Logger
}

// NewContentExtractor creates a new content extractor.
func NewContentExtractor(logger *slog.Logger) *ContentExtractor {
	return &ContentExtractor{
		logger: logger.With("component", "content_extractor"),
	}
}

// Extract parses article markup into body text and metadata. Paragraphs
// inside the first <article> block are preferred; when the page has no
// such block, all paragraphs in the document are considered. Missing
// metadata fields get their sentinel defaults; an empty body becomes
// the "No relevant content found." sentinel.
func (e *ContentExtractor) Extract(markup []byte) (types.ArticleContent, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return types.ArticleContent{}, &types.ParseError{Err: err}
	}

	var paragraphs *goquery.Selection
	if article := doc.Find("article").First(); article.Length() > 0 {
		paragraphs = article.Find("p")
	} else {
		paragraphs = doc.Find("p")
	}

	var kept []string
	paragraphs.Each(func(i int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(text) > minParagraphLen {
			kept = append(kept, text)
		}
	})

	body := strings.Join(kept, " ")
	if body == "" {
		body = types.NoContent
	}

	e.logger.Debug("content extracted", "paragraphs", paragraphs.Length(), "kept", len(kept))

	return types.ArticleContent{
		Body:            body,
		MetaTitle:       textOrDefault(doc.Find("title").First().Text(), types.NoTitle),
		MetaDescription: metaOrDefault(doc, "description", types.NoDescription),
		MetaKeywords:    metaOrDefault(doc, "keywords", types.NoKeywords),
	}, nil
}

// textOrDefault trims the text and substitutes the sentinel when empty.
func textOrDefault(text, sentinel string) string {
	if t := strings.TrimSpace(text); t != "" {
		return t
	}
	return sentinel
}

// metaOrDefault reads a meta tag's content attribute, substituting the
// sentinel when the tag or its content is absent.
func metaOrDefault(doc *goquery.Document, name, sentinel string) string {
	content, _ := doc.Find(`meta[name="` + name + `"]`).First().Attr("content")
	return textOrDefault(content, sentinel)
}
