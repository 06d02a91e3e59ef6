package analyze

import (
	"strings"

	"github.com/newslens/newslens/internal/types"
)

// tokenPunctuation is the fixed set of punctuation stripped from the
// ends of each token before stopword filtering.
const tokenPunctuation = `.,!?;:()[]"'`

// SEOAnalyzer maps article text to a keyword-density table and two
// readability scores. The stopword set is injected at construction so
// tests can run with a deterministic set.
type SEOAnalyzer struct {
	stopwords map[string]struct{}
}

// NewSEOAnalyzer creates an SEO analyzer. A nil stopword set selects the
// embedded English default.
func NewSEOAnalyzer(stopwords map[string]struct{}) *SEOAnalyzer {
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	return &SEOAnalyzer{stopwords: stopwords}
}

// Analyze computes keyword density and readability for the text.
//
// Density counts normalized non-stopword tokens and keeps only those
// occurring more than twice; a word seen exactly twice is excluded. The
// denominator is the raw whitespace word count, not the filtered count:
// density reflects a word's share of the full article. Readability is
// computed over the original, unfiltered text. Empty text yields an
// empty (non-nil) density map and non-scorable readability.
func (a *SEOAnalyzer) Analyze(text string) types.SeoMetrics {
	density := make(map[string]float64)

	words := strings.Fields(text)
	wordCount := len(words)
	if wordCount == 0 {
		return types.SeoMetrics{KeywordDensity: density}
	}

	freq := make(map[string]int, wordCount)
	for _, raw := range words {
		word := normalizeToken(raw)
		if word == "" {
			continue
		}
		if _, stop := a.stopwords[word]; stop {
			continue
		}
		freq[word]++
	}

	for word, count := range freq {
		if count > 2 {
			density[word] = round(float64(count)/float64(wordCount)*100, 2)
		}
	}

	return types.SeoMetrics{
		KeywordDensity: density,
		Readability:    readability(text),
	}
}

// normalizeToken strips surrounding punctuation and lowercases.
func normalizeToken(raw string) string {
	return strings.ToLower(strings.Trim(raw, tokenPunctuation))
}
