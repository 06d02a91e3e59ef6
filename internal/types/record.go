package types

import (
	"encoding/json"
	"strconv"
)

// Sentinel defaults for missing SEO metadata.
const (
	NoContent     = "No relevant content found."
	NoTitle       = "No Title"
	NoDescription = "No Description"
	NoKeywords    = "No Keywords"
)

// ArticleRef is one (title, link) pair discovered on a listing page.
// URL is empty when the listing carried no resolvable link for the title.
type ArticleRef struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// ArticleContent is the extracted body text and SEO metadata of one
// article page. Metadata fields hold sentinel defaults ("No Title" etc.)
// when the page omits them, and are empty on fetch failure.
type ArticleContent struct {
	Body            string `json:"body"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
}

// Readability holds the two Flesch scores. Valid is false when the text
// had no words to score; exports render "N/A" in that case.
type Readability struct {
	FleschReadingEase  float64
	FleschKincaidGrade float64
	Valid              bool
}

// EaseString renders the reading-ease score for delimited export.
func (r Readability) EaseString() string {
	if !r.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(r.FleschReadingEase, 'f', -1, 64)
}

// GradeString renders the grade-level score for delimited export.
func (r Readability) GradeString() string {
	if !r.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(r.FleschKincaidGrade, 'f', -1, 64)
}

// MarshalJSON emits numeric scores, or the string "N/A" for both fields
// when the text could not be scored.
func (r Readability) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return json.Marshal(map[string]string{
			"flesch_reading_ease":  "N/A",
			"flesch_kincaid_grade": "N/A",
		})
	}
	return json.Marshal(map[string]float64{
		"flesch_reading_ease":  r.FleschReadingEase,
		"flesch_kincaid_grade": r.FleschKincaidGrade,
	})
}

// SeoMetrics is the output of the SEO analyzer for one article body.
// KeywordDensity maps a content word to its share of the article's total
// word count, in percent rounded to 2 decimals. Only words occurring more
// than twice appear; the map is empty (never nil) for empty bodies.
type SeoMetrics struct {
	KeywordDensity map[string]float64 `json:"keyword_density"`
	Readability    Readability        `json:"readability"`
}

// ArticleRecord is the pipeline's sole output unit: one per listed
// article, assembled regardless of whether the article fetch succeeded.
type ArticleRecord struct {
	Category        string             `json:"category"`
	Title           string             `json:"title"`
	URL             string             `json:"url,omitempty"`
	Sentiment       float64            `json:"sentiment"`
	MetaTitle       string             `json:"meta_title"`
	MetaDescription string             `json:"meta_description"`
	MetaKeywords    string             `json:"meta_keywords"`
	KeywordDensity  map[string]float64 `json:"keyword_density"`
	Readability     Readability        `json:"readability"`
	Content         string             `json:"content"`
}
