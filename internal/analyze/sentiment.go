package analyze

import (
	"math"
	"strings"
)

// SentimentAnalyzer maps article text to a polarity score in [-1, 1]
// using the embedded valence lexicon with negation and intensifier
// handling.
type SentimentAnalyzer struct{}

// NewSentimentAnalyzer creates a new sentiment analyzer.
func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{}
}

// Polarity scores the text. Empty text and error-sentinel bodies (any
// text with the literal "Error" prefix) score 0.0 without touching the
// lexicon — degraded records must not read as substantive sentiment.
// Otherwise the result is the average valence of matched tokens, clamped
// to [-1, 1] and rounded to 3 decimals; text with no lexicon hits
// scores 0.0.
func (a *SentimentAnalyzer) Polarity(text string) float64 {
	if text == "" || strings.HasPrefix(text, "Error") {
		return 0.0
	}

	tokens := strings.Fields(text)
	var sum float64
	var matched int

	for i, raw := range tokens {
		word := normalizeToken(raw)
		score, ok := valence[word]
		if !ok {
			continue
		}

		// Look back up to two tokens for a negator or intensifier.
		for back := 1; back <= 2 && i-back >= 0; back++ {
			prev := normalizeToken(tokens[i-back])
			if _, neg := negators[prev]; neg {
				score = -0.5 * score
				break
			}
			if scale, ok := intensifiers[prev]; ok {
				score *= scale
				break
			}
		}

		sum += clamp(score, -1.0, 1.0)
		matched++
	}

	if matched == 0 {
		return 0.0
	}
	return round(clamp(sum/float64(matched), -1.0, 1.0), 3)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round rounds half away from zero to the given number of decimals.
func round(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
