package analyze

import (
	"strings"
	"unicode"

	"github.com/newslens/newslens/internal/types"
)

// readability computes the two Flesch scores over the original,
// unfiltered text using the published formulas:
//
//	reading ease = 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
//	grade level  = 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59
//
// Both are rounded to 2 decimals. Text with no words is not scorable.
func readability(text string) types.Readability {
	words := strings.Fields(text)
	if len(words) == 0 {
		return types.Readability{}
	}

	sentences := countSentences(text)
	var syllables int
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))

	return types.Readability{
		FleschReadingEase:  round(206.835-1.015*wordsPerSentence-84.6*syllablesPerWord, 2),
		FleschKincaidGrade: round(0.39*wordsPerSentence+11.8*syllablesPerWord-15.59, 2),
		Valid:              true,
	}
}

// countSentences counts runs of terminal punctuation, treating the whole
// text as one sentence when none is found.
func countSentences(text string) int {
	count := 0
	inTerminator := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inTerminator {
				count++
				inTerminator = true
			}
		default:
			inTerminator = false
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

// countSyllables estimates syllables in a word by counting vowel groups,
// with a silent-e adjustment. Every word counts as at least one.
func countSyllables(word string) int {
	var letters []rune
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range letters {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// Trailing silent e: "make" has one spoken syllable, "maple" two.
	n := len(letters)
	if n >= 3 && letters[n-1] == 'e' && !isVowel(letters[n-2]) && count > 1 {
		if !(letters[n-2] == 'l' && !isVowel(letters[n-3])) {
			count--
		}
	}

	if count < 1 {
		return 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
