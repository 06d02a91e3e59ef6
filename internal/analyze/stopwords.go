package analyze

import (
	_ "embed"
	"strings"
	"sync"
)

// English stopword list, one word per line. Embedded so the set is
// always available at process start; a missing stopword resource would
// otherwise be the one fatal configuration failure in the pipeline.
//
//go:embed stopwords.txt
var stopwordsRaw string

var (
	stopwordsOnce sync.Once
	stopwordsSet  map[string]struct{}
)

// DefaultStopwords returns the embedded English stopword set, loaded
// once. Callers must not modify the returned map.
func DefaultStopwords() map[string]struct{} {
	stopwordsOnce.Do(func() {
		stopwordsSet = make(map[string]struct{}, 200)
		for _, line := range strings.Split(stopwordsRaw, "\n") {
			word := strings.TrimSpace(line)
			if word != "" {
				stopwordsSet[word] = struct{}{}
			}
		}
	})
	return stopwordsSet
}
