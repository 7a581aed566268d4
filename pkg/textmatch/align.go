package textmatch

import (
	"strings"

	"github.com/hallgrim/docanchor/pkg/hocr"
)

// Diagnostics describes what the matcher saw, returned alongside the result
// so hosts can report on match quality without the matcher logging anything.
type Diagnostics struct {
	CorpusWords int     // Token count of the cleaned corpus
	QueryWords  int     // Token count of the query
	BestPrimary float64 // Best score found by the primary positional scan
	FuzzyUsed   bool    // Whether the fuzzy fallback produced the final match
}

// Result is a matched word range: a half-open index range [Start, End) into
// the cleaned corpus word sequence, with the similarity that produced it.
type Result struct {
	Start       int
	End         int
	Similarity  float64
	Text        string // Matched corpus tokens joined with spaces
	Diagnostics Diagnostics
}

// Align finds the contiguous window of corpus tokens that best matches the
// query tokens. Comparison is exact per token, so callers should pass the
// same normalization on both sides.
//
// The primary scan slides a window of the query's length forward across the
// corpus, scoring positional token equality and keeping the first best
// window; it stops early once a window reaches the high-confidence
// threshold. When the primary score stays below the fuzzy trigger, a
// fallback stage retries with relaxed window lengths and per-token fuzzy
// scoring. A nil result means no match, which is a normal outcome.
func Align(corpus, query []string) *Result {
	diag := Diagnostics{
		CorpusWords: len(corpus),
		QueryWords:  len(query),
	}

	if len(query) == 0 || len(corpus) == 0 {
		return nil
	}
	if len(query) > len(corpus) {
		return nil
	}

	windowSize := len(query)
	var best *Result
	bestSimilarity := 0.0

	for i := 0; i <= len(corpus)-windowSize; i++ {
		window := corpus[i : i+windowSize]
		similarity := sequenceSimilarity(window, query)

		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = &Result{
				Start:      i,
				End:        i + windowSize,
				Similarity: similarity,
				Text:       strings.Join(window, " "),
			}

			// Early exit for high similarity matches
			if similarity >= highConfidence {
				break
			}
		}
	}

	diag.BestPrimary = bestSimilarity

	// If the positional scan didn't find a good match, try fuzzy matching
	if bestSimilarity < fuzzyTrigger {
		if fuzzy := findFuzzyMatch(corpus, query); fuzzy != nil && fuzzy.Similarity > bestSimilarity {
			fuzzy.Diagnostics = diag
			fuzzy.Diagnostics.FuzzyUsed = true
			return fuzzy
		}
	}

	if best == nil {
		return nil
	}
	best.Diagnostics = diag
	return best
}

// findFuzzyMatch relaxes the fixed window length and scores each candidate
// window with the better of token-wise fuzzy similarity and raw character
// overlap. A candidate counts only when it beats the acceptance floor.
func findFuzzyMatch(corpus, query []string) *Result {
	var best *Result
	bestSimilarity := 0.0

	minWindow := max(1, len(query)-2)
	maxWindow := min(len(corpus), len(query)+3)

	for windowSize := minWindow; windowSize <= maxWindow; windowSize++ {
		for i := 0; i+windowSize <= len(corpus); i++ {
			window := corpus[i : i+windowSize]

			fuzzy := fuzzySequenceSimilarity(window, query)
			chars := charSimilarity(strings.Join(window, ""), strings.Join(query, ""))
			similarity := max(fuzzy, chars)

			if similarity > bestSimilarity && similarity > fuzzyFloor {
				bestSimilarity = similarity
				best = &Result{
					Start:      i,
					End:        i + windowSize,
					Similarity: similarity,
					Text:       strings.Join(window, " "),
				}
			}
		}
	}

	return best
}

// AlignWords matches a query phrase against an ordered word corpus using
// each word's normalized form, and reports the matched range with the words'
// original display text.
func AlignWords(words []hocr.Word, query string) *Result {
	corpus := make([]string, len(words))
	for i, w := range words {
		corpus[i] = w.Normalized
	}

	result := Align(corpus, strings.Fields(strings.ToLower(query)))
	if result == nil {
		return nil
	}

	display := make([]string, 0, result.End-result.Start)
	for _, w := range words[result.Start:result.End] {
		display = append(display, w.Text)
	}
	result.Text = strings.Join(display, " ")
	return result
}
