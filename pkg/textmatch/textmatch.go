// Package textmatch finds the contiguous span of an OCR word corpus that
// best matches a free-form query phrase.
//
// Two matching strategies are provided as distinct, documented behaviors;
// callers may depend on either tie-break direction, so they are deliberately
// not unified:
//
//   - Align / AlignWords: a forward sliding-window scan over pre-tokenized
//     corpus words using positional token equality, with a fuzzy fallback
//     stage for noisy OCR output. Ties resolve to the first (lowest start
//     index) window.
//   - AlignMarked: the legacy character-oriented variant that accepts a
//     marker-annotated corpus string, scans candidate windows from the end
//     of the corpus backward, and derives a bounding box from structural
//     line markers. Ties resolve to the last (highest start index) window.
//
// The similarity model is intentionally a simple positional/character-overlap
// heuristic, not edit distance: a token that matches but is shifted by one
// position scores zero for that position.
//
// No-match conditions (empty query, empty corpus, query longer than corpus,
// nothing above the acceptance threshold) are normal outcomes and yield a
// nil result, never an error. Results carry structured diagnostics instead
// of side-channel logging, so the matcher stays a pure function.
package textmatch

// Scoring thresholds shared by the matching strategies.
const (
	// highConfidence stops the forward scan early once a window scores at
	// least this much. A cost bound, not a correctness requirement.
	highConfidence = 0.95

	// fuzzyTrigger enables the fuzzy fallback stage when the best primary
	// score falls below it.
	fuzzyTrigger = 0.8

	// fuzzyFloor is the minimum score a fuzzy candidate must exceed to
	// replace the best-known match.
	fuzzyFloor = 0.6

	// legacyConfidence stops the backward legacy scan early once a window
	// exceeds it.
	legacyConfidence = 0.85
)
