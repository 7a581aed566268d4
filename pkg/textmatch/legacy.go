package textmatch

import (
	"strconv"
	"strings"

	"github.com/hallgrim/docanchor/pkg/hocr"
)

// LegacyResult is the outcome of the legacy marked-text matching path. In
// addition to the matched word range it carries a bounding box derived from
// the structural line markers surrounding the match. An all-zero box means
// no usable box was found, not a valid rectangle at the origin. A match with
// no markers inside its span comes out with inverted edges, which is equally
// unusable; consumers should reject any box that is Degenerate.
type LegacyResult struct {
	Result
	Box hocr.BoundingBox
}

// markedToken is one whitespace-delimited element of a marked-text string.
// Structural markers ("[[PARAGRAPH]]", "[[LINE x1 y1 x2 y2]]") are kept
// intact as single tokens even though line markers contain spaces.
type markedToken struct {
	text   string
	marker bool
}

// AlignMarked matches a query phrase against a marker-annotated corpus
// string. Unlike Align it scans candidate end-positions from the end of the
// corpus backward and stops once a window exceeds the legacy confidence
// threshold, so ties resolve to the last (highest start index) qualifying
// window. Window text is compared to the query character by character.
//
// The result's bounding box comes from line markers rather than word boxes:
// the top-left corner from the last marker before the match, the right edge
// from the widest marker inside the match, and the bottom edge from the last
// marker inside the match.
func AlignMarked(marked, query string) *LegacyResult {
	if marked == "" || query == "" {
		return nil
	}

	tokens := tokenizeMarked(marked)

	// Word positions within the token stream, markers excluded
	var wordTokens []int
	var words []string
	for i, tok := range tokens {
		if !tok.marker {
			wordTokens = append(wordTokens, i)
			words = append(words, tok.text)
		}
	}

	queryWords := strings.Fields(query)
	windowSize := len(queryWords)
	if windowSize == 0 || len(words) < windowSize {
		return nil
	}

	bestSimilarity := 0.0
	bestStart := -1

	for end := len(words); end >= windowSize; end-- {
		start := end - windowSize
		windowText := strings.Join(words[start:end], " ")
		similarity := charSimilarity(windowText, query)

		if similarity > bestSimilarity {
			bestSimilarity = similarity
			bestStart = start
		}
		if bestSimilarity > legacyConfidence {
			break
		}
	}

	if bestStart < 0 {
		return nil
	}

	result := &LegacyResult{
		Result: Result{
			Start:      bestStart,
			End:        bestStart + windowSize,
			Similarity: bestSimilarity,
			Text:       strings.Join(words[bestStart:bestStart+windowSize], " "),
			Diagnostics: Diagnostics{
				CorpusWords: len(words),
				QueryWords:  windowSize,
				BestPrimary: bestSimilarity,
			},
		},
	}
	result.Box = boxFromLineMarkers(tokens, wordTokens[bestStart], wordTokens[bestStart+windowSize-1])
	return result
}

// boxFromLineMarkers derives a bounding box for the token span
// [spanStart, spanEnd] from the line markers around it. The top-left corner
// comes from the last line marker before the span. Within the span the
// right edge is the maximum marker x2, while the bottom edge is the y2 of
// the last marker, even when an earlier line in the span was taller.
// Returns the all-zero sentinel when no line markers exist at all.
func boxFromLineMarkers(tokens []markedToken, spanStart, spanEnd int) hocr.BoundingBox {
	var x1, y1, y2 float64

	for i := spanStart - 1; i >= 0; i-- {
		if coords, ok := parseLineMarker(tokens[i]); ok {
			x1, y1 = coords[0], coords[1]
			break
		}
	}

	maxX2 := x1
	for i := spanStart; i <= spanEnd && i < len(tokens); i++ {
		if coords, ok := parseLineMarker(tokens[i]); ok {
			if coords[2] > maxX2 {
				maxX2 = coords[2]
			}
			y2 = coords[3]
		}
	}

	return hocr.NewBoundingBox(x1, y1, maxX2, y2)
}

// parseLineMarker extracts the four bbox coordinates from a
// "[[LINE x1 y1 x2 y2]]" token. Malformed markers are skipped, not fatal.
func parseLineMarker(tok markedToken) ([4]float64, bool) {
	var coords [4]float64
	if !tok.marker {
		return coords, false
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(tok.text, "[["), "]]")
	fields := strings.Fields(inner)
	if len(fields) < 5 || fields[0] != "LINE" {
		return coords, false
	}

	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return coords, false
		}
		coords[i] = v
	}
	return coords, true
}

// tokenizeMarked splits a marked-text string on whitespace while keeping
// "[[...]]" structural markers intact as single tokens.
func tokenizeMarked(s string) []markedToken {
	var tokens []markedToken

	i := 0
	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}

		if strings.HasPrefix(s[i:], "[[") {
			if end := strings.Index(s[i:], "]]"); end >= 0 {
				tokens = append(tokens, markedToken{text: s[i : i+end+2], marker: true})
				i += end + 2
				continue
			}
		}

		j := i
		for j < len(s) && !isSpace(s[j]) {
			j++
		}
		tokens = append(tokens, markedToken{text: s[i:j]})
		i = j
	}

	return tokens
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
