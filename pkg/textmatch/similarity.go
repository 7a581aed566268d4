package textmatch

import "strings"

// sequenceSimilarity scores two token sequences by positional equality:
// the count of index-aligned equal tokens divided by the longer sequence's
// length. Two empty sequences are identical by definition.
func sequenceSimilarity(seq1, seq2 []string) float64 {
	maxLen := max(len(seq1), len(seq2))
	if maxLen == 0 {
		return 1.0
	}

	matches := 0
	for i := 0; i < len(seq1) && i < len(seq2); i++ {
		if seq1[i] == seq2[i] {
			matches++
		}
	}
	return float64(matches) / float64(maxLen)
}

// wordSimilarity scores a single aligned token pair: 1.0 when identical,
// 0.8 when one token is a substring of the other, otherwise the count of
// the shorter token's characters present in the longer token divided by
// the longer token's length.
func wordSimilarity(word1, word2 string) float64 {
	if word1 == word2 {
		return 1.0
	}
	if strings.Contains(word1, word2) || strings.Contains(word2, word1) {
		return 0.8
	}

	shorter, longer := []rune(word1), []rune(word2)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(longer) == 0 {
		return 0.0
	}

	matching := 0
	for _, r := range shorter {
		if strings.ContainsRune(string(longer), r) {
			matching++
		}
	}
	return float64(matching) / float64(len(longer))
}

// fuzzySequenceSimilarity averages pairwise wordSimilarity over aligned
// positions, normalized by the longer sequence's length so extra or missing
// tokens count against the score.
func fuzzySequenceSimilarity(seq1, seq2 []string) float64 {
	if len(seq1) == 0 && len(seq2) == 0 {
		return 1.0
	}
	if len(seq1) == 0 || len(seq2) == 0 {
		return 0.0
	}

	total := 0.0
	for i := 0; i < len(seq1) && i < len(seq2); i++ {
		total += wordSimilarity(seq1[i], seq2[i])
	}
	return total / float64(max(len(seq1), len(seq2)))
}

// charSimilarity compares two strings character by character up to the
// shorter string's length, divided by the longer string's length.
func charSimilarity(text1, text2 string) float64 {
	if text1 == text2 {
		return 1.0
	}

	chars1, chars2 := []rune(text1), []rune(text2)
	maxLen := max(len(chars1), len(chars2))
	if maxLen == 0 {
		return 1.0
	}

	matching := 0
	for i := 0; i < len(chars1) && i < len(chars2); i++ {
		if chars1[i] == chars2[i] {
			matching++
		}
	}
	return float64(matching) / float64(maxLen)
}
