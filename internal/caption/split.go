package caption

import (
	"strings"
	"unicode"
)

// isTerminator reports whether r ends a sentence.
func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '。', '！', '？':
		return true
	}
	return false
}

// splitSentences cuts text after each run of terminators. An ASCII run must be
// followed by whitespace or the end of the text, so "3.5" stays in one piece;
// full-width terminators cut unconditionally. Fragments that are empty after
// trimming are dropped.
func splitSentences(text string) []string {
	runes := []rune(text)
	var units []string
	begin := 0

	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		j := i
		for j+1 < len(runes) && isTerminator(runes[j+1]) {
			j++
		}
		if runes[j] < unicode.MaxASCII && j+1 < len(runes) && !unicode.IsSpace(runes[j+1]) {
			i = j
			continue
		}
		if s := strings.TrimSpace(string(runes[begin : j+1])); s != "" {
			units = append(units, s)
		}
		begin = j + 1
		i = j
	}

	if s := strings.TrimSpace(string(runes[begin:])); s != "" {
		units = append(units, s)
	}
	return units
}

// wordCount is the weight of a unit. Units without words (e.g. "...") count as one.
func wordCount(unit string) int {
	n := len(strings.Fields(unit))
	if n == 0 {
		return 1
	}
	return n
}

// Sentences returns the sentence units Synchronize would time, in order.
func Sentences(text string) []string {
	return splitSentences(text)
}
