package caption

import (
	"strings"

	"github.com/rivo/uniseg"
)

// wrap breaks text into lines of at most width grapheme clusters, breaking
// between words. Words longer than width are split across lines.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var line strings.Builder
	lineLen := 0

	flush := func() {
		if lineLen > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
	}

	for _, word := range words {
		wlen := uniseg.GraphemeClusterCount(word)

		if wlen > width {
			flush()
			for _, piece := range splitGraphemes(word, width) {
				lines = append(lines, piece)
			}
			// the tail of a split word keeps the line open for the next word
			last := lines[len(lines)-1]
			lines = lines[:len(lines)-1]
			line.WriteString(last)
			lineLen = uniseg.GraphemeClusterCount(last)
			continue
		}

		if lineLen > 0 && lineLen+1+wlen > width {
			flush()
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(word)
		lineLen += wlen
	}
	flush()

	return lines
}

// splitGraphemes cuts s into pieces of at most n grapheme clusters.
func splitGraphemes(s string, n int) []string {
	var pieces []string
	var cur strings.Builder
	count := 0

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if count == n {
			pieces = append(pieces, cur.String())
			cur.Reset()
			count = 0
		}
		cur.WriteString(g.Str())
		count++
	}
	if count > 0 {
		pieces = append(pieces, cur.String())
	}
	return pieces
}
