package narration

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/caption"
)

// DefaultFallbackTemplate is used when no generator is configured or all of them fail.
const DefaultFallbackTemplate = `Legal insight for {date}: {topic}.
Most people do not know the simple steps the law already gives them.
Write down every date, keep receipts and screenshots, and put every complaint in writing.
Use the official portal or helpline first, because time limits apply.
If nobody responds, escalate to the grievance officer, the consumer commission or the police.
Knowledge is your best legal protection.
Follow for a new legal tip every day!`

// Fallback fills the template placeholders {topic} and {date}.
func Fallback(template, topic string, now time.Time) string {
	if strings.TrimSpace(template) == "" {
		template = DefaultFallbackTemplate
	}
	r := strings.NewReplacer(
		"{topic}", topic,
		"{date}", now.Format("January 2006"),
	)
	return r.Replace(template)
}

// Validate rejects text that is too short or not made of sentences.
// Sentences are counted the way captions are cut, so "3.5" is not a break.
func Validate(text string, minChars int) error {
	text = strings.TrimSpace(text)
	if n := len([]rune(text)); n < minChars {
		return fmt.Errorf("too short: %d chars, need %d", n, minChars)
	}
	if n := len(caption.Sentences(text)); n < 2 {
		return fmt.Errorf("expected at least 2 sentences, got %d", n)
	}
	return nil
}

// Clean turns generated or templated text into something a voice can read:
// hashtags, markdown emphasis, bullets and emoji are removed. A line break
// ends a sentence only after a bullet or heading line, or before a blank line;
// hard-wrapped lines are joined back together.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	var sentences, pending []string

	flush := func() {
		sentence := strings.TrimRight(strings.Join(pending, " "), ":;,- ")
		pending = nil
		if sentence == "" {
			return
		}
		if last := []rune(sentence)[len([]rune(sentence))-1]; !strings.ContainsRune(".!?", last) {
			sentence += "."
		}
		sentences = append(sentences, sentence)
	}

	for i, line := range lines {
		bullet := isBullet(line)
		if bullet {
			flush()
		}
		pending = append(pending, speakableWords(line)...)

		heading := strings.HasSuffix(strings.TrimSpace(stripSymbols(line)), ":")
		nextBlank := i+1 == len(lines) || strings.TrimSpace(lines[i+1]) == ""
		if bullet || heading || nextBlank {
			flush()
		}
	}
	flush()

	return strings.Join(sentences, " ")
}

func isBullet(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}

func speakableWords(line string) []string {
	var words []string
	for _, w := range strings.Fields(stripSymbols(line)) {
		if strings.HasPrefix(w, "#") {
			continue
		}
		w = strings.NewReplacer("**", "", "__", "", "`", "").Replace(w)
		if w == "" || w == "-" || w == "*" {
			continue
		}
		words = append(words, w)
	}
	return words
}

// stripSymbols drops emoji, pictographs and bullet glyphs.
func stripSymbols(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u200d', r == '\ufe0e', r == '\ufe0f', r == '•':
			return -1
		case unicode.Is(unicode.So, r), unicode.Is(unicode.Sk, r):
			return -1
		}
		return r
	}, s)
}

// Trim keeps whole leading sentences while the word count stays within
// maxWords. The first sentence is always kept.
func Trim(text string, maxWords int) string {
	if maxWords <= 0 || len(strings.Fields(text)) <= maxWords {
		return strings.TrimSpace(text)
	}

	var kept []string
	words := 0
	for _, s := range caption.Sentences(text) {
		n := len(strings.Fields(s))
		if len(kept) > 0 && words+n > maxWords {
			break
		}
		kept = append(kept, s)
		words += n
	}
	return strings.Join(kept, " ")
}
