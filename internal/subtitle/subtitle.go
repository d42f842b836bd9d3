// Package subtitle writes caption chunks as ASS (for burning) and SRT (as a sidecar).
package subtitle

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/caption"
)

// Style describes how burned captions look.
type Style struct {
	Width            int
	Height           int
	Font             string
	FontSize         int
	Outline          int
	EmphasisKeywords []string
}

const (
	styleDefault  = "Default"
	styleEmphasis = "Emphasis"
)

// WriteASS writes an Advanced SubStation Alpha script. Lines are already
// wrapped by the synchronizer, so libass wrapping is disabled.
func WriteASS(w io.Writer, chunks []caption.Chunk, style Style) error {
	var b strings.Builder

	b.WriteString("[Script Info]\n")
	b.WriteString("ScriptType: v4.00+\n")
	fmt.Fprintf(&b, "PlayResX: %d\n", style.Width)
	fmt.Fprintf(&b, "PlayResY: %d\n", style.Height)
	b.WriteString("WrapStyle: 2\n")
	b.WriteString("ScaledBorderAndShadow: yes\n\n")

	b.WriteString("[V4+ Styles]\n")
	b.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, " +
		"Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, " +
		"Alignment, MarginL, MarginR, MarginV, Encoding\n")
	margin := style.Width / 12
	// white on black outline, centred
	fmt.Fprintf(&b, "Style: %s,%s,%d,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,-1,0,0,0,100,100,0,0,1,%d,0,5,%d,%d,0,1\n",
		styleDefault, style.Font, style.FontSize, style.Outline, margin, margin)
	// white on a translucent red box
	fmt.Fprintf(&b, "Style: %s,%s,%d,&H00FFFFFF,&H000000FF,&H600000C8,&H600000C8,-1,0,0,0,100,100,0,0,3,%d,0,5,%d,%d,0,1\n\n",
		styleEmphasis, style.Font, style.FontSize, style.Outline*6, margin, margin)

	b.WriteString("[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for _, c := range chunks {
		name := styleDefault
		if IsEmphasis(c.Text, style.EmphasisKeywords) {
			name = styleEmphasis
		}
		fmt.Fprintf(&b, "Dialogue: 0,%s,%s,%s,,0,0,0,,%s\n",
			assTime(c.Start), assTime(c.End), name, assText(c.Text))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSRT writes a SubRip file.
func WriteSRT(w io.Writer, chunks []caption.Chunk) error {
	var b strings.Builder
	for i, c := range chunks {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", i+1, srtTime(c.Start), srtTime(c.End), c.Text)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// IsEmphasis reports whether text contains one of the keywords, ignoring case.
func IsEmphasis(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if k != "" && strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// assText escapes override braces and turns line breaks into \N.
func assText(s string) string {
	s = strings.NewReplacer("\\", "", "{", "(", "}", ")").Replace(s)
	return strings.ReplaceAll(s, "\n", `\N`)
}

// assTime formats seconds as H:MM:SS.cc.
func assTime(sec float64) string {
	cs := int64(math.Round(sec * 100))
	return fmt.Sprintf("%d:%02d:%02d.%02d", cs/360000, cs/6000%60, cs/100%60, cs%100)
}

// srtTime formats seconds as HH:MM:SS,mmm.
func srtTime(sec float64) string {
	ms := int64(math.Round(sec * 1000))
	return fmt.Sprintf("%02d:%02d:%02d,%03d", ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}
