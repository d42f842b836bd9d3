// Package review writes a human-readable review document for each produced video.
package review

import (
	"fmt"
	"math"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/caption"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// Document is everything a reviewer needs to sign off a video.
type Document struct {
	Title     string
	Topic     string
	Source    string
	Narration string
	Duration  float64
	Chunks    []caption.Chunk
}

// WriteDocx saves the narration and its caption timeline as a .docx file.
func WriteDocx(path string, d Document) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), d.Title, true, 16)
	addLabelled(doc.AddParagraph(""), "Topic: ", d.Topic)
	addLabelled(doc.AddParagraph(""), "Narration source: ", d.Source)
	addLabelled(doc.AddParagraph(""), "Spoken duration: ", fmt.Sprintf("%.2fs", d.Duration))
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Narration", true, 15)
	for _, s := range caption.Sentences(d.Narration) {
		addStyledRun(doc.AddParagraph(""), s, false, fontSize)
	}
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Caption timeline", true, 15)
	for _, line := range TimelineLines(d.Chunks) {
		addStyledRun(doc.AddParagraph(""), line, false, fontSize)
	}

	return doc.SaveTo(path)
}

// TimelineLines renders one "mm:ss.s – mm:ss.s  text" line per chunk.
func TimelineLines(chunks []caption.Chunk) []string {
	lines := make([]string, len(chunks))
	for i, c := range chunks {
		text := strings.Join(strings.Fields(c.Text), " ")
		lines[i] = fmt.Sprintf("%s – %s  %s", clock(c.Start), clock(c.End), text)
	}
	return lines
}

func clock(sec float64) string {
	ds := int64(math.Round(sec * 10))
	return fmt.Sprintf("%02d:%02d.%d", ds/600, ds/10%60, ds%10)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addLabelled(p *docx.Paragraph, label, value string) {
	p.AddText(label).Font(fontName).Size(fontSize).Color("000000").Bold(true)
	p.AddText(value).Font(fontName).Size(fontSize).Color("000000")
}
