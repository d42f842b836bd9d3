package processor

import (
	"context"
	"time"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/caption"
)

// Processor runs the short-video pipeline
type Processor interface {
	Process(ctx context.Context, job Job) (*Result, error)
	ProcessFile(ctx context.Context, path string) error
}

// Job selects what one run produces. Zero values mean "use the defaults":
// the topic of the day and generated narration.
type Job struct {
	Topic     string
	Narration string
	// Source labels where Narration came from, e.g. "file:tenant.txt".
	Source string
	Now    time.Time
}

// Result describes the files produced by one run
type Result struct {
	VariationID  string
	Title        string
	Topic        string
	Source       string
	Narration    string
	Duration     float64
	Chunks       []caption.Chunk
	VideoPath    string
	SubtitlePath string
	ReviewPath   string
	Delivered    bool
}
