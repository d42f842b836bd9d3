// Package caption splits narration into timed on-screen chunks that cover the
// spoken audio exactly.
package caption

import "errors"

var (
	// ErrEmptyInput is returned when the narration has no usable text.
	ErrEmptyInput = errors.New("caption: narration text is empty")
	// ErrInvalidDuration is returned when the spoken duration is not a positive finite number.
	ErrInvalidDuration = errors.New("caption: spoken duration must be positive")
)

// Chunk is one unit of caption text shown during [Start, End) seconds.
// Text is already wrapped, lines are separated by "\n".
type Chunk struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Duration returns End - Start.
func (c Chunk) Duration() float64 {
	return c.End - c.Start
}

// Config controls wrapping and per-chunk duration bounds.
// A zero field disables the behaviour it controls.
type Config struct {
	MaxCharsPerLine int     `yaml:"max_chars_per_line"`
	MinChunkSeconds float64 `yaml:"min_chunk_seconds"`
	MaxChunkSeconds float64 `yaml:"max_chunk_seconds"`
}

// DefaultConfig matches a 1080x1920 frame with a 52pt bold font.
func DefaultConfig() Config {
	return Config{
		MaxCharsPerLine: 28,
		MinChunkSeconds: 2.0,
		MaxChunkSeconds: 5.0,
	}
}
