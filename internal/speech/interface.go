// Package speech turns narration into an audio file and measures it.
package speech

import "context"

// Synthesizer renders text to an audio file at outPath.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, outPath string) error
}

// Prober reports the playback length of an audio or video file in seconds.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}
