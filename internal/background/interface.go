// Package background prepares the video layer that captions are burned onto.
package background

import "context"

// Input is a ready-to-use ffmpeg input: the flags that precede and include "-i".
type Input struct {
	Args []string
	// Path is the local file backing the input, empty for generated sources.
	Path string
}

// Provider prepares a background input inside dir.
type Provider interface {
	Prepare(ctx context.Context, dir string, index int) (Input, error)
}
