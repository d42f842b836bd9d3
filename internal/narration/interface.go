// Package narration produces the spoken script for a topic.
package narration

import "context"

// Generator produces narration text for a topic.
type Generator interface {
	Name() string
	Generate(ctx context.Context, topic string) (string, error)
}
