package caption

import (
	"math"
	"strings"
)

// Synchronize partitions narration into display chunks and assigns each a
// gapless, non-overlapping interval so that the chunks cover [0, total] exactly.
//
// Sentence order is preserved. Each sentence gets screen time proportional to
// its word count, bounded by cfg.MinChunkSeconds and cfg.MaxChunkSeconds when
// there is more than one sentence. Wrapping never changes timing.
func Synchronize(narration string, total float64, cfg Config) ([]Chunk, error) {
	if strings.TrimSpace(narration) == "" {
		return nil, ErrEmptyInput
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return nil, ErrInvalidDuration
	}

	units := splitSentences(narration)
	if len(units) == 0 {
		units = []string{strings.TrimSpace(narration)}
	}

	weights := make([]float64, len(units))
	for i, u := range units {
		weights[i] = float64(wordCount(u))
	}
	durations := allocate(weights, total, cfg.MinChunkSeconds, cfg.MaxChunkSeconds)

	chunks := make([]Chunk, len(units))
	start := 0.0
	for i, u := range units {
		end := start + durations[i]
		if i == len(units)-1 {
			end = total
		}
		chunks[i] = Chunk{
			Text:  strings.Join(wrap(u, cfg.MaxCharsPerLine), "\n"),
			Start: start,
			End:   end,
		}
		start = end
	}

	return chunks, nil
}
