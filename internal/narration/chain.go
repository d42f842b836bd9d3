package narration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/logger"
	"golang.org/x/time/rate"
)

// ErrNoNarration is returned when every generator failed or produced unusable text.
var ErrNoNarration = errors.New("narration: no generator produced usable text")

type implChain struct {
	generators []Generator
	limiter    *rate.Limiter
	minChars   int
	logger     logger.Logger
}

// NewChain tries generators in order, spacing attempts by at least interval.
// Text shorter than minChars or with fewer than two sentences is rejected.
func NewChain(generators []Generator, interval time.Duration, minChars int, log logger.Logger) Generator {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &implChain{
		generators: generators,
		limiter:    rate.NewLimiter(limit, 1),
		minChars:   minChars,
		logger:     log,
	}
}

func (c *implChain) Name() string {
	names := make([]string, len(c.generators))
	for i, g := range c.generators {
		names[i] = g.Name()
	}
	return "chain[" + strings.Join(names, ",") + "]"
}

func (c *implChain) Generate(ctx context.Context, topic string) (string, error) {
	for _, g := range c.generators {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("wait for next attempt: %w", err)
		}

		c.logger.Info(ctx, "Requesting narration from %s", g.Name())
		text, err := g.Generate(ctx, topic)
		if err != nil {
			c.logger.Warn(ctx, "Generator %s failed: %v", g.Name(), err)
			continue
		}
		if err := Validate(text, c.minChars); err != nil {
			c.logger.Warn(ctx, "Generator %s returned unusable text: %v", g.Name(), err)
			continue
		}

		c.logger.Info(ctx, "Narration generated by %s (%d chars)", g.Name(), len(text))
		return text, nil
	}

	return "", ErrNoNarration
}
