package processor

import (
	"context"
	"strings"
	"time"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/narration"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/topic"
)

const (
	sourceFallback = "fallback"
	sourceOverride = "override"
)

func (p *implProcessor) resolveTopic(job Job, now time.Time) (string, error) {
	if t := strings.TrimSpace(job.Topic); t != "" {
		return t, nil
	}
	return topic.ForDate(now, p.cfg.Topics.Core, p.cfg.Topics.Trending)
}

// narrate returns speakable narration and where it came from. It never fails:
// an override or generator that yields nothing speakable falls back to the template.
// Only generated and templated text is capped at narration.max_words; a
// supplied script is spoken in full.
func (p *implProcessor) narrate(ctx context.Context, job Job, topicName string, now time.Time) (string, string) {
	raw, source := job.Narration, job.Source
	supplied := strings.TrimSpace(raw) != ""
	if supplied && source == "" {
		source = sourceOverride
	}

	if !supplied && p.narrator != nil {
		text, err := p.narrator.Generate(ctx, topicName)
		if err != nil {
			p.logger.Warn(ctx, "Narration generation failed, using fallback: %v", err)
		} else {
			raw, source = text, p.narrator.Name()
		}
	}

	text := narration.Clean(raw)
	if !supplied {
		text = p.trim(ctx, text)
	}
	if text == "" {
		if strings.TrimSpace(raw) != "" {
			p.logger.Warn(ctx, "Narration from %s has nothing speakable, using fallback", source)
		}
		text = p.trim(ctx, narration.Clean(narration.Fallback(p.cfg.Narration.FallbackTemplate, topicName, now)))
		source = sourceFallback
	}

	p.logger.Info(ctx, "Narration source: %s (%d words)", source, len(strings.Fields(text)))
	p.logger.Debug(ctx, "Narration: %s", text)
	return text, source
}

func (p *implProcessor) trim(ctx context.Context, text string) string {
	trimmed := narration.Trim(text, p.cfg.Narration.MaxWords)
	if dropped := len(strings.Fields(text)) - len(strings.Fields(trimmed)); dropped > 0 {
		p.logger.Warn(ctx, "Narration over %d words, dropped %d trailing words", p.cfg.Narration.MaxWords, dropped)
	}
	return trimmed
}
