package narration

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/logger"
	"google.golang.org/genai"
)

type implGemini struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGemini creates a Generator that rotates through the supplied Gemini API keys.
func NewGemini(apiKeys []string, model string, log logger.Logger) Generator {
	return &implGemini{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

func (g *implGemini) Name() string {
	return "gemini/" + g.model
}

// Generate sends the narration prompt to Gemini.
// Rotates API keys on 429 / quota errors.
func (g *implGemini) Generate(ctx context.Context, topic string) (string, error) {
	if len(g.apiKeys) == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}

	prompt := buildPrompt(topic)
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.75),
		TopP:        genai.Ptr[float32](0.9),
	}

	var lastErr error
	for range len(g.apiKeys) {
		key, idx := g.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", idx+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if text := responseText(result); text != "" {
			return text, nil
		}
		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *implGemini) key() (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.currentKey], g.currentKey
}

func (g *implGemini) rotateKey() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
