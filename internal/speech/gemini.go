package speech

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/logger"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/pkg/executor"
	"google.golang.org/genai"
)

const defaultSampleRate = 24000

var reRate = regexp.MustCompile(`rate=(\d+)`)

type implGemini struct {
	executor executor.Executor
	logger   logger.Logger
	apiKey   string
	model    string
	voice    string
	ffmpeg   string
}

// NewGemini creates a Synthesizer using a Gemini TTS model with a prebuilt voice.
// The model returns raw 16-bit PCM which ffmpeg converts to outPath.
func NewGemini(exec executor.Executor, log logger.Logger, apiKey, model, voice, ffmpeg string) Synthesizer {
	return &implGemini{
		executor: exec,
		logger:   log,
		apiKey:   apiKey,
		model:    model,
		voice:    voice,
		ffmpeg:   ffmpeg,
	}
}

func (g *implGemini) Synthesize(ctx context.Context, text, outPath string) error {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	g.logger.Info(ctx, "Synthesizing speech with %s (voice %s)", g.model, g.voice)
	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(text), &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: g.voice},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("generate speech: %w", err)
	}

	blob := audioBlob(result)
	if blob == nil || len(blob.Data) == 0 {
		return fmt.Errorf("empty audio response from Gemini")
	}

	pcmPath := outPath + ".pcm"
	if err := os.WriteFile(pcmPath, blob.Data, 0644); err != nil {
		return fmt.Errorf("write pcm: %w", err)
	}
	defer os.Remove(pcmPath)

	args := []string{
		"-y",
		"-f", "s16le",
		"-ar", strconv.Itoa(sampleRate(blob.MIMEType)),
		"-ac", "1",
		"-i", pcmPath,
		outPath,
	}
	if _, err := g.executor.Execute(ctx, g.ffmpeg, args...); err != nil {
		return fmt.Errorf("ffmpeg convert pcm: %w", err)
	}
	return nil
}

func audioBlob(result *genai.GenerateContentResponse) *genai.Blob {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil {
			return part.InlineData
		}
	}
	return nil
}

// sampleRate reads the rate parameter of an "audio/L16;codec=pcm;rate=24000" MIME type.
func sampleRate(mimeType string) int {
	if m := reRate.FindStringSubmatch(mimeType); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	return defaultSampleRate
}
