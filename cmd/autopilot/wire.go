package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/background"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/config"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/delivery"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/logger"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/narration"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/processor"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/speech"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/pkg/executor"
)

type application struct {
	cfg       *config.Config
	log       logger.Logger
	processor processor.Processor
}

// bootstrap loads configuration and wires every pipeline stage.
func bootstrap(ctx context.Context, configPath string) (*application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "%s autopilot", cfg.Brand.Name)
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Configuration loaded from %s", configPath)

	if err := ensureDirectories(cfg); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}

	exec := executor.New()
	deps := processor.Dependencies{
		Prober:     speech.NewProber(exec, cfg.FFmpeg.ProbePath),
		Background: background.New(cfg.Background, cfg.Video, nil, log),
	}

	if deps.Narrator, err = newNarrator(ctx, cfg, log); err != nil {
		return nil, err
	}
	if deps.Synthesizer, err = newSynthesizer(cfg, exec, log); err != nil {
		return nil, err
	}
	if deps.Sender, err = newSender(cfg, log); err != nil {
		return nil, err
	}

	log.Info(ctx, "TTS: %s, background: %s, encoder: %s", cfg.TTS.Provider, cfg.Background.Mode, cfg.FFmpeg.Encoder)

	return &application{
		cfg:       cfg,
		log:       log,
		processor: processor.New(cfg, exec, log, deps),
	}, nil
}

// newNarrator chains the configured providers that have credentials.
// It returns nil when none do, so every run uses the fallback template.
func newNarrator(ctx context.Context, cfg *config.Config, log logger.Logger) (narration.Generator, error) {
	interval, err := time.ParseDuration(cfg.Narration.AttemptInterval)
	if err != nil {
		return nil, fmt.Errorf("narration.attempt_interval: %w", err)
	}

	var generators []narration.Generator
	for _, name := range cfg.Narration.Providers {
		switch name {
		case "gemini":
			if !cfg.Secrets.HasGemini() {
				log.Warn(ctx, "Narration provider gemini skipped: GEMINI_API_KEYS not set")
				continue
			}
			generators = append(generators, narration.NewGemini(cfg.Secrets.GeminiAPIKeys, cfg.Narration.GeminiModel, log))
		case "openai":
			if cfg.Secrets.OpenAIAPIKey == "" {
				log.Warn(ctx, "Narration provider openai skipped: OPENAI_API_KEY not set")
				continue
			}
			generators = append(generators, narration.NewOpenAI(cfg.Secrets.OpenAIAPIKey, cfg.Narration.OpenAIModel))
		}
	}

	if len(generators) == 0 {
		log.Info(ctx, "Narration: fallback template only")
		return nil, nil
	}
	chain := narration.NewChain(generators, interval, cfg.Narration.MinChars, log)
	log.Info(ctx, "Narration: %s", chain.Name())
	return chain, nil
}

func newSynthesizer(cfg *config.Config, exec executor.Executor, log logger.Logger) (speech.Synthesizer, error) {
	tts := cfg.TTS
	if tts.Provider == "gemini" {
		if !cfg.Secrets.HasGemini() {
			return nil, fmt.Errorf("tts.provider gemini needs GEMINI_API_KEYS")
		}
		return speech.NewGemini(exec, log, cfg.Secrets.GeminiAPIKeys[0], tts.GeminiModel, tts.Voice, cfg.FFmpeg.BinaryPath), nil
	}
	return speech.NewCommand(exec, log, tts.BinaryPath, tts.Args, tts.Language), nil
}

func newSender(cfg *config.Config, log logger.Logger) (delivery.Sender, error) {
	tg := cfg.Telegram
	switch {
	case !tg.Enabled:
		return delivery.NewNoop("telegram disabled", log), nil
	case cfg.Secrets.TelegramBotToken == "" || cfg.Secrets.TelegramChatID == "":
		return delivery.NewNoop("TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID not set", log), nil
	}

	timeout, err := time.ParseDuration(tg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("telegram.timeout: %w", err)
	}
	client := &http.Client{Timeout: timeout}
	return delivery.NewTelegram(tg.APIBase, cfg.Secrets.TelegramBotToken, cfg.Secrets.TelegramChatID, cfg.Brand.Name, client, log), nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Inbox,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
