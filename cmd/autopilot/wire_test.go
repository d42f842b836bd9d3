package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/config"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/delivery"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/logger"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/pkg/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Inbox:    filepath.Join(root, "inbox"),
			Output:   filepath.Join(root, "output"),
			Archived: filepath.Join(root, "archived"),
			Temp:     filepath.Join(root, "temp"),
		},
		Topics: config.TopicsConfig{Core: []string{"Consumer rights"}},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestNewNarrator(t *testing.T) {
	log := logger.New("error", "text")
	ctx := context.Background()

	t.Run("no credentials means fallback only", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Narration.Providers = []string{"gemini", "openai"}
		g, err := newNarrator(ctx, cfg, log)
		require.NoError(t, err)
		assert.Nil(t, g)
	})

	t.Run("providers with keys are chained in order", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Narration.Providers = []string{"openai", "gemini"}
		cfg.Secrets = config.Secrets{GeminiAPIKeys: []string{"k1"}, OpenAIAPIKey: "sk"}
		g, err := newNarrator(ctx, cfg, log)
		require.NoError(t, err)
		require.NotNil(t, g)
		assert.Equal(t, "chain[openai/gpt-4o-mini,gemini/gemini-2.5-flash]", g.Name())
	})

	t.Run("bad interval", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Narration.AttemptInterval = "soon"
		_, err := newNarrator(ctx, cfg, log)
		assert.Error(t, err)
	})
}

func TestNewSynthesizer(t *testing.T) {
	log := logger.New("error", "text")

	cfg := testConfig(t)
	s, err := newSynthesizer(cfg, executor.New(), log)
	require.NoError(t, err)
	assert.NotNil(t, s)

	cfg.TTS.Provider = "gemini"
	_, err = newSynthesizer(cfg, executor.New(), log)
	assert.Error(t, err)
}

func TestNewSender(t *testing.T) {
	log := logger.New("error", "text")
	cfg := testConfig(t)

	s, err := newSender(cfg, log)
	require.NoError(t, err)
	assert.NoError(t, s.Send(context.Background(), deliveryFor("x.mp4")))

	cfg.Telegram.Enabled = true
	cfg.Secrets.TelegramBotToken = "t"
	cfg.Secrets.TelegramChatID = "1"
	cfg.Telegram.Timeout = "never"
	_, err = newSender(cfg, log)
	assert.Error(t, err)
}

func TestEnsureDirectories(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, ensureDirectories(cfg))
	for _, dir := range []string{cfg.Paths.Inbox, cfg.Paths.Output, cfg.Paths.Archived, cfg.Paths.Temp} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"run", "watch", "schedule"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func deliveryFor(path string) delivery.Delivery {
	return delivery.Delivery{VideoPath: path}
}
