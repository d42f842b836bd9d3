package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/caption"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Topics: TopicsConfig{Core: []string{"Consumer rights"}},
				Paths:  PathsConfig{Output: "data/output"},
			},
			wantErr: false,
		},
		{
			name: "missing output path",
			config: Config{
				Topics: TopicsConfig{Core: []string{"Consumer rights"}},
			},
			wantErr: true,
		},
		{
			name: "missing topics",
			config: Config{
				Paths: PathsConfig{Output: "data/output"},
			},
			wantErr: true,
		},
		{
			name: "unknown background mode",
			config: Config{
				Topics:     TopicsConfig{Core: []string{"Consumer rights"}},
				Paths:      PathsConfig{Output: "data/output"},
				Background: BackgroundConfig{Mode: "plasma"},
			},
			wantErr: true,
		},
		{
			name: "unknown narration provider",
			config: Config{
				Topics:    TopicsConfig{Core: []string{"Consumer rights"}},
				Paths:     PathsConfig{Output: "data/output"},
				Narration: NarrationConfig{Providers: []string{"gemini", "llama"}},
			},
			wantErr: true,
		},
		{
			name: "ceiling below floor",
			config: Config{
				Topics: TopicsConfig{Core: []string{"Consumer rights"}},
				Paths:  PathsConfig{Output: "data/output"},
				Captions: CaptionsConfig{
					Config: caption.Config{MinChunkSeconds: 3.0, MaxChunkSeconds: 2.0},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Topics: TopicsConfig{Core: []string{"Consumer rights"}},
		Paths:  PathsConfig{Output: "data/output"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Background.Mode != "gradient" {
		t.Errorf("Background.Mode = %v, want %v", cfg.Background.Mode, "gradient")
	}
	if cfg.Captions.MaxCharsPerLine != 28 {
		t.Errorf("Captions.MaxCharsPerLine = %v, want %v", cfg.Captions.MaxCharsPerLine, 28)
	}
	if cfg.Captions.MinChunkSeconds != 2.0 || cfg.Captions.MaxChunkSeconds != 5.0 {
		t.Errorf("chunk bounds = [%v, %v], want [2, 5]", cfg.Captions.MinChunkSeconds, cfg.Captions.MaxChunkSeconds)
	}
	if cfg.Video.Width != 1080 || cfg.Video.Height != 1920 {
		t.Errorf("Video = %dx%d, want 1080x1920", cfg.Video.Width, cfg.Video.Height)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want %v", cfg.Performance.MaxConcurrent, 2)
	}
	if cfg.Schedule.Cron != "30 19 * * *" {
		t.Errorf("Schedule.Cron = %v, want %v", cfg.Schedule.Cron, "30 19 * * *")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
brand:
  name: "Legal Insights Daily"

captions:
  max_chars_per_line: 30
  min_chunk_seconds: 2.5
  max_chunk_seconds: 5
  emphasis_keywords: ["important", "alert"]

narration:
  providers: ["gemini", "openai"]

topics:
  core:
    - "How to report UPI / digital payment fraud"
  trending:
    - "Labor law changes"

paths:
  output: "data/output"

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GEMINI_API_KEYS", "key-a, key-b,,")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Captions.MaxCharsPerLine != 30 {
		t.Errorf("MaxCharsPerLine = %v, want %v", cfg.Captions.MaxCharsPerLine, 30)
	}
	if cfg.Captions.MinChunkSeconds != 2.5 {
		t.Errorf("MinChunkSeconds = %v, want %v", cfg.Captions.MinChunkSeconds, 2.5)
	}
	if !reflect.DeepEqual(cfg.Narration.Providers, []string{"gemini", "openai"}) {
		t.Errorf("Providers = %v", cfg.Narration.Providers)
	}
	if !reflect.DeepEqual(cfg.Secrets.GeminiAPIKeys, []string{"key-a", "key-b"}) {
		t.Errorf("GeminiAPIKeys = %v, want [key-a key-b]", cfg.Secrets.GeminiAPIKeys)
	}
	if cfg.Secrets.TelegramChatID != "42" {
		t.Errorf("TelegramChatID = %v, want %v", cfg.Secrets.TelegramChatID, "42")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %v, want %v", cfg.Logging.Format, "json")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("topics: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should return error for malformed YAML")
	}
}
