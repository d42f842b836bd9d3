package config

import (
	"fmt"
	"strings"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/caption"
)

type Config struct {
	Brand       BrandConfig       `yaml:"brand"`
	Video       VideoConfig       `yaml:"video"`
	Captions    CaptionsConfig    `yaml:"captions"`
	Background  BackgroundConfig  `yaml:"background"`
	Music       MusicConfig       `yaml:"music"`
	Narration   NarrationConfig   `yaml:"narration"`
	TTS         TTSConfig         `yaml:"tts"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Telegram    TelegramConfig    `yaml:"telegram"`
	Topics      TopicsConfig      `yaml:"topics"`
	Schedule    ScheduleConfig    `yaml:"schedule"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`

	// Secrets come from the environment, never from the YAML file.
	Secrets Secrets `yaml:"-"`
}

type BrandConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type VideoConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

type CaptionsConfig struct {
	caption.Config `yaml:",inline"`

	Font             string   `yaml:"font"`
	FontSize         int      `yaml:"font_size"`
	Outline          int      `yaml:"outline"`
	EmphasisKeywords []string `yaml:"emphasis_keywords"`
}

type BackgroundConfig struct {
	// Mode is one of "color", "gradient", "stock".
	Mode      string   `yaml:"mode"`
	Color     string   `yaml:"color"`
	From      string   `yaml:"from"`
	To        string   `yaml:"to"`
	Accent    string   `yaml:"accent"`
	StockURLs []string `yaml:"stock_urls"`
}

type MusicConfig struct {
	Enabled bool     `yaml:"enabled"`
	URLs    []string `yaml:"urls"`
	Volume  float64  `yaml:"volume"`
}

type NarrationConfig struct {
	// Providers are tried in order, e.g. ["gemini", "openai"].
	Providers        []string `yaml:"providers"`
	GeminiModel      string   `yaml:"gemini_model"`
	OpenAIModel      string   `yaml:"openai_model"`
	MinChars         int      `yaml:"min_chars"`
	MaxWords         int      `yaml:"max_words"`
	AttemptInterval  string   `yaml:"attempt_interval"`
	FallbackTemplate string   `yaml:"fallback_template"`
}

type TTSConfig struct {
	// Provider is "command" or "gemini".
	Provider    string   `yaml:"provider"`
	BinaryPath  string   `yaml:"binary_path"`
	Args        []string `yaml:"args"`
	Language    string   `yaml:"language"`
	GeminiModel string   `yaml:"gemini_model"`
	Voice       string   `yaml:"voice"`
}

type FFmpegConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	ProbePath    string `yaml:"probe_path"`
	VideoBitrate string `yaml:"video_bitrate"`
	AudioCodec   string `yaml:"audio_codec"`
	Encoder      string `yaml:"encoder"`
	Preset       string `yaml:"preset"`
}

type TelegramConfig struct {
	Enabled bool   `yaml:"enabled"`
	APIBase string `yaml:"api_base"`
	Timeout string `yaml:"timeout"`
}

type TopicsConfig struct {
	Core     []string `yaml:"core"`
	Trending []string `yaml:"trending"`
}

type ScheduleConfig struct {
	Cron string `yaml:"cron"`
}

type PathsConfig struct {
	Inbox    string `yaml:"inbox"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type Secrets struct {
	GeminiAPIKeys    []string
	OpenAIAPIKey     string
	TelegramBotToken string
	TelegramChatID   string
}

// Validate checks required fields and fills defaults for everything optional.
func (c *Config) Validate() error {
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if len(c.Topics.Core) == 0 {
		return fmt.Errorf("topics.core needs at least one topic")
	}
	if c.Captions.MaxChunkSeconds > 0 && c.Captions.MaxChunkSeconds < c.Captions.MinChunkSeconds {
		return fmt.Errorf("captions.max_chunk_seconds (%.2f) is below captions.min_chunk_seconds (%.2f)",
			c.Captions.MaxChunkSeconds, c.Captions.MinChunkSeconds)
	}

	switch c.Background.Mode {
	case "":
		c.Background.Mode = "gradient"
	case "color", "gradient", "stock":
	default:
		return fmt.Errorf("background.mode %q is not one of color, gradient, stock", c.Background.Mode)
	}
	switch c.TTS.Provider {
	case "":
		c.TTS.Provider = "command"
	case "command", "gemini":
	default:
		return fmt.Errorf("tts.provider %q is not one of command, gemini", c.TTS.Provider)
	}
	for _, p := range c.Narration.Providers {
		if p != "gemini" && p != "openai" {
			return fmt.Errorf("narration.providers: unknown provider %q", p)
		}
	}

	if c.Brand.Name == "" {
		c.Brand.Name = "Legal Insights Daily"
	}
	if c.Brand.Color == "" {
		c.Brand.Color = "#1e3a8a"
	}
	if c.Video.Width == 0 {
		c.Video.Width = 1080
	}
	if c.Video.Height == 0 {
		c.Video.Height = 1920
	}
	if c.Video.FPS == 0 {
		c.Video.FPS = 30
	}
	if c.Captions.MaxCharsPerLine == 0 {
		c.Captions.MaxCharsPerLine = caption.DefaultConfig().MaxCharsPerLine
	}
	if c.Captions.MinChunkSeconds == 0 && c.Captions.MaxChunkSeconds == 0 {
		def := caption.DefaultConfig()
		c.Captions.MinChunkSeconds = def.MinChunkSeconds
		c.Captions.MaxChunkSeconds = def.MaxChunkSeconds
	}
	if c.Captions.Font == "" {
		c.Captions.Font = "DejaVu Sans"
	}
	if c.Captions.FontSize == 0 {
		c.Captions.FontSize = 52
	}
	if c.Captions.Outline == 0 {
		c.Captions.Outline = 2
	}
	if c.Background.Color == "" {
		c.Background.Color = c.Brand.Color
	}
	if c.Background.From == "" {
		c.Background.From = "#0f172a"
	}
	if c.Background.To == "" {
		c.Background.To = c.Brand.Color
	}
	if c.Background.Accent == "" {
		c.Background.Accent = "#64748b"
	}
	if c.Music.Volume == 0 {
		c.Music.Volume = 0.1
	}
	if c.Narration.GeminiModel == "" {
		c.Narration.GeminiModel = "gemini-2.5-flash"
	}
	if c.Narration.OpenAIModel == "" {
		c.Narration.OpenAIModel = "gpt-4o-mini"
	}
	if c.Narration.MinChars == 0 {
		c.Narration.MinChars = 100
	}
	if c.Narration.MaxWords == 0 {
		c.Narration.MaxWords = 120
	}
	if c.Narration.AttemptInterval == "" {
		c.Narration.AttemptInterval = "3s"
	}
	if c.TTS.BinaryPath == "" {
		c.TTS.BinaryPath = "gtts-cli"
	}
	if len(c.TTS.Args) == 0 {
		c.TTS.Args = []string{"--lang", "{lang}", "--file", "{input}", "--output", "{output}"}
	}
	if c.TTS.Language == "" {
		c.TTS.Language = "en"
	}
	if c.TTS.GeminiModel == "" {
		c.TTS.GeminiModel = "gemini-2.5-flash-preview-tts"
	}
	if c.TTS.Voice == "" {
		c.TTS.Voice = "Kore"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.FFmpeg.VideoBitrate == "" {
		c.FFmpeg.VideoBitrate = "10M"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "aac"
	}
	if c.FFmpeg.Encoder == "" {
		c.FFmpeg.Encoder = "libx264"
	}
	if c.FFmpeg.Preset == "" {
		c.FFmpeg.Preset = "medium"
	}
	if c.Telegram.APIBase == "" {
		c.Telegram.APIBase = "https://api.telegram.org"
	}
	if c.Telegram.Timeout == "" {
		c.Telegram.Timeout = "5m"
	}
	if c.Schedule.Cron == "" {
		c.Schedule.Cron = "30 19 * * *"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// HasGemini reports whether at least one Gemini key is configured.
func (s Secrets) HasGemini() bool {
	return len(s.GeminiAPIKeys) > 0
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
