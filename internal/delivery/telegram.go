package delivery

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/logger"
)

// Telegram caps captions at 1024 characters. Field budgets keep the rendered
// caption below that so Markdown entities are never cut open.
const (
	maxCaptionLen = 1024
	maxBrandLen   = 100
	maxTitleLen   = 400
	maxTopicLen   = 400
	maxIDLen      = 36
)

type implTelegram struct {
	apiBase string
	token   string
	chatID  string
	brand   string
	client  *http.Client
	logger  logger.Logger
}

// NewTelegram creates a Sender that posts videos through the Bot API sendVideo method.
func NewTelegram(apiBase, token, chatID, brand string, client *http.Client, log logger.Logger) Sender {
	return &implTelegram{
		apiBase: strings.TrimRight(apiBase, "/"),
		token:   token,
		chatID:  chatID,
		brand:   brand,
		client:  client,
		logger:  log,
	}
}

func (t *implTelegram) Send(ctx context.Context, d Delivery) error {
	body, contentType, err := t.buildBody(d)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendVideo", t.apiBase, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	t.logger.Info(ctx, "Sending video to Telegram chat %s: %s", t.chatID, d.VideoPath)
	resp, err := t.client.Do(req)
	if err != nil {
		// the token is part of the URL; never let it reach the logs
		return fmt.Errorf("telegram sendVideo: %w", redact(err, t.token))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("telegram sendVideo: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	t.logger.Info(ctx, "Delivered to Telegram")
	return nil
}

func (t *implTelegram) buildBody(d Delivery) (*bytes.Buffer, string, error) {
	f, err := os.Open(d.VideoPath)
	if err != nil {
		return nil, "", fmt.Errorf("open video: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"chat_id":            t.chatID,
		"caption":            Caption(t.brand, d),
		"parse_mode":         "Markdown",
		"supports_streaming": "true",
		"duration":           fmt.Sprintf("%d", int(d.Duration+0.5)),
	}
	for _, k := range []string{"chat_id", "caption", "parse_mode", "supports_streaming", "duration"} {
		if err := mw.WriteField(k, fields[k]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", k, err)
		}
	}

	part, err := mw.CreateFormFile("video", filepath.Base(d.VideoPath))
	if err != nil {
		return nil, "", fmt.Errorf("create video part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("copy video: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}

	return &buf, mw.FormDataContentType(), nil
}

// Caption renders the Markdown caption sent with the video.
func Caption(brand string, d Delivery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s* - Daily Legal Short\n\n", field(brand, maxBrandLen))
	fmt.Fprintf(&b, "*%s*\n\n", field(d.Title, maxTitleLen))
	fmt.Fprintf(&b, "Topic: %s\n", field(d.Topic, maxTopicLen))
	fmt.Fprintf(&b, "Length: %.0fs\n", d.Duration)
	fmt.Fprintf(&b, "Variation: `%s`", strings.ReplaceAll(truncate(d.VariationID, maxIDLen), "`", ""))
	return b.String()
}

// field escapes s and shortens it so the escaped form fits in limit runes.
// Runes are dropped before escaping, so an escape sequence is never split.
func field(s string, limit int) string {
	r := []rune(truncate(s, limit))
	for len(r) > 0 && utf8.RuneCountInString(escapeMarkdown(string(r))) > limit {
		r = r[:len(r)-1]
	}
	return escapeMarkdown(string(r))
}

func truncate(s string, limit int) string {
	if r := []rune(s); len(r) > limit {
		return string(r[:limit])
	}
	return s
}

// escapeMarkdown escapes the characters legacy Telegram Markdown treats as markup.
func escapeMarkdown(s string) string {
	return strings.NewReplacer("_", `\_`, "*", `\*`, "`", "\\`", "[", `\[`).Replace(s)
}

func redact(err error, secret string) error {
	if secret == "" {
		return err
	}
	return fmt.Errorf("%s", strings.ReplaceAll(err.Error(), secret, "<redacted>"))
}
