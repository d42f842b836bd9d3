package background

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/config"
)

const (
	headerHeight = 120
	footerHeight = 100
)

// drawGradient renders a vertical from->to gradient with a faint accent
// texture on every third row and solid header/footer bands.
func drawGradient(dir string, width, height int, cfg config.BackgroundConfig) (string, error) {
	from, err := parseHex(cfg.From)
	if err != nil {
		return "", fmt.Errorf("from: %w", err)
	}
	to, err := parseHex(cfg.To)
	if err != nil {
		return "", fmt.Errorf("to: %w", err)
	}
	accent, err := parseHex(cfg.Accent)
	if err != nil {
		return "", fmt.Errorf("accent: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		progress := float64(y) / float64(height)
		c := lerp(from, to, progress)
		if y%3 == 0 {
			c = lerp(c, accent, 0.15)
		}
		draw.Draw(img, image.Rect(0, y, width, y+1), &image.Uniform{C: c}, image.Point{}, draw.Src)
	}

	band := lerp(to, accent, 0.5)
	draw.Draw(img, image.Rect(0, 0, width, min(headerHeight, height)), &image.Uniform{C: band}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, max(height-footerHeight, 0), width, height), &image.Uniform{C: band}, image.Point{}, draw.Src)

	path := filepath.Join(dir, "background.png")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return path, nil
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + t*(float64(y)-float64(x)))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// parseHex parses "#rrggbb" or "rrggbb".
func parseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
