package background

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Prepare returns the ffmpeg input for the configured mode. A failed stock
// download degrades to a gradient so a run never stops on a missing clip.
func (p *implProvider) Prepare(ctx context.Context, dir string, index int) (Input, error) {
	switch p.cfg.Mode {
	case "color":
		return p.color()
	case "stock":
		in, err := p.stock(ctx, dir, index)
		if err == nil {
			return in, nil
		}
		p.logger.Warn(ctx, "Stock background unavailable, drawing gradient instead: %v", err)
		return p.gradient(dir)
	default:
		return p.gradient(dir)
	}
}

func (p *implProvider) color() (Input, error) {
	c, err := parseHex(p.cfg.Color)
	if err != nil {
		return Input{}, fmt.Errorf("background color: %w", err)
	}
	src := fmt.Sprintf("color=c=0x%02x%02x%02x:s=%dx%d:r=%d", c.R, c.G, c.B, p.video.Width, p.video.Height, p.video.FPS)
	return Input{Args: []string{"-f", "lavfi", "-i", src}}, nil
}

func (p *implProvider) gradient(dir string) (Input, error) {
	path, err := drawGradient(dir, p.video.Width, p.video.Height, p.cfg)
	if err != nil {
		return Input{}, fmt.Errorf("draw gradient: %w", err)
	}
	return Input{
		Args: []string{"-loop", "1", "-framerate", strconv.Itoa(p.video.FPS), "-i", path},
		Path: path,
	}, nil
}

// ScaleFilter fits any background into the frame, cropping the overflow.
func ScaleFilter(width, height int) string {
	return strings.Join([]string{
		fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=increase", width, height),
		fmt.Sprintf("crop=%d:%d", width, height),
		"setsar=1",
	}, ",")
}
