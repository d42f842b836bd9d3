package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/background"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/caption"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/subtitle"
)

const assName = "captions.ass"

// writeSubtitles writes the burn-in ASS script and the SRT sidecar into runDir.
func (p *implProcessor) writeSubtitles(runDir string, chunks []caption.Chunk) (string, string, error) {
	style := subtitle.Style{
		Width:            p.cfg.Video.Width,
		Height:           p.cfg.Video.Height,
		Font:             p.cfg.Captions.Font,
		FontSize:         p.cfg.Captions.FontSize,
		Outline:          p.cfg.Captions.Outline,
		EmphasisKeywords: p.cfg.Captions.EmphasisKeywords,
	}

	assPath := filepath.Join(runDir, assName)
	if err := writeFile(assPath, func(f *os.File) error { return subtitle.WriteASS(f, chunks, style) }); err != nil {
		return "", "", fmt.Errorf("ass: %w", err)
	}

	srtPath := filepath.Join(runDir, "captions.srt")
	if err := writeFile(srtPath, func(f *os.File) error { return subtitle.WriteSRT(f, chunks) }); err != nil {
		return "", "", fmt.Errorf("srt: %w", err)
	}

	return assPath, srtPath, nil
}

// compose renders background, audio and burned captions into output/videos/name.
// ffmpeg runs inside runDir so the subtitles filter sees a bare relative
// filename and needs no escaping.
func (p *implProcessor) compose(ctx context.Context, runDir string, bg background.Input, audioPath, assPath string, duration float64, name string) (string, error) {
	videosDir := filepath.Join(p.cfg.Paths.Output, "videos")
	if err := os.MkdirAll(videosDir, 0755); err != nil {
		return "", fmt.Errorf("create videos dir: %w", err)
	}
	outputPath := filepath.Join(videosDir, name)
	tempOutput := filepath.Join(runDir, "output.mp4")

	p.logger.Info(ctx, "Rendering %dx%d video (%.2fs)", p.cfg.Video.Width, p.cfg.Video.Height, duration)

	encoder := []string{"-c:v", p.cfg.FFmpeg.Encoder, "-b:v", p.cfg.FFmpeg.VideoBitrate}
	args := p.composeArgs(bg, audioPath, filepath.Base(assPath), duration, encoder, tempOutput)

	p.logger.Debug(ctx, "FFmpeg command in dir %s: ffmpeg %v", runDir, args)

	if _, err := p.executor.ExecuteInDir(ctx, runDir, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		// If the configured encoder fails, try software encoder
		p.logger.Warn(ctx, "Encoder %s failed, trying software encoder: %v", p.cfg.FFmpeg.Encoder, err)
		software := []string{"-c:v", "libx264", "-preset", p.cfg.FFmpeg.Preset, "-crf", "23"}
		args = p.composeArgs(bg, audioPath, filepath.Base(assPath), duration, software, tempOutput)
		if _, err := p.executor.ExecuteInDir(ctx, runDir, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
			return "", fmt.Errorf("both configured and software encoders failed: %w", err)
		}
	}

	// Move temp output to final location
	if err := os.Rename(tempOutput, outputPath); err != nil {
		// If rename fails (e.g. across devices), copy instead
		if err := copyFile(tempOutput, outputPath); err != nil {
			return "", fmt.Errorf("move output to final location: %w", err)
		}
	}

	p.logger.Info(ctx, "Video rendered: %s", outputPath)
	return outputPath, nil
}

func (p *implProcessor) composeArgs(bg background.Input, audioPath, assFile string, duration float64, encoder []string, output string) []string {
	video := p.cfg.Video
	args := []string{"-y"}
	args = append(args, bg.Args...)
	args = append(args,
		"-i", audioPath,
		"-map", "0:v",
		"-map", "1:a",
		"-vf", background.ScaleFilter(video.Width, video.Height)+",subtitles="+assFile,
		"-t", strconv.FormatFloat(duration, 'f', 3, 64),
		"-r", strconv.Itoa(video.FPS),
		"-pix_fmt", "yuv420p",
	)
	args = append(args, encoder...)
	args = append(args,
		"-c:a", p.cfg.FFmpeg.AudioCodec,
		"-movflags", "+faststart",
		"-shortest",
		output,
	)
	return args
}
