package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/pkg/download"
)

// synthesize renders the narration to WAV and measures it. The measured length
// drives caption timing and the video length.
func (p *implProcessor) synthesize(ctx context.Context, runDir, text string) (string, float64, error) {
	audioPath := filepath.Join(runDir, "narration.wav")

	p.logger.Info(ctx, "Synthesizing narration: %s", audioPath)
	if err := p.synthesizer.Synthesize(ctx, text, audioPath); err != nil {
		return "", 0, err
	}

	duration, err := p.prober.Duration(ctx, audioPath)
	if err != nil {
		return "", 0, fmt.Errorf("probe narration: %w", err)
	}

	p.logger.Info(ctx, "Narration length: %.2fs", duration)
	return audioPath, duration, nil
}

// mixMusic lays a looped music bed under the voice. Any failure keeps the
// voice-only track, since music is decoration.
func (p *implProcessor) mixMusic(ctx context.Context, runDir, voicePath string, duration float64, index int) string {
	music := p.cfg.Music
	if !music.Enabled || len(music.URLs) == 0 {
		return voicePath
	}

	url := music.URLs[index%len(music.URLs)]
	musicPath := filepath.Join(runDir, "music"+download.Ext(url, ".mp3"))
	p.logger.Info(ctx, "Downloading music bed: %s", url)
	if err := download.File(ctx, p.client, url, musicPath); err != nil {
		p.logger.Warn(ctx, "Music unavailable, continuing with voice only: %v", err)
		return voicePath
	}

	mixedPath := filepath.Join(runDir, "mixed.wav")
	// -stream_loop -1: repeat the bed for long narrations
	// duration=first: the voice decides where the mix ends
	filter := fmt.Sprintf("[1:a]volume=%.2f[bed];[0:a][bed]amix=inputs=2:duration=first:dropout_transition=0[out]", music.Volume)
	args := []string{
		"-y",
		"-i", voicePath,
		"-stream_loop", "-1",
		"-i", musicPath,
		"-filter_complex", filter,
		"-map", "[out]",
		"-t", strconv.FormatFloat(duration, 'f', 3, 64),
		"-c:a", "pcm_s16le",
		mixedPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		p.logger.Warn(ctx, "Music mix failed, continuing with voice only: %v", err)
		return voicePath
	}

	p.logger.Info(ctx, "Music mixed at volume %.2f", music.Volume)
	return mixedPath
}
