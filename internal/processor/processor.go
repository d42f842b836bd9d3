package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/caption"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/delivery"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/logger"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/review"
)

// Process orchestrates one run: narration, voice, captions, render, review and delivery.
func (p *implProcessor) Process(ctx context.Context, job Job) (*Result, error) {
	startTime := time.Now()
	now := job.Now
	if now.IsZero() {
		now = startTime
	}

	id := uuid.NewString()[:8]
	ctx = logger.WithRunID(ctx, id)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting run %s for %s", id, now.Format("2006-01-02"))
	p.logger.Info(ctx, "========================================")

	// Step 1: Pick the topic
	topicName, err := p.resolveTopic(job, now)
	if err != nil {
		return nil, fmt.Errorf("pick topic: %w", err)
	}
	p.logger.Info(ctx, "Topic: %s", topicName)

	// Step 2: Narration text
	text, source := p.narrate(ctx, job, topicName, now)

	runDir, err := p.createRunDir(id)
	if err != nil {
		return nil, err
	}
	defer p.cleanupRunDir(ctx, runDir)

	// Step 3: Voice and its measured length
	audioPath, duration, err := p.synthesize(ctx, runDir, text)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}

	// Step 4: Optional music bed under the voice
	audioPath = p.mixMusic(ctx, runDir, audioPath, duration, now.YearDay())

	// Step 5: Caption timing
	chunks, err := caption.Synchronize(text, duration, p.cfg.Captions.Config)
	if err != nil {
		return nil, fmt.Errorf("synchronize captions: %w", err)
	}
	p.logger.Info(ctx, "Synchronized %d caption chunks over %.2fs", len(chunks), duration)
	for i, c := range chunks {
		p.logger.Debug(ctx, "Chunk %d: %.2fs-%.2fs (%.2fs)", i+1, c.Start, c.End, c.Duration())
	}

	// Step 6: Subtitle files
	assPath, srtPath, err := p.writeSubtitles(runDir, chunks)
	if err != nil {
		return nil, fmt.Errorf("write subtitles: %w", err)
	}

	// Step 7: Background layer
	bg, err := p.background.Prepare(ctx, runDir, now.YearDay())
	if err != nil {
		return nil, fmt.Errorf("prepare background: %w", err)
	}
	if bg.Path != "" {
		p.logger.Info(ctx, "Background: %s", bg.Path)
	} else {
		p.logger.Info(ctx, "Background: %s source", p.cfg.Background.Mode)
	}

	// Step 8: Render the video
	baseName := fmt.Sprintf("legal_short_%s_%s", now.Format("20060102"), id)
	videoPath, err := p.compose(ctx, runDir, bg, audioPath, assPath, duration, baseName+".mp4")
	if err != nil {
		return nil, fmt.Errorf("compose video: %w", err)
	}

	result := &Result{
		VariationID: id,
		Title:       "Legal Insight: " + topicName,
		Topic:       topicName,
		Source:      source,
		Narration:   text,
		Duration:    duration,
		Chunks:      chunks,
		VideoPath:   videoPath,
	}

	// Step 9: Copy SRT to output folder
	result.SubtitlePath = filepath.Join(p.cfg.Paths.Output, baseName+".srt")
	if err := copyFile(srtPath, result.SubtitlePath); err != nil {
		p.logger.Warn(ctx, "Failed to copy SRT to output: %v", err)
		result.SubtitlePath = ""
	}

	// Step 10: Review document
	result.ReviewPath = filepath.Join(p.cfg.Paths.Output, baseName+".docx")
	doc := review.Document{
		Title:     result.Title,
		Topic:     topicName,
		Source:    source,
		Narration: text,
		Duration:  duration,
		Chunks:    chunks,
	}
	if err := review.WriteDocx(result.ReviewPath, doc); err != nil {
		p.logger.Warn(ctx, "Failed to write review document: %v", err)
		result.ReviewPath = ""
	}

	// Step 11: Deliver
	err = p.sender.Send(ctx, delivery.Delivery{
		VideoPath:   videoPath,
		Title:       result.Title,
		Topic:       topicName,
		VariationID: id,
		Duration:    duration,
	})
	if err != nil {
		p.logger.Error(ctx, "Delivery failed, video kept at %s: %v", videoPath, err)
	} else {
		result.Delivered = true
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Run completed successfully!")
	p.logger.Info(ctx, "Output video: %s", result.VideoPath)
	p.logger.Info(ctx, "Output subtitle: %s", result.SubtitlePath)
	p.logger.Info(ctx, "Review document: %s", result.ReviewPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return result, nil
}

// ProcessFile runs the pipeline with a narration script dropped into the inbox,
// then archives the script. Failed scripts stay in the inbox.
func (p *implProcessor) ProcessFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	name := filepath.Base(path)
	job := Job{
		Topic:     topicFromFilename(name),
		Narration: string(data),
		Source:    "file:" + name,
	}
	if _, err := p.Process(ctx, job); err != nil {
		return err
	}

	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move script to archived folder: %v", err)
	}
	return nil
}

// topicFromFilename turns "tenant_deposit-rights.txt" into "tenant deposit rights".
func topicFromFilename(name string) string {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
