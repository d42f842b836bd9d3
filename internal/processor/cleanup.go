package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// createRunDir makes an isolated, absolute work dir so concurrent runs never
// share files and ffmpeg can run inside it.
func (p *implProcessor) createRunDir(id string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	dir, err := os.MkdirTemp(p.cfg.Paths.Temp, "run-"+id+"-*")
	if err != nil {
		return "", fmt.Errorf("create run dir: %w", err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("resolve run dir: %w", err)
	}
	return abs, nil
}

// moveToArchived moves a processed inbox script to the archived folder
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))

	p.logger.Info(ctx, "Archiving script: %s -> %s", path, dest)

	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}

// cleanupRunDir removes the run's temporary files, logs warning if fails
func (p *implProcessor) cleanupRunDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup run dir %s: %v", dir, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up run dir: %s", dir)
	}
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("create destination dir: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("write destination: %w", err)
	}
	return out.Close()
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
