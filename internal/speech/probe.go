package speech

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/pkg/executor"
)

type implProber struct {
	executor executor.Executor
	binary   string
}

// NewProber creates a Prober backed by ffprobe.
func NewProber(exec executor.Executor, binary string) Prober {
	return &implProber{executor: exec, binary: binary}
}

func (p *implProber) Duration(ctx context.Context, path string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
	out, err := p.executor.Execute(ctx, p.binary, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(out), err)
	}
	if !(seconds > 0) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("invalid duration %v for %s", seconds, path)
	}
	return seconds, nil
}
