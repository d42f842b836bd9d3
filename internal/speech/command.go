package speech

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/logger"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/pkg/executor"
)

type implCommand struct {
	executor executor.Executor
	logger   logger.Logger
	binary   string
	args     []string
	language string
}

// NewCommand creates a Synthesizer that shells out to a TTS binary such as
// gtts-cli or espeak-ng. args may contain {input}, {output}, {text} and {lang}.
func NewCommand(exec executor.Executor, log logger.Logger, binary string, args []string, language string) Synthesizer {
	return &implCommand{
		executor: exec,
		logger:   log,
		binary:   binary,
		args:     args,
		language: language,
	}
}

func (c *implCommand) Synthesize(ctx context.Context, text, outPath string) error {
	// text goes through a file so long scripts never hit argv limits
	inputPath := outPath + ".txt"
	if err := os.WriteFile(inputPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("write narration text: %w", err)
	}
	defer os.Remove(inputPath)

	r := strings.NewReplacer(
		"{input}", inputPath,
		"{output}", outPath,
		"{text}", text,
		"{lang}", c.language,
	)
	args := make([]string, len(c.args))
	for i, a := range c.args {
		args[i] = r.Replace(a)
	}

	c.logger.Info(ctx, "Synthesizing speech with %s: %s", c.binary, outPath)
	if _, err := c.executor.Execute(ctx, c.binary, args...); err != nil {
		return fmt.Errorf("tts command: %w", err)
	}

	if info, err := os.Stat(outPath); err != nil || info.Size() == 0 {
		return fmt.Errorf("tts command produced no audio at %s", outPath)
	}
	return nil
}
