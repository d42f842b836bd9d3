package executor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command with the given arguments
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return e.run(exec.CommandContext(ctx, name, args...))
}

// ExecuteInDir runs an external command in a specific working directory.
// ffmpeg filter arguments that reference files resolve relative to dir.
func (e *implExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return e.run(cmd)
}

func (e *implExecutor) run(cmd *exec.Cmd) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Include stderr in error message for debugging
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return "", fmt.Errorf("command '%s' failed: %w\nstderr: %s", cmd.Args[0], err, tail(stderrStr, 2000))
		}
		return "", fmt.Errorf("command '%s' failed: %w", cmd.Args[0], err)
	}

	return stdout.String(), nil
}

// tail keeps the last n bytes of s; ffmpeg prints its banner before the actual error.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
