package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/updeshxp/op5-nethunter-kernel/internal/env"
)

// Output of a host command execution.
type Result struct {
	ExitCode int    // Exit code of the process.
	Stdout   string // Captured standard output.
	Stderr   string // Captured standard error.
}

// Runs a host command, routing its output according to the log level.
//
// Quiet runs capture output without echoing it; other levels stream the
// command's output to the wrapper's own streams while capturing it. A
// non-zero exit status is returned as ErrCommand together with the captured
// result.
func Launch(ctx context.Context, level env.LogLevel, name string, args ...string) (*Result, error) {
	slog.Debug("launching", "command", name, "args", args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)

	if level == env.LevelQuiet {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = io.MultiWriter(os.Stdout, &stdout)
		cmd.Stderr = io.MultiWriter(os.Stderr, &stderr)
	}

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result := &Result{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}
			return result, fmt.Errorf("%w: %s: exit code %d", ErrCommand, name, result.ExitCode)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrCommand, name, err)
	}

	return &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}, nil
}
