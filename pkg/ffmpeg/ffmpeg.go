package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// RunOptions controls how the ffmpeg process is attached to the caller.
type RunOptions struct {
	// Stderr, when set, receives ffmpeg's stderr as it is produced in
	// addition to the captured copy.
	Stderr io.Writer
	Logger *slog.Logger
}

// Result holds the outcome of a single ffmpeg invocation.
type Result struct {
	Args     []string
	ExitCode int
	Stderr   string
	Duration time.Duration
}

// Run executes args, whose first element is the binary, and blocks until the
// process exits. A non-zero exit is returned as *ExitError alongside the
// result.
func Run(ctx context.Context, args []string, opts RunOptions) (*Result, error) {
	if len(args) == 0 {
		return nil, errors.New("no args provided")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	binary, err := exec.LookPath(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBinaryNotFound, args[0], err)
	}

	logger.Debug("running ffmpeg command", slog.String("args", strings.Join(args, " ")))

	cmd := exec.CommandContext(ctx, binary, args[1:]...)

	var stderr bytes.Buffer
	if opts.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderr, opts.Stderr)
	} else {
		cmd.Stderr = &stderr
	}

	started := time.Now()
	runErr := cmd.Run()
	result := &Result{
		Args:     args,
		ExitCode: exitCode(cmd, runErr),
		Stderr:   stderr.String(),
		Duration: time.Since(started),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return result, &ExitError{Code: result.ExitCode, Stderr: result.Stderr}
		}
		return result, fmt.Errorf("run %s: %w", args[0], runErr)
	}

	logger.Debug("ffmpeg finished", slog.Duration("duration", result.Duration))
	return result, nil
}

func exitCode(cmd *exec.Cmd, err error) int {
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}
