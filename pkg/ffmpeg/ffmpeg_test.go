package ffmpeg_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"overlayr/pkg/ffmpeg"
	"overlayr/pkg/models"
)

// writeFakeFfmpeg writes a shell script standing in for ffmpeg and returns its
// path.
func writeFakeFfmpeg(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake ffmpeg script requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake ffmpeg: %v", err)
	}
	return path
}

func TestRunCapturesStderr(t *testing.T) {
	bin := writeFakeFfmpeg(t, `echo "size=42kB time=00:00:10" >&2
exit 0`)

	var tee bytes.Buffer
	result, err := ffmpeg.Run(context.Background(), []string{bin, "-i", "in.avi"}, ffmpeg.RunOptions{Stderr: &tee})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.ExitCode != 0 {
		t.Fatalf("unexpected exit code %d", result.ExitCode)
	}
	if !strings.Contains(result.Stderr, "size=42kB") {
		t.Fatalf("stderr not captured: %q", result.Stderr)
	}
	if tee.String() != result.Stderr {
		t.Fatalf("tee mismatch: %q vs %q", tee.String(), result.Stderr)
	}
}

func TestRunReportsExitCodeAndStderr(t *testing.T) {
	bin := writeFakeFfmpeg(t, `echo "Invalid stream specifier: a100" >&2
exit 3`)

	result, err := ffmpeg.Run(context.Background(), []string{bin}, ffmpeg.RunOptions{})
	var exitErr *ffmpeg.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %v", err)
	}
	if exitErr.Code != 3 || result.ExitCode != 3 {
		t.Fatalf("unexpected exit codes %d / %d", exitErr.Code, result.ExitCode)
	}
	if !strings.Contains(err.Error(), "Invalid stream specifier") {
		t.Fatalf("error should carry stderr: %v", err)
	}
}

func TestRunMissingBinary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-ffmpeg")
	if _, err := ffmpeg.Run(context.Background(), []string{missing}, ffmpeg.RunOptions{}); !errors.Is(err, ffmpeg.ErrBinaryNotFound) {
		t.Fatalf("expected ErrBinaryNotFound, got %v", err)
	}
}

func TestRunNoArgs(t *testing.T) {
	if _, err := ffmpeg.Run(context.Background(), nil, ffmpeg.RunOptions{}); err == nil {
		t.Fatal("expected error for empty args")
	}
}

func TestOverlaySoundsPassesArgs(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	bin := writeFakeFfmpeg(t, `for arg in "$@"; do echo "$arg"; done > "`+argsFile+`"`)

	job := models.DefaultOverlayJob()
	job.FfmpegBinary = bin

	if _, err := ffmpeg.OverlaySounds(context.Background(), job, ffmpeg.RunOptions{}); err != nil {
		t.Fatalf("OverlaySounds returned error: %v", err)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read args: %v", err)
	}
	got := strings.Split(strings.TrimSpace(string(data)), "\n")

	want, err := ffmpeg.BuildOverlayArgs(job)
	if err != nil {
		t.Fatalf("BuildOverlayArgs returned error: %v", err)
	}
	want = want[1:]
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected args:\ngot  %q\nwant %q", got, want)
	}
}

func TestStderrTail(t *testing.T) {
	stderr := "line1\n\nline2\nline3\n  \nline4\n"
	if got := ffmpeg.StderrTail(stderr, 2); got != "line3 | line4" {
		t.Fatalf("unexpected tail %q", got)
	}
	if got := ffmpeg.StderrTail("", 5); got != "" {
		t.Fatalf("expected empty tail, got %q", got)
	}

	err := &ffmpeg.ExitError{Code: 1}
	if err.Error() != "ffmpeg exited with status 1" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
