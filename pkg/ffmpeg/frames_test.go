package ffmpeg_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"overlayr/pkg/ffmpeg"
	"overlayr/pkg/models"
)

func TestBuildFramesArgs(t *testing.T) {
	job := models.DefaultFramesJob()
	job.FrameRate = 29.97

	args, err := ffmpeg.BuildFramesArgs(job, 120)
	if err != nil {
		t.Fatalf("BuildFramesArgs returned error: %v", err)
	}

	want := []string{
		"ffmpeg",
		"-framerate", "29.97",
		"-start_number", "0",
		"-i", filepath.Join("Image Frames", "frame_%d.png"),
		"-frames:v", "120",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"simulation.avi",
	}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("unexpected args:\ngot  %q\nwant %q", args, want)
	}

	job.Overwrite = true
	args, err = ffmpeg.BuildFramesArgs(job, 1)
	if err != nil {
		t.Fatalf("BuildFramesArgs returned error: %v", err)
	}
	if args[1] != "-y" {
		t.Fatalf("expected -y after binary, got %q", args)
	}
}

func TestBuildFramesArgsRejectsInvalidJob(t *testing.T) {
	job := models.DefaultFramesJob()
	job.FrameRate = -1
	if _, err := ffmpeg.BuildFramesArgs(job, 10); !errors.Is(err, models.ErrInvalidFrameRate) {
		t.Fatalf("expected ErrInvalidFrameRate, got %v", err)
	}

	job = models.DefaultFramesJob()
	job.FrameDir = ""
	if _, err := ffmpeg.BuildFramesArgs(job, 10); !errors.Is(err, models.ErrMissingPath) {
		t.Fatalf("expected ErrMissingPath, got %v", err)
	}
}

func TestEncodeFramesPassesArgs(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	bin := writeFakeFfmpeg(t, `for arg in "$@"; do echo "$arg"; done > "`+argsFile+`"`)

	job := models.DefaultFramesJob()
	job.FfmpegBinary = bin

	if _, err := ffmpeg.EncodeFrames(context.Background(), job, 3, ffmpeg.RunOptions{}); err != nil {
		t.Fatalf("EncodeFrames returned error: %v", err)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read args: %v", err)
	}
	if !strings.Contains(string(data), "-frames:v\n3\n") {
		t.Fatalf("unexpected args:\n%s", data)
	}
}
