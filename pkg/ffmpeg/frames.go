package ffmpeg

import (
	"context"
	"path/filepath"
	"strconv"

	"overlayr/pkg/models"
)

// BuildFramesArgs assembles the ffmpeg arguments that encode frameCount
// numbered images into an H.264 video.
func BuildFramesArgs(job models.FramesJob, frameCount int) ([]string, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	binary := job.FfmpegBinary
	if binary == "" {
		binary = defaultBinary
	}

	args := []string{binary}
	if job.Overwrite {
		args = append(args, "-y")
	}

	return append(args,
		"-framerate", strconv.FormatFloat(job.FrameRate, 'f', -1, 64),
		"-start_number", "0",
		"-i", filepath.Join(job.FrameDir, models.FramePattern),
		"-frames:v", strconv.Itoa(frameCount),
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		job.OutputPath,
	), nil
}

// EncodeFrames renders the job's frame images into its output video.
func EncodeFrames(ctx context.Context, job models.FramesJob, frameCount int, opts RunOptions) (*Result, error) {
	args, err := BuildFramesArgs(job, frameCount)
	if err != nil {
		return nil, err
	}
	return Run(ctx, args, opts)
}
