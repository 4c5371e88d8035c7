package ffmpeg

import (
	"context"

	"overlayr/pkg/models"
)

const defaultBinary = "ffmpeg"

// BuildOverlayArgs assembles the full ffmpeg argument vector for a job,
// including the binary name as the first element.
func BuildOverlayArgs(job models.OverlayJob) ([]string, error) {
	events, err := job.Events()
	if err != nil {
		return nil, err
	}

	binary := job.FfmpegBinary
	if binary == "" {
		binary = defaultBinary
	}

	args := make([]string, 0, 2*len(events)+9)
	args = append(args, binary)
	if job.Overwrite {
		args = append(args, "-y")
	}

	for _, input := range job.InputPaths() {
		args = append(args, "-i", input)
	}

	args = append(args,
		"-filter_complex", NewFilterGraph(events).String(),
		job.OutputPath,
	)
	return args, nil
}

// OverlaySounds renders the job's sound events onto its video.
func OverlaySounds(ctx context.Context, job models.OverlayJob, opts RunOptions) (*Result, error) {
	args, err := BuildOverlayArgs(job)
	if err != nil {
		return nil, err
	}
	return Run(ctx, args, opts)
}
