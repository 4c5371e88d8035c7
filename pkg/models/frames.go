package models

import "fmt"

// FramePattern is the printf-style name of every rendered frame image,
// numbered from zero.
const FramePattern = "frame_%d.png"

// FramesJob turns a directory of numbered frame images into the video an
// OverlayJob later adds sound to.
type FramesJob struct {
	FrameDir     string
	FrameRate    float64
	OutputPath   string
	FfmpegBinary string
	Overwrite    bool
	RemoveFrames bool
}

func DefaultFramesJob() FramesJob {
	return FramesJob{
		FrameDir:     "Image Frames",
		FrameRate:    30,
		OutputPath:   DefaultOverlayJob().VideoPath,
		FfmpegBinary: "ffmpeg",
	}
}

func (job FramesJob) Validate() error {
	if job.FrameDir == "" {
		return fmt.Errorf("frame directory: %w", ErrMissingPath)
	}
	if job.OutputPath == "" {
		return fmt.Errorf("output path: %w", ErrMissingPath)
	}
	if !validFrameRate(job.FrameRate) {
		return fmt.Errorf("%w: %v", ErrInvalidFrameRate, job.FrameRate)
	}
	return nil
}
