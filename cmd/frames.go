package cmd

import (
	"log/slog"

	"github.com/urfave/cli/v2"

	"overlayr/pkg/ffmpeg"
	"overlayr/pkg/models"
	"overlayr/pkg/utils"
)

const (
	ArgFrameDir     = "frame-dir"
	ArgRemoveFrames = "remove-frames"
)

var framesFlags = []cli.Flag{
	&cli.PathFlag{
		Name:  ArgFrameDir,
		Value: models.DefaultFramesJob().FrameDir,
		Usage: "Directory holding frame_0.png, frame_1.png, ...",
	},
	&cli.Float64Flag{
		Name:  ArgFrameRate,
		Value: models.DefaultFramesJob().FrameRate,
		Usage: "Frames per second of the encoded video.",
	},
	&cli.PathFlag{
		Name:    ArgOutput,
		Aliases: []string{"o"},
		Value:   models.DefaultFramesJob().OutputPath,
		Usage:   "Encoded video file.",
	},
	&cli.StringFlag{
		Name:  ArgFfmpeg,
		Value: models.DefaultFramesJob().FfmpegBinary,
		Usage: "ffmpeg binary name or path.",
	},
	&cli.BoolFlag{
		Name:    ArgOverwrite,
		Aliases: []string{"y"},
		Usage:   "Overwrite the output file without asking.",
	},
	&cli.BoolFlag{
		Name:  ArgRemoveFrames,
		Usage: "Delete the frame images once the video has been encoded.",
	},
	showFfmpegFlag,
}

func frames(ctx *cli.Context) (err error) {
	job := models.FramesJob{
		FrameDir:     ctx.Path(ArgFrameDir),
		FrameRate:    ctx.Float64(ArgFrameRate),
		OutputPath:   ctx.Path(ArgOutput),
		FfmpegBinary: ctx.String(ArgFfmpeg),
		Overwrite:    ctx.Bool(ArgOverwrite),
		RemoveFrames: ctx.Bool(ArgRemoveFrames),
	}
	if err := job.Validate(); err != nil {
		return err
	}

	count, err := utils.ScanFrames(job.FrameDir)
	if err != nil {
		return err
	}

	if err := utils.EnsureParentDir(job.OutputPath); err != nil {
		return err
	}

	lock, err := utils.LockOutput(job.OutputPath)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := lock.Release(); releaseErr != nil {
			slog.Warn("failed to release output lock", slog.String("file", lock.Path()), slog.Any("error", releaseErr))
		}
	}()

	slog.Info("encoding frames",
		slog.String("dir", job.FrameDir),
		slog.Int("frames", count),
		slog.String("output", job.OutputPath),
	)

	result, err := ffmpeg.EncodeFrames(ctx.Context, job, count, ffmpegRunOptions(ctx))
	if err != nil {
		return err
	}

	if job.RemoveFrames {
		removed, err := utils.RemoveFrameImages(job.FrameDir)
		if err != nil {
			return err
		}
		slog.Info("removed frame images", slog.Int("count", removed))
	}

	slog.Info("video complete",
		slog.String("output", job.OutputPath),
		slog.Duration("duration", result.Duration),
	)
	return
}

var FramesCommand = &cli.Command{
	Name:   "frames",
	Usage:  "Encode numbered frame images into the video that sound is later added to",
	Action: frames,
	Flags:  framesFlags,
}
