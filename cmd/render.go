package cmd

import (
	"log/slog"

	"github.com/urfave/cli/v2"

	"overlayr/pkg/ffmpeg"
	"overlayr/pkg/utils"
)

const ArgSkipInputCheck = "skip-input-check"

var renderFlags = append([]cli.Flag{
	&cli.BoolFlag{
		Name:  ArgSkipInputCheck,
		Usage: "Hand input paths to ffmpeg without checking that they exist.",
	},
	showFfmpegFlag,
}, jobFlags...)

func render(ctx *cli.Context) (err error) {
	job, err := resolveJob(ctx)
	if err != nil {
		return err
	}

	events, err := job.Events()
	if err != nil {
		return err
	}

	if !ctx.Bool(ArgSkipInputCheck) {
		if err := utils.CheckInputs(job.InputPaths()...); err != nil {
			return err
		}
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

	slog.Info("rendering sound overlay",
		slog.String("video", job.VideoPath),
		slog.String("output", job.OutputPath),
		slog.Int("events", len(events)),
		slog.Int("last_delay_ms", events.Latest()),
	)

	result, err := ffmpeg.OverlaySounds(ctx.Context, job, ffmpegRunOptions(ctx))
	if err != nil {
		return err
	}

	slog.Info("render complete",
		slog.String("output", job.OutputPath),
		slog.Int("exit_code", result.ExitCode),
		slog.Duration("duration", result.Duration),
	)
	return
}

var RenderCommand = &cli.Command{
	Name:   "render",
	Usage:  "Run ffmpeg to mix the sound snippets into the video",
	Action: render,
	Flags:  renderFlags,
}
