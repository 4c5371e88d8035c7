package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"overlayr/pkg/config"
	"overlayr/pkg/models"
)

const (
	ArgJob         = "job"
	ArgVideo       = "video"
	ArgSilentAudio = "silent-audio"
	ArgSnippet     = "snippet"
	ArgFrame       = "frame"
	ArgFrameRate   = "frame-rate"
	ArgOutput      = "output"
	ArgFfmpeg      = "ffmpeg"
	ArgOverwrite   = "overwrite"
)

var jobFlags = []cli.Flag{
	&cli.PathFlag{
		Name:    ArgJob,
		Aliases: []string{"j"},
		Usage:   "TOML job file. Flags given on the command line override its values.",
	},
	&cli.PathFlag{
		Name:  ArgVideo,
		Usage: "Video file to add sound to (ffmpeg input 0).",
	},
	&cli.PathFlag{
		Name:  ArgSilentAudio,
		Usage: "Silent base audio track (ffmpeg input 1).",
	},
	&cli.StringSliceFlag{
		Name:  ArgSnippet,
		Usage: fmt.Sprintf("Sound snippet file, repeat once per --%s in the same order.", ArgFrame),
	},
	&cli.IntSliceFlag{
		Name:  ArgFrame,
		Usage: fmt.Sprintf("Frame index at which the matching --%s starts playing.", ArgSnippet),
	},
	&cli.Float64Flag{
		Name:  ArgFrameRate,
		Usage: "Frames per second of the video.",
	},
	&cli.PathFlag{
		Name:    ArgOutput,
		Aliases: []string{"o"},
		Usage:   "Rendered output file.",
	},
	&cli.StringFlag{
		Name:  ArgFfmpeg,
		Usage: "ffmpeg binary name or path.",
	},
	&cli.BoolFlag{
		Name:    ArgOverwrite,
		Aliases: []string{"y"},
		Usage:   "Overwrite the output file without asking.",
	},
}

// resolveJob layers the job file, if any, and explicit flags over the default
// job.
func resolveJob(ctx *cli.Context) (models.OverlayJob, error) {
	job := models.DefaultOverlayJob()

	if path := ctx.Path(ArgJob); path != "" {
		loaded, err := config.LoadJobFile(path)
		if err != nil {
			return job, err
		}
		job = loaded
	}

	if ctx.IsSet(ArgVideo) {
		job.VideoPath = ctx.Path(ArgVideo)
	}
	if ctx.IsSet(ArgSilentAudio) {
		job.SilentAudioPath = ctx.Path(ArgSilentAudio)
	}
	if ctx.IsSet(ArgSnippet) {
		job.SnippetPaths = ctx.StringSlice(ArgSnippet)
	}
	if ctx.IsSet(ArgFrame) {
		job.EventFrames = ctx.IntSlice(ArgFrame)
	}
	if ctx.IsSet(ArgFrameRate) {
		job.FrameRate = ctx.Float64(ArgFrameRate)
	}
	if ctx.IsSet(ArgOutput) {
		job.OutputPath = ctx.Path(ArgOutput)
	}
	if ctx.IsSet(ArgFfmpeg) {
		job.FfmpegBinary = ctx.String(ArgFfmpeg)
	}
	if ctx.IsSet(ArgOverwrite) {
		job.Overwrite = ctx.Bool(ArgOverwrite)
	}

	return job, nil
}
