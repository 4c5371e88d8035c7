package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"overlayr/pkg/ffmpeg"
)

const ArgShowFfmpeg = "show-ffmpeg"

var showFfmpegFlag = &cli.BoolFlag{
	Name:  ArgShowFfmpeg,
	Usage: "Stream ffmpeg's stderr to the terminal. Defaults to on when stderr is a terminal.",
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ffmpegRunOptions tees ffmpeg's stderr to the app's error writer when
// --show-ffmpeg is set, or by default when that writer is a terminal.
func ffmpegRunOptions(ctx *cli.Context) ffmpeg.RunOptions {
	opts := ffmpeg.RunOptions{Logger: slog.Default()}

	show := isTerminal(ctx.App.ErrWriter)
	if ctx.IsSet(ArgShowFfmpeg) {
		show = ctx.Bool(ArgShowFfmpeg)
	}
	if show {
		opts.Stderr = ctx.App.ErrWriter
	}
	return opts
}
