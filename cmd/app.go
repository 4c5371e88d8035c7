package cmd

import (
	"log/slog"

	"github.com/urfave/cli/v2"

	"overlayr/pkg/logging"
)

const (
	ArgLogLevel  = "log-level"
	ArgLogFormat = "log-format"
)

var appFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    ArgLogLevel,
		Value:   "info",
		Usage:   "Log level: debug, info, warn or error.",
		EnvVars: []string{"OVERLAYR_LOG_LEVEL"},
	},
	&cli.StringFlag{
		Name:  ArgLogFormat,
		Value: "text",
		Usage: "Log format: text or json.",
	},
}

// App represents the CLI application
func App(version string) *cli.App {
	app := cli.NewApp()
	app.Name = "overlayr"
	app.Version = version
	app.EnableBashCompletion = true
	app.DisableSliceFlagSeparator = true
	app.Usage = "CLI application to encode simulation frames into a video and overlay sound effects at event frames using ffmpeg."
	app.Flags = appFlags
	app.Before = setupLogging
	app.Commands = []*cli.Command{
		RenderCommand,
		PlanCommand,
		FramesCommand,
	}
	return app
}

func setupLogging(ctx *cli.Context) error {
	logger, err := logging.New(ctx.App.ErrWriter, logging.Options{
		Level:  ctx.String(ArgLogLevel),
		Format: ctx.String(ArgLogFormat),
	})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}
