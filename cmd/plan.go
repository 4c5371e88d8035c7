package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v2"

	"overlayr/pkg/config"
	"overlayr/pkg/ffmpeg"
	"overlayr/pkg/models"
)

const ArgEmitJob = "emit-job"

var planFlags = append([]cli.Flag{
	&cli.PathFlag{
		Name:  ArgEmitJob,
		Usage: fmt.Sprintf("Write the resolved job as TOML to this file, usable later with --%s.", ArgJob),
	},
}, jobFlags...)

func plan(ctx *cli.Context) error {
	job, err := resolveJob(ctx)
	if err != nil {
		return err
	}

	events, err := job.Events()
	if err != nil {
		return err
	}

	args, err := ffmpeg.BuildOverlayArgs(job)
	if err != nil {
		return err
	}

	graph := ffmpeg.NewFilterGraph(events)

	w := ctx.App.Writer
	if len(events) > 0 {
		fmt.Fprintln(w, renderEventTable(graph.Delays(), events))
		fmt.Fprintf(w, "last sound starts at %d ms\n", events.Latest())
	}
	fmt.Fprintf(w, "filter graph: %s\n", graph)
	fmt.Fprintf(w, "command: %s\n", strings.Join(args, " "))

	if path := ctx.Path(ArgEmitJob); path != "" {
		if err := config.WriteJobFile(path, job); err != nil {
			return err
		}
		slog.Info("wrote job file", slog.String("file", path))
	}
	return nil
}

// renderEventTable lists each delay clause next to the snippet feeding it.
// delays and events share the same order.
func renderEventTable(delays []ffmpeg.DelayClause, events models.SoundEvents) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Input", "Frame", "Delay (ms)", "Label", "Snippet"})

	for i, clause := range delays {
		tw.AppendRow(table.Row{
			strconv.Itoa(clause.Input),
			strconv.Itoa(events[i].Frame),
			strconv.Itoa(clause.DelayMillis),
			clause.Label,
			events[i].SnippetPath,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return tw.Render()
}

var PlanCommand = &cli.Command{
	Name:   "plan",
	Usage:  "Print the event table, filter graph and ffmpeg command without running it",
	Action: plan,
	Flags:  planFlags,
}
