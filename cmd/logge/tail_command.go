package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"logge/facade"
	"logge/internal/logs"
)

func newTailCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool
	var levelName string

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Print the end of the configured log file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.OutputIsFile() {
				return fmt.Errorf("tail requires a file output (logging.output is %s)", cfg.Logging.Output)
			}
			maxLevel, err := facade.ParseLevelFilter(levelName)
			if err != nil {
				return err
			}

			path := cfg.Logging.Output
			out := cmd.OutOrStdout()
			if lines < 0 {
				lines = 0
			}

			result, err := logs.Tail(cmd.Context(), path, logs.TailOptions{Offset: -1, Limit: lines})
			if err != nil {
				return fmt.Errorf("tail %s: %w", path, err)
			}
			shown := printLines(out, logs.FilterLines(result.Lines, maxLevel))
			if !follow {
				if shown == 0 {
					fmt.Fprintln(out, "No log entries available")
				}
				return nil
			}

			return logs.Follow(cmd.Context(), path, result.Offset, func(batch []string) error {
				printLines(out, logs.FilterLines(batch, maxLevel))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 20, "Number of trailing lines to show")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing lines as they are written")
	cmd.Flags().StringVar(&levelName, "min-level", "trace", "Hide events less severe than this level")
	return cmd
}

func printLines(w io.Writer, lines []string) int {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return len(lines)
}
