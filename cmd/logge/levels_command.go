package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"logge/facade"
	"logge/logger"
)

func newLevelsCommand(ctx *commandContext) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Show each level and whether the current configuration writes it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			closer, err := ctx.installSink(cmd)
			if err != nil {
				return err
			}
			defer closer.Close()

			rows := make([][]string, 0, len(facade.Levels))
			for _, level := range facade.Levels {
				rows = append(rows, []string{
					strconv.Itoa(int(level)),
					level.String(),
					strconv.Quote(fmt.Sprintf("%-5s", level.Title())),
					logger.ColorName(level),
					yesNo(facade.Enabled(level, target)),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Max level: %s   Target: %s   Output: %s   Color: %s\n",
				facade.MaxLevel(), target, cfg.Logging.Output, cfg.Logging.Color)
			fmt.Fprintln(out, renderTable([]string{"#", "Level", "Token", "Color", "Written"}, rows, 0))
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", cliTarget, "Target to evaluate")
	return cmd
}
