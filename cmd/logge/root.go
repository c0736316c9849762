package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags rootFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "logge",
		Short:         "Console and file log sink",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.level, "max-level", "", "Override logging.level (off, error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().StringVar(&flags.output, "output", "", "Override logging.output (stderr, stdout, or a file path)")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "", "Override logging.color (auto, always, never)")

	rootCmd.AddCommand(newEmitCommand(ctx))
	rootCmd.AddCommand(newStressCommand(ctx))
	rootCmd.AddCommand(newLevelsCommand(ctx))
	rootCmd.AddCommand(newTailCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
