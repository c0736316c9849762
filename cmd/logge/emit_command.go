package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"logge/facade"
)

func newEmitCommand(ctx *commandContext) *cobra.Command {
	var levelName string
	var target string
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Write one event (or one per stdin line) through the sink",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := facade.ParseLevel(levelName)
			if err != nil {
				return err
			}
			target = strings.TrimSpace(target)
			if !fromStdin && len(args) == 0 {
				return errors.New("emit: a message is required (or use --stdin)")
			}

			closer, err := ctx.installSink(cmd)
			if err != nil {
				return err
			}
			defer closer.Close()
			defer facade.Flush()

			if !fromStdin {
				facade.Logf(level, target, "%s", strings.Join(args, " "))
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for scanner.Scan() {
				facade.Logf(level, target, "%s", scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&levelName, "level", "l", "info", "Event level (error, warn, info, debug, trace)")
	cmd.Flags().StringVarP(&target, "target", "t", cliTarget, "Event target")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Emit one event per line read from standard input")
	return cmd
}
