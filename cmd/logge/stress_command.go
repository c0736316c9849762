package main

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"logge/facade"
	"logge/logger"
)

func newStressCommand(ctx *commandContext) *cobra.Command {
	var workers int
	var count int
	var target string

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Emit events from many goroutines at once",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 1 || count < 1 {
				return errors.New("stress: --workers and --count must be positive")
			}

			closer, err := ctx.installSink(cmd)
			if err != nil {
				return err
			}
			defer closer.Close()

			errorsBefore := logger.Global().WriteErrors()
			start := time.Now()

			var wg sync.WaitGroup
			for w := range workers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					t := facade.For(fmt.Sprintf("%s::worker%d", target, w))
					for i := range count {
						t.Infof("event %d of %d", i+1, count)
					}
				}()
			}
			wg.Wait()
			facade.Flush()

			elapsed := time.Since(start)
			writeErrors := logger.Global().WriteErrors() - errorsBefore
			slog.Debug("stress run complete", "workers", workers, "events", workers*count, "elapsed", elapsed)

			fmt.Fprintf(cmd.OutOrStdout(), "Emitted %d events from %d workers in %s (write errors: %d)\n",
				workers*count, workers, elapsed.Round(time.Millisecond), writeErrors)
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 8, "Number of concurrent goroutines")
	cmd.Flags().IntVarP(&count, "count", "n", 1000, "Events per goroutine")
	cmd.Flags().StringVarP(&target, "target", "t", "stress", "Target prefix; each worker appends ::workerN")
	return cmd
}
