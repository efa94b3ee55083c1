package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/aide/internal/platform"
	"github.com/aretw0/aide/pkg/adapters/fs"
	"github.com/aretw0/aide/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print collection changes as they happen",
	Long:  `Watch observes the data directory until interrupted (Ctrl+C).`,
	Args:  cobra.NoArgs,
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := os.MkdirAll(ws.Dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", ws.Dir, err)
		}
		events, err := fs.Watch(ctx, ws.Dir, logger)
		if err != nil {
			return err
		}
		src := lifecycle.NewSource(events)
		if err := src.Start(ctx); err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Watching %s (Ctrl+C to stop)\n", ws.Dir)
		for e := range src.Events() {
			fmt.Fprintf(w, "%s %s\n", time.Now().Format(time.TimeOnly), e)
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
