package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Affiliat0r/Vertaler/internal/services"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll for pending submissions until interrupted",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := services.NewAppFromEnv(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		interval := watchInterval
		if interval <= 0 {
			interval = app.Config.PollInterval
		}
		return app.Pipeline.Poll(ctx, interval)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "poll interval (default POLL_INTERVAL)")
	rootCmd.AddCommand(watchCmd)
}
