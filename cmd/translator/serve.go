package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Affiliat0r/Vertaler/internal/gcp"
	"github.com/Affiliat0r/Vertaler/internal/services"
	"github.com/Affiliat0r/Vertaler/internal/trigger"
)

var (
	serveAddr string
	servePoll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the webhook and process-pending endpoints",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":"+gcp.GetEnv("PORT", "3000"), "listen address")
	serveCmd.Flags().BoolVar(&servePoll, "poll", false, "also poll for pending submissions every POLL_INTERVAL")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := services.NewAppFromEnv(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	runner := &trigger.Runner{}
	handlers := trigger.NewHandlers(app.Pipeline, app.Store, runner, app.Config.WebhookSecret, "translator")
	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           trigger.NewRouter(handlers),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Translation server listening.", "addr", serveAddr, "webhook", "POST /webhook", "manual", "POST /process-pending")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if servePoll {
		g.Go(func() error {
			return app.Pipeline.Poll(gctx, app.Config.PollInterval)
		})
	}

	err = g.Wait()
	slog.Info("Waiting for background processing to finish.")
	runner.Wait()
	return err
}
