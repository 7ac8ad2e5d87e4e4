package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/Affiliat0r/Vertaler/internal/services"
	"github.com/Affiliat0r/Vertaler/internal/trigger"
)

var (
	handlers *trigger.Handlers
	once     sync.Once
	initErr  error
)

func init() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	functions.HTTP("HandleSubmissionWebhook", handleSubmissionWebhook)
}

// main is required by the Go Functions Framework.
func main() {}

// handleSubmissionWebhook answers the database insert webhook and processes
// the new submission in the background.
func handleSubmissionWebhook(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		var app *services.App
		app, initErr = services.NewAppFromEnv(context.Background())
		if initErr == nil {
			handlers = trigger.NewHandlers(app.Pipeline, app.Store, &trigger.Runner{}, app.Config.WebhookSecret, "submission-webhook")
		}
	})
	if initErr != nil {
		slog.Error("Critical error during function initialization", "error", initErr)
		http.Error(w, "Internal Server Error: failed to initialize service", http.StatusInternalServerError)
		return
	}

	handlers.Webhook(w, r)
}
