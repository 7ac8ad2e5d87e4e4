package main

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	cloudevents "github.com/cloudevents/sdk-go/v2"

	"github.com/Affiliat0r/Vertaler/internal/services"
	"github.com/Affiliat0r/Vertaler/internal/trigger"
)

var (
	events  *trigger.EventHandler
	once    sync.Once
	initErr error
)

func init() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	functions.CloudEvent("HandleSubmissionCreated", handleSubmissionCreated)
}

// main is required by the Go Functions Framework.
func main() {}

// handleSubmissionCreated processes the submission announced by the event.
// Returning an error marks the invocation as failed so it can be retried.
func handleSubmissionCreated(ctx context.Context, e cloudevents.Event) error {
	once.Do(func() {
		var app *services.App
		app, initErr = services.NewAppFromEnv(context.Background())
		if initErr == nil {
			events = trigger.NewEventHandler(app.Pipeline)
		}
	})
	if initErr != nil {
		slog.Error("Critical error during function initialization", "error", initErr)
		return initErr
	}

	return events.HandleSubmissionCreated(ctx, e)
}
