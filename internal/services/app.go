package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"

	"github.com/Affiliat0r/Vertaler/internal/assembly"
	"github.com/Affiliat0r/Vertaler/internal/gcp"
	"github.com/Affiliat0r/Vertaler/internal/notify"
)

// App owns the cloud clients behind a Pipeline.
type App struct {
	Config   *Config
	Pipeline *Pipeline
	Store    *gcp.SubmissionStore

	firestore *firestore.Client
	storage   *storage.Client
	vertex    *gcp.VertexClient
}

// NewApp initializes all clients needed by the pipeline.
func NewApp(ctx context.Context, cfg *Config) (*App, error) {
	engine, err := assembly.New(cfg.Document)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg}

	app.firestore, err = gcp.NewFirestoreClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, err
	}
	app.storage, err = storage.NewClient(ctx)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	app.vertex, err = gcp.NewVertexClient(ctx, cfg.ProjectID, cfg.VertexAIRegion, cfg.ExtractionModel)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create vertex client: %w", err)
	}

	app.Store = gcp.NewSubmissionStore(app.firestore, cfg.SubmissionsCollection)
	blobs := gcp.NewBlobStore(app.storage, gcp.BlobStoreConfig{
		Bucket:        cfg.DocumentsBucket,
		Prefix:        cfg.TranslationsPrefix,
		PublicBaseURL: cfg.PublicBaseURL,
	})
	mailer, err := notify.NewMailer(notify.Config{
		APIKey:     cfg.ResendAPIKey,
		From:       cfg.EmailFrom,
		Recipients: cfg.EmailRecipients,
	})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}
	if !mailer.Enabled() {
		slog.Warn("RESEND_API_KEY not set, email notifications are disabled.")
	}

	app.Pipeline = NewPipeline(app.Store, blobs, NewVertexExtractor(app.vertex.ExtractionModel), engine, mailer, PipelineConfig{
		ScratchDir:   cfg.ScratchDir,
		PhaseTimeout: cfg.PhaseTimeout,
		Languages:    cfg.Languages,
	})

	slog.Info("Pipeline initialized.",
		"projectId", cfg.ProjectID,
		"collection", cfg.SubmissionsCollection,
		"bucket", cfg.DocumentsBucket,
		"model", cfg.ExtractionModel,
	)
	return app, nil
}

// NewAppFromEnv loads the configuration and initializes an App.
func NewAppFromEnv(ctx context.Context) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewApp(ctx, cfg)
}

// Close releases every client the App opened.
func (a *App) Close() error {
	var errs []error
	if a.vertex != nil {
		errs = append(errs, a.vertex.Close())
	}
	if a.storage != nil {
		errs = append(errs, a.storage.Close())
	}
	if a.firestore != nil {
		errs = append(errs, a.firestore.Close())
	}
	return errors.Join(errs...)
}
