package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Affiliat0r/Vertaler/internal/gcp"
	"github.com/Affiliat0r/Vertaler/internal/models"
	"github.com/Affiliat0r/Vertaler/internal/notify"
	"github.com/Affiliat0r/Vertaler/internal/sections"
)

var (
	// ErrNoFiles is returned for a submission without file references. No
	// state is changed.
	ErrNoFiles = errors.New("submission has no files")
	// ErrNoDownloads means none of the referenced files could be retrieved.
	ErrNoDownloads = errors.New("no files could be downloaded")
	// ErrNoEligibleFile means no downloaded file is a PDF or a supported image.
	ErrNoEligibleFile = errors.New("no PDF or image file found in submission")
	// ErrAlreadyClaimed is returned when another attempt owns the submission.
	ErrAlreadyClaimed = gcp.ErrAlreadyClaimed
)

// SubmissionStore holds submission records and their status.
type SubmissionStore interface {
	ListPending(ctx context.Context) ([]*models.Submission, error)
	Get(ctx context.Context, id string) (*models.Submission, error)
	Claim(ctx context.Context, id, attemptID string) error
	UpdateStatus(ctx context.Context, id string, status models.Status, details string) error
	SetTranslation(ctx context.Context, id, url string) error
}

// BlobStore retrieves source files and stores output documents.
type BlobStore interface {
	Download(ctx context.Context, ref, dir string, index int) (string, error)
	Upload(ctx context.Context, localPath, submissionID string) (string, error)
}

// Extractor turns a source file into translated section data.
type Extractor interface {
	Extract(ctx context.Context, path string, langs LanguagePair) (sections.DocumentData, error)
}

// Assembler serializes section data to an output document.
type Assembler interface {
	Assemble(data sections.DocumentData) ([]byte, error)
}

// Notifier announces a finished translation.
type Notifier interface {
	NotifyTranslated(ctx context.Context, sub *models.Submission, doc notify.Document) error
}

// PipelineConfig tunes a Pipeline.
type PipelineConfig struct {
	ScratchDir   string
	PhaseTimeout time.Duration
	// Languages is used when a submission's direction cannot be parsed.
	Languages LanguagePair
}

// Pipeline drives one submission from new to translated or error.
type Pipeline struct {
	store     SubmissionStore
	blobs     BlobStore
	extractor Extractor
	assembler Assembler
	notifier  Notifier
	config    PipelineConfig

	inspect   PDFInspector
	now       func() time.Time
	attemptID func() string
}

// NewPipeline wires the collaborators of a Pipeline.
func NewPipeline(store SubmissionStore, blobs BlobStore, extractor Extractor, assembler Assembler, notifier Notifier, config PipelineConfig) *Pipeline {
	if config.PhaseTimeout <= 0 {
		config.PhaseTimeout = 5 * time.Minute
	}
	if config.Languages == (LanguagePair{}) {
		config.Languages = DefaultLanguages
	}
	return &Pipeline{
		store:     store,
		blobs:     blobs,
		extractor: extractor,
		assembler: assembler,
		notifier:  notifier,
		config:    config,
		inspect:   InspectPDF,
		now:       time.Now,
		attemptID: uuid.NewString,
	}
}

// Result describes a successful run.
type Result struct {
	SubmissionID string
	FileName     string
	URL          string
	// NotifyErr is the non-fatal notification failure, if any.
	NotifyErr error
}

// Process runs the full pipeline for sub. A submission without files is
// rejected before any state change; a submission claimed by another attempt
// is skipped with ErrAlreadyClaimed. Every other failure after the claim
// leaves the submission in error.
func (p *Pipeline) Process(ctx context.Context, sub *models.Submission) (*Result, error) {
	if !sub.HasFiles() {
		return nil, ErrNoFiles
	}

	attemptID := p.attemptID()
	logCtx := slog.With("submissionId", sub.ShortID(), "attemptId", attemptID)
	logCtx.Info("Processing submission.", "files", len(sub.FileURLs), "direction", sub.LanguageDirection)

	if err := p.store.Claim(ctx, sub.ID, attemptID); err != nil {
		if errors.Is(err, ErrAlreadyClaimed) {
			logCtx.Info("Submission already claimed by another attempt. Skipping.")
			return nil, err
		}
		logCtx.Error("Failed to claim submission.", "error", err)
		return nil, fmt.Errorf("failed to claim submission: %w", err)
	}

	scratch, err := os.MkdirTemp(p.config.ScratchDir, "submission-"+sub.ShortID()+"-")
	if err != nil {
		return nil, p.failSubmission(ctx, logCtx, sub, "failed to create scratch directory", err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			logCtx.Warn("Failed to remove scratch directory.", "dir", scratch, "error", err)
		}
	}()

	// --- 1. Download ---
	localFiles, err := runPhase(ctx, p.config.PhaseTimeout, func(ctx context.Context) ([]string, error) {
		return p.download(ctx, logCtx, sub, scratch)
	})
	if err != nil {
		return nil, p.failSubmission(ctx, logCtx, sub, "download failed", err)
	}

	// --- 2. Select the source file ---
	source, err := SelectSource(localFiles, p.inspect)
	if err != nil {
		return nil, p.failSubmission(ctx, logCtx, sub, "file selection failed", err)
	}

	// --- 3. Extract ---
	langs := ParseLanguageDirection(sub.LanguageDirection, p.config.Languages)
	logCtx.Info("Extracting document data.", "file", filepath.Base(source), "direction", langs.String())
	data, err := runPhase(ctx, p.config.PhaseTimeout, func(ctx context.Context) (sections.DocumentData, error) {
		return p.extractor.Extract(ctx, source, langs)
	})
	if err != nil {
		return nil, p.failSubmission(ctx, logCtx, sub, "extraction failed", err)
	}

	// --- 4. Assemble ---
	content, err := runPhase(ctx, p.config.PhaseTimeout, func(context.Context) ([]byte, error) {
		return p.assembler.Assemble(data)
	})
	if err != nil {
		return nil, p.failSubmission(ctx, logCtx, sub, "assembly failed", err)
	}
	fileName := OutputFileName(sub.Name, p.now())
	outPath := filepath.Join(scratch, fileName)
	if err := os.WriteFile(outPath, content, 0o644); err != nil {
		return nil, p.failSubmission(ctx, logCtx, sub, "failed to write output document", err)
	}
	logCtx.Info("Document assembled.", "fileName", fileName, "sections", data.PresentKeys(), "bytes", len(content))

	// --- 5. Upload ---
	url, err := runPhase(ctx, p.config.PhaseTimeout, func(ctx context.Context) (string, error) {
		return p.blobs.Upload(ctx, outPath, sub.ID)
	})
	if err != nil {
		return nil, p.failSubmission(ctx, logCtx, sub, "upload failed", err)
	}
	logCtx.Info("Document uploaded.", "url", url)

	// --- 6. Notify (best effort) ---
	res := &Result{SubmissionID: sub.ID, FileName: fileName, URL: url}
	_, res.NotifyErr = runPhase(ctx, p.config.PhaseTimeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.notifier.NotifyTranslated(ctx, sub, notify.Document{FileName: fileName, Content: content, URL: url})
	})
	switch {
	case res.NotifyErr == nil:
	case errors.Is(res.NotifyErr, notify.ErrDisabled):
		logCtx.Info("Notification skipped.", "reason", res.NotifyErr)
	default:
		logCtx.Error("Notification failed. Submission stays translated.", "error", res.NotifyErr)
	}

	// --- 7. Complete ---
	if err := p.store.SetTranslation(context.WithoutCancel(ctx), sub.ID, url); err != nil {
		logCtx.Error("CRITICAL: Failed to record translated status after upload.", "error", err)
		return res, fmt.Errorf("failed to record translation: %w", err)
	}
	logCtx.Info("Submission translated.")
	return res, nil
}

// download fetches every file reference into dir. Individual failures are
// logged; only retrieving nothing at all is an error.
func (p *Pipeline) download(ctx context.Context, logCtx *slog.Logger, sub *models.Submission, dir string) ([]string, error) {
	var paths []string
	for i, ref := range sub.FileURLs {
		if ref == "" {
			continue
		}
		local, err := p.blobs.Download(ctx, ref, dir, i)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logCtx.Warn("Failed to download file.", "ref", ref, "error", err)
			continue
		}
		paths = append(paths, local)
	}
	if len(paths) == 0 {
		return nil, ErrNoDownloads
	}
	logCtx.Info("Files downloaded.", "count", len(paths))
	return paths, nil
}

// failSubmission logs a fatal error, records the error status and returns
// the wrapped error. The status write outlives a cancelled ctx.
func (p *Pipeline) failSubmission(ctx context.Context, logCtx *slog.Logger, sub *models.Submission, message string, originalErr error) error {
	fullError := fmt.Sprintf("%s: %v", message, originalErr)
	logCtx.Error(message, "error", originalErr)
	if err := p.store.UpdateStatus(context.WithoutCancel(ctx), sub.ID, models.StatusError, fullError); err != nil {
		logCtx.Error("CRITICAL: Failed to update status to error after a processing error.", "updateError", err)
	}
	return fmt.Errorf("%s: %w", message, originalErr)
}

// runPhase runs fn under a timeout. The phase fails with the context's error
// when the deadline passes even if fn does not return.
func runPhase[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	phaseCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan phaseOutcome[T], 1)
	go func() {
		v, err := fn(phaseCtx)
		done <- phaseOutcome[T]{v, err}
	}()
	return awaitPhase(phaseCtx, done)
}

type phaseOutcome[T any] struct {
	value T
	err   error
}

// awaitPhase waits for the phase result. A result that is already available
// when ctx ends wins over the context error.
func awaitPhase[T any](ctx context.Context, done <-chan phaseOutcome[T]) (T, error) {
	select {
	case o := <-done:
		return o.value, o.err
	case <-ctx.Done():
		select {
		case o := <-done:
			return o.value, o.err
		default:
		}
		var zero T
		return zero, ctx.Err()
	}
}

// ProcessByID fetches a submission and processes it.
func (p *Pipeline) ProcessByID(ctx context.Context, id string) (*Result, error) {
	sub, err := p.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status != models.StatusNew {
		slog.Info("Submission is not new. Skipping.", "submissionId", sub.ShortID(), "status", sub.Status)
		return nil, ErrAlreadyClaimed
	}
	return p.Process(ctx, sub)
}

// ProcessPending processes every pending submission one at a time. A failed
// submission never stops the batch.
func (p *Pipeline) ProcessPending(ctx context.Context) (models.BatchSummary, error) {
	pending, err := p.store.ListPending(ctx)
	if err != nil {
		return models.BatchSummary{}, err
	}
	return p.ProcessBatch(ctx, pending), nil
}

// ProcessBatch processes subs sequentially and summarizes the outcome.
func (p *Pipeline) ProcessBatch(ctx context.Context, subs []*models.Submission) models.BatchSummary {
	summary := models.BatchSummary{Total: len(subs)}
	if len(subs) == 0 {
		slog.Info("No pending submissions to process.")
		return summary
	}
	slog.Info("Processing pending submissions.", "count", len(subs))

	for _, sub := range subs {
		if ctx.Err() != nil {
			slog.Warn("Batch cancelled.", "remaining", summary.Total-summary.Successful-summary.Failed-summary.Skipped)
			break
		}
		_, err := p.Process(ctx, sub)
		switch {
		case err == nil:
			summary.Successful++
		case errors.Is(err, ErrAlreadyClaimed), errors.Is(err, ErrNoFiles):
			summary.Skipped++
		default:
			summary.Failed++
		}
	}

	slog.Info("Batch complete.", "total", summary.Total, "successful", summary.Successful, "failed", summary.Failed, "skipped", summary.Skipped)
	return summary
}

// Poll runs ProcessPending immediately and then every interval until ctx is
// done. Listing failures are logged and retried on the next tick.
func (p *Pipeline) Poll(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := p.ProcessPending(ctx); err != nil && ctx.Err() == nil {
			slog.Error("Failed to process pending submissions.", "error", err)
		}
		select {
		case <-ctx.Done():
			slog.Info("Polling stopped.")
			return nil
		case <-ticker.C:
		}
	}
}
