// Package trigger exposes the pipeline to HTTP callers and CloudEvents.
package trigger

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Affiliat0r/Vertaler/internal/models"
	"github.com/Affiliat0r/Vertaler/internal/services"
)

// SecretHeader carries the optional shared webhook secret.
const SecretHeader = "X-Webhook-Secret"

// Processor is the part of *services.Pipeline the triggers drive.
type Processor interface {
	Process(ctx context.Context, sub *models.Submission) (*services.Result, error)
	ProcessByID(ctx context.Context, id string) (*services.Result, error)
	ProcessBatch(ctx context.Context, subs []*models.Submission) models.BatchSummary
}

// PendingLister lists submissions eligible for processing.
type PendingLister interface {
	ListPending(ctx context.Context) ([]*models.Submission, error)
}

// Handlers serves the webhook, process-pending and health endpoints.
type Handlers struct {
	processor Processor
	pending   PendingLister
	runner    *Runner
	secret    string
	service   string
	now       func() time.Time
}

// NewHandlers wires the handlers. An empty secret disables the secret check.
func NewHandlers(processor Processor, pending PendingLister, runner *Runner, secret, service string) *Handlers {
	if runner == nil {
		runner = &Runner{}
	}
	return &Handlers{
		processor: processor,
		pending:   pending,
		runner:    runner,
		secret:    secret,
		service:   service,
		now:       time.Now,
	}
}

// Runner returns the runner background work is started on.
func (h *Handlers) Runner() *Runner {
	return h.runner
}

func (h *Handlers) authorized(r *http.Request) bool {
	if h.secret == "" {
		return true
	}
	got := r.Header.Get(SecretHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) == 1
}

// Webhook accepts a database insert notification and starts processing the
// inserted submission in the background.
func (h *Handlers) Webhook(w http.ResponseWriter, r *http.Request) {
	slog.Info("Webhook received.")
	if !h.authorized(r) {
		slog.Warn("Rejected webhook with invalid secret.")
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	var payload models.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Error("Could not decode webhook body.", "error", err)
		http.Error(w, "Bad Request: could not parse JSON", http.StatusBadRequest)
		return
	}
	slog.Info("Webhook payload decoded.", "type", payload.Type, "table", payload.Table)

	if payload.Type != models.WebhookInsert {
		writeJSON(w, http.StatusOK, models.TriggerResponse{Message: "Ignored non-INSERT event"})
		return
	}
	sub := payload.Record
	if sub == nil || !sub.HasFiles() {
		slog.Info("No files in submission, skipping translation.")
		writeJSON(w, http.StatusOK, models.TriggerResponse{Message: "No files to process"})
		return
	}

	writeJSON(w, http.StatusOK, models.TriggerResponse{Message: "Processing started", SubmissionID: sub.ID})

	h.runner.Go(r.Context(), "webhook", func(ctx context.Context) {
		if _, err := h.processor.Process(ctx, sub); err != nil {
			logOutcome(sub.ShortID(), err)
		}
	})
}

// ProcessPending lists every pending submission, reports how many were
// found and processes them sequentially in the background.
func (h *Handlers) ProcessPending(w http.ResponseWriter, r *http.Request) {
	slog.Info("Manual processing triggered.")
	if !h.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	subs, err := h.pending.ListPending(r.Context())
	if err != nil {
		slog.Error("Failed to list pending submissions.", "error", err)
		http.Error(w, "Internal Server Error: failed to list pending submissions", http.StatusInternalServerError)
		return
	}
	if len(subs) == 0 {
		writeJSON(w, http.StatusOK, models.TriggerResponse{Message: "No pending submissions"})
		return
	}

	writeJSON(w, http.StatusOK, models.TriggerResponse{
		Message: fmt.Sprintf("Processing %d submission(s)", len(subs)),
		Count:   len(subs),
	})

	h.runner.Go(r.Context(), "process-pending", func(ctx context.Context) {
		h.processor.ProcessBatch(ctx, subs)
	})
}

// Root reports the service name.
func (h *Handlers) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": h.service})
}

// Health reports liveness with the current time.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

// logOutcome logs a failed background run. Skips are not failures.
func logOutcome(shortID string, err error) {
	switch {
	case errors.Is(err, services.ErrAlreadyClaimed):
		slog.Info("Submission already claimed, skipping.", "submissionId", shortID)
	case errors.Is(err, services.ErrNoFiles):
		slog.Info("Submission has no files, skipping.", "submissionId", shortID)
	default:
		slog.Error("Background processing failed.", "submissionId", shortID, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to write response.", "error", err)
	}
}
