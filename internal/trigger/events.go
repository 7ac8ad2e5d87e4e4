package trigger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	cloudevents "github.com/cloudevents/sdk-go/v2"

	"github.com/Affiliat0r/Vertaler/internal/models"
	"github.com/Affiliat0r/Vertaler/internal/services"
)

// pubsubEnvelope is the data of a Pub/Sub message-published CloudEvent.
type pubsubEnvelope struct {
	Message struct {
		Data []byte `json:"data"`
	} `json:"message"`
}

// DecodeSubmissionEvent reads the submission id from event data. The data is
// either a SubmissionCreatedEvent or a Pub/Sub envelope wrapping one.
func DecodeSubmissionEvent(data []byte) (models.SubmissionCreatedEvent, error) {
	var evt models.SubmissionCreatedEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return evt, fmt.Errorf("json.Unmarshal: %w", err)
	}
	if evt.SubmissionID != "" {
		return evt, nil
	}

	var env pubsubEnvelope
	if err := json.Unmarshal(data, &env); err == nil && len(env.Message.Data) > 0 {
		if err := json.Unmarshal(env.Message.Data, &evt); err != nil {
			return evt, fmt.Errorf("json.Unmarshal message data: %w", err)
		}
	}
	if evt.SubmissionID == "" {
		return evt, errors.New("event carries no submissionId")
	}
	return evt, nil
}

// EventHandler processes the submission a CloudEvent announces.
type EventHandler struct {
	processor Processor
}

// NewEventHandler returns a handler driving processor.
func NewEventHandler(processor Processor) *EventHandler {
	return &EventHandler{processor: processor}
}

// HandleSubmissionCreated processes the announced submission synchronously.
// Redelivered events for an already claimed submission succeed without work.
func (h *EventHandler) HandleSubmissionCreated(ctx context.Context, e cloudevents.Event) error {
	evt, err := DecodeSubmissionEvent(e.Data())
	if err != nil {
		slog.Error("Failed to decode event data", "error", err, "eventId", e.ID(), "data", string(e.Data()))
		return err
	}

	_, err = h.processor.ProcessByID(ctx, evt.SubmissionID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, services.ErrAlreadyClaimed), errors.Is(err, services.ErrNoFiles):
		logOutcome(shortID(evt.SubmissionID), err)
		return nil
	default:
		return err
	}
}

func shortID(id string) string {
	return (&models.Submission{ID: id}).ShortID()
}
