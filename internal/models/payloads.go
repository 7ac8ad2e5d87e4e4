package models

// These structs define the JSON payloads of the inbound triggers and their
// responses.

// WebhookPayload is the database change notification sent when a
// submission row changes.
type WebhookPayload struct {
	Type      string      `json:"type"`
	Table     string      `json:"table"`
	Schema    string      `json:"schema,omitempty"`
	Record    *Submission `json:"record"`
	OldRecord *Submission `json:"old_record,omitempty"`
}

// WebhookInsert is the change type the webhook acts on.
const WebhookInsert = "INSERT"

// TriggerResponse is returned by the webhook and process-pending triggers.
type TriggerResponse struct {
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId,omitempty"`
	Count        int    `json:"count,omitempty"`
}

// SubmissionCreatedEvent is the data of a CloudEvent announcing a new
// submission.
type SubmissionCreatedEvent struct {
	SubmissionID string `json:"submissionId"`
}

// BatchSummary aggregates the outcome of one pending-batch run.
type BatchSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"`
}
