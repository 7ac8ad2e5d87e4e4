package models

import "time"

// Status is the lifecycle state of a submission.
type Status string

const (
	StatusNew        Status = "new"
	StatusProcessing Status = "processing"
	StatusTranslated Status = "translated"
	StatusError      Status = "error"
)

// Terminal reports whether no further automatic transition leaves s.
func (s Status) Terminal() bool {
	return s == StatusTranslated || s == StatusError
}

// Submission is one customer translation request as stored in Firestore.
// The orchestrator only reads the request fields and advances Status.
type Submission struct {
	ID                string    `firestore:"-" json:"id"`
	Name              string    `firestore:"name" json:"name"`
	Email             string    `firestore:"email" json:"email"`
	Phone             string    `firestore:"phone,omitempty" json:"phone,omitempty"`
	LanguageDirection string    `firestore:"language_direction,omitempty" json:"language_direction,omitempty"`
	Message           string    `firestore:"message,omitempty" json:"message,omitempty"`
	FileURLs          []string  `firestore:"file_urls" json:"file_urls"`
	Status            Status    `firestore:"status" json:"status"`
	CreatedAt         time.Time `firestore:"created_at" json:"created_at"`

	// Written by the pipeline alongside status transitions.
	ErrorDetails   string    `firestore:"error_details,omitempty" json:"error_details,omitempty"`
	TranslationURL string    `firestore:"translation_url,omitempty" json:"translation_url,omitempty"`
	AttemptID      string    `firestore:"attempt_id,omitempty" json:"attempt_id,omitempty"`
	UpdatedAt      time.Time `firestore:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// ShortID is the first eight characters of the id, used in logs.
func (s *Submission) ShortID() string {
	if len(s.ID) > 8 {
		return s.ID[:8]
	}
	return s.ID
}

// HasFiles reports whether the submission references at least one non-blank file.
func (s *Submission) HasFiles() bool {
	for _, u := range s.FileURLs {
		if u != "" {
			return true
		}
	}
	return false
}
