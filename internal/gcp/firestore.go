package gcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Affiliat0r/Vertaler/internal/models"
)

var (
	// ErrNotFound is returned when a submission or object does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyClaimed is returned by Claim when the submission has left
	// the new state.
	ErrAlreadyClaimed = errors.New("submission already claimed")
)

// NewFirestoreClient creates and returns a new Firestore client for the given project ID.
func NewFirestoreClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID must be provided to create a firestore client")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return client, nil
}

// SubmissionStore keeps submission records in one Firestore collection.
type SubmissionStore struct {
	client     *firestore.Client
	collection string
	now        func() time.Time
}

// NewSubmissionStore returns a store over the named collection.
func NewSubmissionStore(client *firestore.Client, collection string) *SubmissionStore {
	return &SubmissionStore{client: client, collection: collection, now: time.Now}
}

func (s *SubmissionStore) doc(id string) *firestore.DocumentRef {
	return s.client.Collection(s.collection).Doc(id)
}

// ListPending returns every new submission that references at least one
// file, oldest first.
func (s *SubmissionStore) ListPending(ctx context.Context) ([]*models.Submission, error) {
	iter := s.client.Collection(s.collection).
		Where("status", "==", string(models.StatusNew)).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var pending []*models.Submission
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list pending submissions: %w", err)
		}
		sub, err := decodeSubmission(snap)
		if err != nil {
			return nil, err
		}
		if !sub.HasFiles() {
			continue
		}
		pending = append(pending, sub)
	}
	return pending, nil
}

// Get fetches one submission by id.
func (s *SubmissionStore) Get(ctx context.Context, id string) (*models.Submission, error) {
	snap, err := s.doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("submission %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission %s: %w", id, err)
	}
	return decodeSubmission(snap)
}

// Claim moves a submission from new to processing inside a transaction and
// records the attempt id. It returns ErrAlreadyClaimed if another attempt
// got there first.
func (s *SubmissionStore) Claim(ctx context.Context, id, attemptID string) error {
	ref := s.doc(id)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("submission %s: %w", id, ErrNotFound)
		}
		if err != nil {
			return err
		}
		current, err := snap.DataAt("status")
		if err != nil {
			return fmt.Errorf("submission %s has no status: %w", id, err)
		}
		if current != string(models.StatusNew) {
			return ErrAlreadyClaimed
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "status", Value: string(models.StatusProcessing)},
			{Path: "attempt_id", Value: attemptID},
			{Path: "updated_at", Value: s.now().UTC()},
		})
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyClaimed) || errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to claim submission %s: %w", id, err)
	}
	return nil
}

// UpdateStatus writes status and, when details is non-empty, the error
// details alongside it.
func (s *SubmissionStore) UpdateStatus(ctx context.Context, id string, st models.Status, details string) error {
	updates := []firestore.Update{
		{Path: "status", Value: string(st)},
		{Path: "updated_at", Value: s.now().UTC()},
	}
	if details != "" {
		updates = append(updates, firestore.Update{Path: "error_details", Value: details})
	}
	if _, err := s.doc(id).Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to update status of %s to %s: %w", id, st, err)
	}
	return nil
}

// SetTranslation marks a submission translated and stores the public URL of
// the output document.
func (s *SubmissionStore) SetTranslation(ctx context.Context, id, url string) error {
	_, err := s.doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(models.StatusTranslated)},
		{Path: "translation_url", Value: url},
		{Path: "updated_at", Value: s.now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("failed to record translation of %s: %w", id, err)
	}
	return nil
}

func decodeSubmission(snap *firestore.DocumentSnapshot) (*models.Submission, error) {
	var sub models.Submission
	if err := snap.DataTo(&sub); err != nil {
		return nil, fmt.Errorf("failed to decode submission %s: %w", snap.Ref.ID, err)
	}
	sub.ID = snap.Ref.ID
	return &sub, nil
}
