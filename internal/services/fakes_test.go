package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/Affiliat0r/Vertaler/internal/gcp"
	"github.com/Affiliat0r/Vertaler/internal/models"
	"github.com/Affiliat0r/Vertaler/internal/notify"
	"github.com/Affiliat0r/Vertaler/internal/sections"
)

// memStore is an in-memory SubmissionStore recording every status write.
type memStore struct {
	mu      sync.Mutex
	subs    map[string]*models.Submission
	history map[string][]models.Status
	details map[string]string
	urls    map[string]string
	listErr error
}

func newMemStore(subs ...*models.Submission) *memStore {
	s := &memStore{
		subs:    map[string]*models.Submission{},
		history: map[string][]models.Status{},
		details: map[string]string{},
		urls:    map[string]string{},
	}
	for _, sub := range subs {
		cp := *sub
		s.subs[sub.ID] = &cp
	}
	return s
}

func (s *memStore) ListPending(context.Context) ([]*models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []*models.Submission
	for _, sub := range s.subs {
		if sub.Status == models.StatusNew && sub.HasFiles() {
			cp := *sub
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memStore) Get(_ context.Context, id string) (*models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *sub
	return &cp, nil
}

func (s *memStore) Claim(_ context.Context, id, attemptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subs[id]
	if !ok {
		return errors.New("not found")
	}
	if sub.Status != models.StatusNew {
		return ErrAlreadyClaimed
	}
	sub.Status = models.StatusProcessing
	sub.AttemptID = attemptID
	s.history[id] = append(s.history[id], models.StatusProcessing)
	return nil
}

func (s *memStore) UpdateStatus(_ context.Context, id string, st models.Status, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[id].Status = st
	s.history[id] = append(s.history[id], st)
	s.details[id] = details
	return nil
}

func (s *memStore) SetTranslation(_ context.Context, id, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[id].Status = models.StatusTranslated
	s.history[id] = append(s.history[id], models.StatusTranslated)
	s.urls[id] = url
	return nil
}

func (s *memStore) status(id string) models.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subs[id].Status
}

func (s *memStore) transitions(id string) []models.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Status(nil), s.history[id]...)
}

// memBlobs serves downloads from a map and keeps uploaded bytes.
type memBlobs struct {
	mu        sync.Mutex
	files     map[string][]byte
	uploadErr error
	uploads   map[string][]byte
	dirs      []string
}

func newMemBlobs(files map[string][]byte) *memBlobs {
	return &memBlobs{files: files, uploads: map[string][]byte{}}
}

func (b *memBlobs) Download(_ context.Context, ref, dir string, index int) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dirs = append(b.dirs, dir)
	data, ok := b.files[ref]
	if !ok {
		return "", errors.New("object does not exist")
	}
	p := filepath.Join(dir, gcp.LocalFileName(index, ref))
	return p, os.WriteFile(p, data, 0o644)
}

func (b *memBlobs) Upload(_ context.Context, localPath, submissionID string) (string, error) {
	if b.uploadErr != nil {
		return "", b.uploadErr
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	key := submissionID + "/" + filepath.Base(localPath)
	b.uploads[key] = data
	return "https://storage.example.com/documents/translations/" + key, nil
}

func (b *memBlobs) uploadCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.uploads)
}

// stubExtractor returns fixed data or blocks until cancelled.
type stubExtractor struct {
	data  sections.DocumentData
	err   error
	block bool

	mu    sync.Mutex
	calls    []LanguagePair
	files    []string
	contents [][]byte
}

func (e *stubExtractor) Extract(ctx context.Context, path string, langs LanguagePair) (sections.DocumentData, error) {
	e.mu.Lock()
	e.calls = append(e.calls, langs)
	e.files = append(e.files, filepath.Base(path))
	content, _ := os.ReadFile(path)
	e.contents = append(e.contents, content)
	e.mu.Unlock()
	if e.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return e.data, e.err
}

// recordingNotifier records notifications and fails when err is set.
type recordingNotifier struct {
	mu   sync.Mutex
	err  error
	docs []notify.Document
}

func (n *recordingNotifier) NotifyTranslated(_ context.Context, _ *models.Submission, doc notify.Document) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.docs = append(n.docs, doc)
	return n.err
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.docs)
}
