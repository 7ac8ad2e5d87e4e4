package services

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Affiliat0r/Vertaler/internal/assembly"
	"github.com/Affiliat0r/Vertaler/internal/document"
	"github.com/Affiliat0r/Vertaler/internal/models"
	"github.com/Affiliat0r/Vertaler/internal/sections"
)

const subID = "3f2b8c1e-7a41-4d0e-9c55-0a1b2c3d4e5f"

func newSubmission(files ...string) *models.Submission {
	return &models.Submission{
		ID:                subID,
		Name:              "Sara Ali",
		Email:             "sara@example.com",
		LanguageDirection: "Arabic → Dutch",
		FileURLs:          files,
		Status:            models.StatusNew,
		CreatedAt:         time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
	}
}

func birthData() sections.DocumentData {
	return sections.DocumentData{
		sections.BirthCertificate: {
			"newbornFullName":   "Sara Ali Ahmed",
			"newbornGender":     "Vrouwelijk",
			"fatherName":        "Ali",
			"birthCity":         "Aden",
			"birthRegNumber":    "1234",
			"newbornNationalId": "01010101",
		},
	}
}

type harness struct {
	store     *memStore
	blobs     *memBlobs
	extractor *stubExtractor
	notifier  *recordingNotifier
	pipeline  *Pipeline
}

func newHarness(t *testing.T, sub *models.Submission, extractor *stubExtractor) *harness {
	t.Helper()
	engine, err := assembly.New(document.DefaultConfig())
	require.NoError(t, err)

	h := &harness{
		store: newMemStore(sub),
		blobs: newMemBlobs(map[string][]byte{
			"uploads/akte.pdf":  []byte("%PDF-1.4 fake"),
			"uploads/photo.jpg": {0xFF, 0xD8, 0xFF},
			"uploads/notes.txt": []byte("notes"),
		}),
		extractor: extractor,
		notifier:  &recordingNotifier{},
	}
	h.pipeline = NewPipeline(h.store, h.blobs, h.extractor, engine, h.notifier, PipelineConfig{
		ScratchDir:   t.TempDir(),
		PhaseTimeout: time.Second,
	})
	h.pipeline.inspect = nil
	h.pipeline.attemptID = func() string { return "attempt-1" }
	h.pipeline.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }
	return h
}

func documentXML(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			b, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(b)
		}
	}
	t.Fatal("word/document.xml missing")
	return ""
}

func assertScratchRemoved(t *testing.T, blobs *memBlobs) {
	t.Helper()
	require.NotEmpty(t, blobs.dirs)
	for _, dir := range blobs.dirs {
		_, err := os.Stat(dir)
		assert.True(t, os.IsNotExist(err), "scratch dir %s still exists", dir)
	}
}

func TestProcess_BirthCertificate(t *testing.T) {
	h := newHarness(t, newSubmission("uploads/akte.pdf"), &stubExtractor{data: birthData()})

	res, err := h.pipeline.Process(context.Background(), newSubmission("uploads/akte.pdf"))
	require.NoError(t, err)

	assert.Equal(t, "Translation_Sara_Ali_2024-05-06T07-08-09.docx", res.FileName)
	assert.Equal(t, []models.Status{models.StatusProcessing, models.StatusTranslated}, h.store.transitions(subID))
	assert.Equal(t, res.URL, h.store.urls[subID])
	assert.Equal(t, []LanguagePair{{Source: "Arabic", Target: "Dutch"}}, h.extractor.calls)

	content := h.blobs.uploads[subID+"/"+res.FileName]
	require.NotEmpty(t, content)
	doc := documentXML(t, content)
	assert.Equal(t, 1, strings.Count(doc, `<w:pStyle w:val="Title"/>`))
	assert.Contains(t, doc, "GEBOORTEAKTE")
	assert.Contains(t, doc, "Sara Ali Ahmed")

	require.Equal(t, 1, h.notifier.count())
	assert.Equal(t, content, h.notifier.docs[0].Content)
	assert.Equal(t, res.URL, h.notifier.docs[0].URL)
	assertScratchRemoved(t, h.blobs)
}

func TestProcess_NoFiles(t *testing.T) {
	sub := newSubmission()
	h := newHarness(t, sub, &stubExtractor{data: birthData()})

	_, err := h.pipeline.Process(context.Background(), sub)
	assert.ErrorIs(t, err, ErrNoFiles)
	assert.Equal(t, models.StatusNew, h.store.status(subID))
	assert.Empty(t, h.store.transitions(subID))
}

func TestProcessPending_SkipsSubmissionsWithoutFiles(t *testing.T) {
	h := newHarness(t, newSubmission("", ""), &stubExtractor{data: birthData()})

	summary, err := h.pipeline.ProcessPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.BatchSummary{}, summary)
	assert.Equal(t, models.StatusNew, h.store.status(subID))
	assert.Empty(t, h.extractor.calls)
}

func TestProcess_ExtractionFails(t *testing.T) {
	sub := newSubmission("uploads/akte.pdf")
	h := newHarness(t, sub, &stubExtractor{err: errors.New("model unavailable")})

	_, err := h.pipeline.Process(context.Background(), sub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extraction failed")

	assert.Equal(t, []models.Status{models.StatusProcessing, models.StatusError}, h.store.transitions(subID))
	assert.Contains(t, h.store.details[subID], "model unavailable")
	assert.Zero(t, h.blobs.uploadCount())
	assert.Zero(t, h.notifier.count())
	assertScratchRemoved(t, h.blobs)
}

func TestProcess_NotifierFailureIsNotFatal(t *testing.T) {
	sub := newSubmission("uploads/akte.pdf")
	h := newHarness(t, sub, &stubExtractor{data: birthData()})
	h.notifier.err = errors.New("smtp down")

	res, err := h.pipeline.Process(context.Background(), sub)
	require.NoError(t, err)
	assert.EqualError(t, res.NotifyErr, "smtp down")
	assert.Equal(t, models.StatusTranslated, h.store.status(subID))
	assert.NotContains(t, h.store.transitions(subID), models.StatusError)
}

func TestProcess_UploadFails(t *testing.T) {
	sub := newSubmission("uploads/akte.pdf")
	h := newHarness(t, sub, &stubExtractor{data: birthData()})
	h.blobs.uploadErr = errors.New("bucket gone")

	_, err := h.pipeline.Process(context.Background(), sub)
	require.Error(t, err)
	assert.Equal(t, models.StatusError, h.store.status(subID))
	assert.Zero(t, h.notifier.count())
}

func TestProcess_NothingDownloadable(t *testing.T) {
	sub := newSubmission("uploads/missing.pdf")
	h := newHarness(t, sub, &stubExtractor{data: birthData()})

	_, err := h.pipeline.Process(context.Background(), sub)
	assert.ErrorIs(t, err, ErrNoDownloads)
	assert.Equal(t, models.StatusError, h.store.status(subID))
	assert.Empty(t, h.extractor.calls)
}

func TestProcess_NoEligibleFile(t *testing.T) {
	sub := newSubmission("uploads/notes.txt")
	h := newHarness(t, sub, &stubExtractor{data: birthData()})

	_, err := h.pipeline.Process(context.Background(), sub)
	assert.ErrorIs(t, err, ErrNoEligibleFile)
	assert.Equal(t, models.StatusError, h.store.status(subID))
}

func TestProcess_PrefersPDFOverImage(t *testing.T) {
	sub := newSubmission("uploads/photo.jpg", "uploads/missing.pdf", "uploads/akte.pdf")
	h := newHarness(t, sub, &stubExtractor{data: birthData()})

	_, err := h.pipeline.Process(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, []string{"02-akte.pdf"}, h.extractor.files)
}

func TestProcess_SameBaseNameDoesNotCollide(t *testing.T) {
	sub := newSubmission("uploads/a/scan.pdf", "uploads/b/scan.pdf")
	h := newHarness(t, sub, &stubExtractor{data: birthData()})
	h.blobs.files["uploads/a/scan.pdf"] = []byte("%PDF-first")
	h.blobs.files["uploads/b/scan.pdf"] = []byte("%PDF-second")

	_, err := h.pipeline.Process(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, []string{"00-scan.pdf"}, h.extractor.files)
	assert.Equal(t, [][]byte{[]byte("%PDF-first")}, h.extractor.contents)
}

func TestProcess_AlreadyClaimed(t *testing.T) {
	sub := newSubmission("uploads/akte.pdf")
	h := newHarness(t, sub, &stubExtractor{data: birthData()})
	h.store.subs[subID].Status = models.StatusProcessing

	_, err := h.pipeline.Process(context.Background(), sub)
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
	assert.Empty(t, h.store.transitions(subID))
	assert.Empty(t, h.blobs.dirs)
}

func TestProcess_PhaseTimeout(t *testing.T) {
	sub := newSubmission("uploads/akte.pdf")
	h := newHarness(t, sub, &stubExtractor{block: true})
	h.pipeline.config.PhaseTimeout = 50 * time.Millisecond

	_, err := h.pipeline.Process(context.Background(), sub)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, models.StatusError, h.store.status(subID))
	assertScratchRemoved(t, h.blobs)
}

func TestAwaitPhase_ResultReadyAtDeadlineWins(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan phaseOutcome[string], 1)
	done <- phaseOutcome[string]{value: "extracted"}

	for i := 0; i < 50; i++ {
		got, err := awaitPhase(ctx, done)
		require.NoError(t, err)
		assert.Equal(t, "extracted", got)
		done <- phaseOutcome[string]{value: "extracted"}
	}
}

func TestAwaitPhase_ContextErrorWithoutResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := awaitPhase(ctx, make(chan phaseOutcome[int], 1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunPhase(t *testing.T) {
	got, err := runPhase(context.Background(), time.Second, func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	_, err = runPhase(context.Background(), 20*time.Millisecond, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		time.Sleep(50 * time.Millisecond)
		return 0, nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProcess_UnparsableDirectionUsesDefault(t *testing.T) {
	sub := newSubmission("uploads/akte.pdf")
	sub.LanguageDirection = "whatever"
	h := newHarness(t, sub, &stubExtractor{data: birthData()})

	_, err := h.pipeline.Process(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, []LanguagePair{DefaultLanguages}, h.extractor.calls)
}

func TestProcessBatch_ContinuesAfterFailure(t *testing.T) {
	good := newSubmission("uploads/akte.pdf")
	bad := newSubmission("uploads/missing.pdf")
	bad.ID = "bad-submission-id"

	h := newHarness(t, good, &stubExtractor{data: birthData()})
	h.store.subs[bad.ID] = bad

	summary := h.pipeline.ProcessBatch(context.Background(), []*models.Submission{bad, good})
	assert.Equal(t, models.BatchSummary{Total: 2, Successful: 1, Failed: 1}, summary)
	assert.Equal(t, models.StatusError, h.store.status(bad.ID))
	assert.Equal(t, models.StatusTranslated, h.store.status(subID))
}

func TestProcessPending_ListError(t *testing.T) {
	h := newHarness(t, newSubmission("uploads/akte.pdf"), &stubExtractor{data: birthData()})
	h.store.listErr = errors.New("firestore unavailable")

	_, err := h.pipeline.ProcessPending(context.Background())
	assert.Error(t, err)
}

func TestProcessByID(t *testing.T) {
	h := newHarness(t, newSubmission("uploads/akte.pdf"), &stubExtractor{data: birthData()})

	_, err := h.pipeline.ProcessByID(context.Background(), subID)
	require.NoError(t, err)

	_, err = h.pipeline.ProcessByID(context.Background(), subID)
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
}

func TestPoll_StopsOnCancel(t *testing.T) {
	h := newHarness(t, newSubmission("uploads/akte.pdf"), &stubExtractor{data: birthData()})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- h.pipeline.Poll(ctx, 10*time.Millisecond) }()

	require.Eventually(t, func() bool { return h.store.status(subID) == models.StatusTranslated }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Poll did not return after cancel")
	}
}
