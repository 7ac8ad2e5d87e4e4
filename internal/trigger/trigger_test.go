package trigger

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Affiliat0r/Vertaler/internal/models"
	"github.com/Affiliat0r/Vertaler/internal/services"
)

type fakeProcessor struct {
	mu      sync.Mutex
	err     error
	ctxErr  error
	started []string
	batches [][]*models.Submission
}

func (p *fakeProcessor) Process(ctx context.Context, sub *models.Submission) (*services.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = append(p.started, sub.ID)
	p.ctxErr = ctx.Err()
	return &services.Result{SubmissionID: sub.ID}, p.err
}

func (p *fakeProcessor) ProcessByID(_ context.Context, id string) (*services.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = append(p.started, id)
	return &services.Result{SubmissionID: id}, p.err
}

func (p *fakeProcessor) ProcessBatch(_ context.Context, subs []*models.Submission) models.BatchSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.batches = append(p.batches, subs)
	return models.BatchSummary{Total: len(subs), Successful: len(subs)}
}

func (p *fakeProcessor) ids() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.started...)
}

type fakeLister struct {
	subs []*models.Submission
	err  error
}

func (l *fakeLister) ListPending(context.Context) ([]*models.Submission, error) {
	return l.subs, l.err
}

func newTestHandlers(secret string, lister *fakeLister) (*Handlers, *fakeProcessor) {
	proc := &fakeProcessor{}
	if lister == nil {
		lister = &fakeLister{}
	}
	h := NewHandlers(proc, lister, &Runner{}, secret, "vertaler")
	h.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return h, proc
}

func do(t *testing.T, handler http.Handler, method, path, body string, header map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

const insertPayload = `{
  "type": "INSERT",
  "table": "contact_submissions",
  "record": {"id": "3f2b8c1e-7a41", "name": "Sara Ali", "file_urls": ["uploads/akte.pdf"], "status": "new"}
}`

func TestWebhook(t *testing.T) {
	tests := []struct {
		name        string
		secret      string
		header      map[string]string
		body        string
		wantStatus  int
		wantMessage string
		wantStarted []string
	}{
		{
			name:        "insert with files starts processing",
			body:        insertPayload,
			wantStatus:  http.StatusOK,
			wantMessage: "Processing started",
			wantStarted: []string{"3f2b8c1e-7a41"},
		},
		{
			name:        "secret matches",
			secret:      "s3cret",
			header:      map[string]string{SecretHeader: "s3cret"},
			body:        insertPayload,
			wantStatus:  http.StatusOK,
			wantMessage: "Processing started",
			wantStarted: []string{"3f2b8c1e-7a41"},
		},
		{
			name:        "update is ignored",
			body:        `{"type": "UPDATE", "record": {"id": "x", "file_urls": ["a.pdf"]}}`,
			wantStatus:  http.StatusOK,
			wantMessage: "Ignored non-INSERT event",
		},
		{
			name:        "insert without files",
			body:        `{"type": "INSERT", "record": {"id": "x", "file_urls": []}}`,
			wantStatus:  http.StatusOK,
			wantMessage: "No files to process",
		},
		{
			name:        "insert without record",
			body:        `{"type": "INSERT"}`,
			wantStatus:  http.StatusOK,
			wantMessage: "No files to process",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, proc := newTestHandlers(tt.secret, nil)
			rec, out := do(t, NewRouter(h), http.MethodPost, "/webhook", tt.body, tt.header)
			h.Runner().Wait()

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, out["message"])
			assert.Equal(t, tt.wantStarted, proc.ids())
		})
	}
}

func TestWebhook_ResponseCarriesSubmissionID(t *testing.T) {
	h, _ := newTestHandlers("", nil)
	_, out := do(t, NewRouter(h), http.MethodPost, "/webhook", insertPayload, nil)
	h.Runner().Wait()
	assert.Equal(t, "3f2b8c1e-7a41", out["submissionId"])
}

func TestWebhook_Unauthorized(t *testing.T) {
	h, proc := newTestHandlers("s3cret", nil)
	for _, header := range []map[string]string{nil, {SecretHeader: "wrong"}} {
		rec, out := do(t, NewRouter(h), http.MethodPost, "/webhook", insertPayload, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Unauthorized", out["error"])
	}
	h.Runner().Wait()
	assert.Empty(t, proc.ids())
}

func TestWebhook_BadJSON(t *testing.T) {
	h, proc := newTestHandlers("", nil)
	rec, _ := do(t, NewRouter(h), http.MethodPost, "/webhook", `{"type":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "could not parse JSON")
	assert.Empty(t, proc.ids())
}

func TestWebhook_BackgroundOutlivesRequest(t *testing.T) {
	h, proc := newTestHandlers("", nil)
	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(insertPayload)).WithContext(ctx)
	cancel()

	h.Webhook(httptest.NewRecorder(), req)
	h.Runner().Wait()

	require.Equal(t, []string{"3f2b8c1e-7a41"}, proc.ids())
	assert.NoError(t, proc.ctxErr)
}

func TestWebhook_ProcessingErrorDoesNotAffectResponse(t *testing.T) {
	h, proc := newTestHandlers("", nil)
	proc.err = errors.New("extraction failed")
	rec, out := do(t, NewRouter(h), http.MethodPost, "/webhook", insertPayload, nil)
	h.Runner().Wait()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Processing started", out["message"])
}

func TestProcessPending(t *testing.T) {
	pending := []*models.Submission{{ID: "a"}, {ID: "b"}}
	h, proc := newTestHandlers("", &fakeLister{subs: pending})

	rec, out := do(t, NewRouter(h), http.MethodPost, "/process-pending", "", nil)
	h.Runner().Wait()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Processing 2 submission(s)", out["message"])
	assert.EqualValues(t, 2, out["count"])
	require.Len(t, proc.batches, 1)
	assert.Equal(t, pending, proc.batches[0])
}

func TestProcessPending_None(t *testing.T) {
	h, proc := newTestHandlers("", &fakeLister{})
	_, out := do(t, NewRouter(h), http.MethodPost, "/process-pending", "", nil)
	h.Runner().Wait()
	assert.Equal(t, "No pending submissions", out["message"])
	assert.Empty(t, proc.batches)
}

func TestProcessPending_ListError(t *testing.T) {
	h, _ := newTestHandlers("", &fakeLister{err: errors.New("firestore down")})
	rec, _ := do(t, NewRouter(h), http.MethodPost, "/process-pending", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestProcessPending_RequiresSecret(t *testing.T) {
	h, proc := newTestHandlers("s3cret", &fakeLister{subs: []*models.Submission{{ID: "a"}}})
	rec, _ := do(t, NewRouter(h), http.MethodPost, "/process-pending", "", nil)
	h.Runner().Wait()
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, proc.batches)
}

func TestHealthEndpoints(t *testing.T) {
	h, _ := newTestHandlers("", nil)
	router := NewRouter(h)

	rec, out := do(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "ok", "service": "vertaler"}, out)

	_, out = do(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, map[string]any{"status": "healthy", "timestamp": "2024-01-02T03:04:05Z"}, out)

	rec, _ = do(t, router, http.MethodGet, "/webhook", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDecodeSubmissionEvent(t *testing.T) {
	evt, err := DecodeSubmissionEvent([]byte(`{"submissionId":"abc"}`))
	require.NoError(t, err)
	assert.Equal(t, "abc", evt.SubmissionID)

	inner := base64.StdEncoding.EncodeToString([]byte(`{"submissionId":"def"}`))
	evt, err = DecodeSubmissionEvent([]byte(`{"message":{"data":"` + inner + `"}}`))
	require.NoError(t, err)
	assert.Equal(t, "def", evt.SubmissionID)

	_, err = DecodeSubmissionEvent([]byte(`{}`))
	assert.Error(t, err)
	_, err = DecodeSubmissionEvent([]byte(`not json`))
	assert.Error(t, err)
}

func newEvent(t *testing.T, data any) cloudevents.Event {
	t.Helper()
	e := cloudevents.NewEvent()
	e.SetID("evt-1")
	e.SetType("com.vertaler.submission.created")
	e.SetSource("test")
	require.NoError(t, e.SetData(cloudevents.ApplicationJSON, data))
	return e
}

func TestHandleSubmissionCreated(t *testing.T) {
	proc := &fakeProcessor{}
	h := NewEventHandler(proc)

	require.NoError(t, h.HandleSubmissionCreated(context.Background(), newEvent(t, models.SubmissionCreatedEvent{SubmissionID: "abc"})))
	assert.Equal(t, []string{"abc"}, proc.ids())

	proc.err = services.ErrAlreadyClaimed
	assert.NoError(t, h.HandleSubmissionCreated(context.Background(), newEvent(t, models.SubmissionCreatedEvent{SubmissionID: "abc"})))

	proc.err = errors.New("upload failed")
	assert.Error(t, h.HandleSubmissionCreated(context.Background(), newEvent(t, models.SubmissionCreatedEvent{SubmissionID: "abc"})))

	assert.Error(t, h.HandleSubmissionCreated(context.Background(), newEvent(t, map[string]string{"other": "x"})))
}
