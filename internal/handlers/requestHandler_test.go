package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akolanti/FinDocAPI/internal/api"
	"github.com/akolanti/FinDocAPI/internal/config"
	"github.com/akolanti/FinDocAPI/internal/data/store"
	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
	"github.com/akolanti/FinDocAPI/internal/qa"
	"github.com/akolanti/FinDocAPI/internal/session"
	"github.com/go-chi/chi/v5"
)

// fakeProvider drives the real question answering service in handler tests.
type fakeProvider struct{}

func (fakeProvider) Name() string { return config.LLMProviderOpenAI }

func (fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return "the revenue is 1.2M", nil
}

func testRouter(t *testing.T) *chi.Mux {
	t.Helper()

	manager := session.NewManager(store.InitInMemoryTranscriptStore())
	InitHandlers(manager, qa.NewService(fakeProvider{}))

	r := chi.NewRouter()
	r.Post("/sessions", CreateSessionHandler)
	r.Post("/sessions/{id}/document", UploadDocumentHandler)
	r.Post("/sessions/{id}/ask", AskHandler)
	r.Get("/sessions/{id}/metrics", GetMetricsHandler)
	return r
}

func createSession(t *testing.T, r *chi.Mux) string {
	t.Helper()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sessions", nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp api.SessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	return resp.SessionId
}

func uploadDocument(t *testing.T, r *chi.Mux, sessionId string, filename string, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("document_name", filename); err != nil {
		t.Fatal(err)
	}
	part, err := writer.CreateFormFile("document", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(part, content); err != nil {
		t.Fatal(err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+sessionId+"/document", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUploadFlow(t *testing.T) {
	r := testRouter(t)
	sessionId := createSession(t, r)

	rec := uploadDocument(t, r, sessionId, "statement.txt", "Revenue: $1,200,000\n")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp api.UploadResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Metrics) != 1 || resp.Metrics[0].Metric != "Revenue" {
		t.Errorf("expected one Revenue entry, got %+v", resp.Metrics)
	}

	metricsRec := httptest.NewRecorder()
	r.ServeHTTP(metricsRec, httptest.NewRequest(http.MethodGet, "/sessions/"+sessionId+"/metrics", nil))
	if metricsRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics, got %d", metricsRec.Code)
	}
}

func TestUpload_UnsupportedFormat(t *testing.T) {
	r := testRouter(t)
	sessionId := createSession(t, r)

	rec := uploadDocument(t, r, sessionId, "report.exe", "binary junk")
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", rec.Code)
	}
}

func TestUpload_UnknownSession(t *testing.T) {
	r := testRouter(t)

	rec := uploadDocument(t, r, "nope", "statement.txt", "Revenue: 1")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestAsk_BeforeUploadConflicts(t *testing.T) {
	r := testRouter(t)
	sessionId := createSession(t, r)

	body := bytes.NewBufferString(`{"question":"what is the revenue?"}`)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sessions/"+sessionId+"/ask", body))
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestStatusFromError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{docModel.ErrUnsupportedFormat, http.StatusUnsupportedMediaType},
		{docModel.ErrCorruptDocument, http.StatusUnprocessableEntity},
		{docModel.ErrNoDocumentLoaded, http.StatusConflict},
		{docModel.ErrUpstreamUnavailable, http.StatusBadGateway},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := statusFromError(c.err); got != c.want {
			t.Errorf("statusFromError(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
