package docling_test

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/adrianliechti/docling/pkg/docling"

	"github.com/go-chi/chi/v5"
)

const testMarkdown = "# Hello World\n\nThis is a test document."

// fakeServer imitates the docling-serve endpoints and records every call.
type fakeServer struct {
	*httptest.Server

	mu sync.Mutex

	calls []string
	auth  map[string]string

	statuses []docling.TaskStatus
	polls    []string

	body []byte
	form *multipart.Form
}

func newFakeServer(t *testing.T, statuses ...docling.TaskStatus) *fakeServer {
	t.Helper()

	s := &fakeServer{
		auth:     map[string]string{},
		statuses: statuses,
	}

	r := chi.NewRouter()
	r.Use(s.record)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"status": "ok"})
	})

	r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"version": "1.12.0", "docling": "2.31.0"})
	})

	r.Post("/v1/convert/source", func(w http.ResponseWriter, r *http.Request) {
		s.readBody(r)
		writeJSON(w, convertResponse())
	})

	r.Post("/v1/convert/source/async", func(w http.ResponseWriter, r *http.Request) {
		s.readBody(r)
		writeJSON(w, taskResponse("task-1", docling.TaskStatusPending))
	})

	r.Post("/v1/convert/file", func(w http.ResponseWriter, r *http.Request) {
		s.readForm(r)
		writeJSON(w, convertResponse())
	})

	r.Post("/v1/convert/file/async", func(w http.ResponseWriter, r *http.Request) {
		s.readForm(r)
		writeJSON(w, taskResponse("task-1", docling.TaskStatusPending))
	})

	r.Get("/v1/status/poll/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, taskResponse(chi.URLParam(r, "id"), s.nextStatus(r.URL.RawQuery)))
	})

	r.Get("/v1/result/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, convertResponse())
	})

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)

	return s
}

func (s *fakeServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls = append(s.calls, r.Method+" "+r.URL.Path)
		s.auth[r.URL.Path] = r.Header.Get("Authorization")
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *fakeServer) nextStatus(query string) docling.TaskStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.polls = append(s.polls, query)

	if len(s.statuses) == 0 {
		return docling.TaskStatusSuccess
	}

	status := s.statuses[0]

	if len(s.statuses) > 1 {
		s.statuses = s.statuses[1:]
	}

	return status
}

func (s *fakeServer) readBody(r *http.Request) {
	data, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.body = data
	s.mu.Unlock()
}

func (s *fakeServer) readForm(r *http.Request) {
	r.ParseMultipartForm(32 << 20)

	s.mu.Lock()
	s.form = r.MultipartForm
	s.mu.Unlock()
}

func (s *fakeServer) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.calls...)
}

func (s *fakeServer) Polls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.polls...)
}

func (s *fakeServer) Count(call string) int {
	var n int

	for _, c := range s.Calls() {
		if c == call {
			n++
		}
	}

	return n
}

func (s *fakeServer) Body() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result map[string]any
	json.Unmarshal(s.body, &result)

	return result
}

func (s *fakeServer) Form() *multipart.Form {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.form
}

func (s *fakeServer) Auth(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.auth[path]
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func convertResponse() map[string]any {
	return map[string]any{
		"document": map[string]any{
			"filename":        "test.pdf",
			"md_content":      testMarkdown,
			"json_content":    nil,
			"html_content":    nil,
			"text_content":    nil,
			"doctags_content": nil,
		},
		"status":          "success",
		"errors":          []any{},
		"processing_time": 1.234,
		"timings":         map[string]any{},
	}
}

func taskResponse(id string, status docling.TaskStatus) map[string]any {
	return map[string]any{
		"task_id":       id,
		"task_type":     "convert",
		"task_status":   string(status),
		"task_position": nil,
		"task_meta": map[string]any{
			"num_docs":      1,
			"num_processed": 0,
			"num_succeeded": 0,
			"num_failed":    0,
		},
	}
}
