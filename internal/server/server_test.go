package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mapforge/mapforge/pkg/pipeline"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	runner := pipeline.NewRunner(nil, nil, log.New(io.Discard))
	return New(runner, log.New(io.Discard))
}

// multipartBody builds a multipart form with one "files" part per entry.
func multipartBody(t *testing.T, files ...string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for i, content := range files {
		part, err := mw.CreateFormFile("files", "map"+string(rune('a'+i))+".txt")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := io.Copy(part, strings.NewReader(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &body, mw.FormDataContentType()
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want ok", resp["status"])
	}
}

func TestRenderSVG(t *testing.T) {
	srv := testServer(t)

	body, contentType := multipartBody(t,
		"P 1.0, 2.0, 0.0, 255, 0, 0, 1, home\n",
		"L 0.0, 0.0, 0.0, 10.0, 5.0, 0.0, 0, 255, 0\n")
	req := httptest.NewRequest(http.MethodPost, "/render?format=svg", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/svg+xml" {
		t.Errorf("Content-Type = %q", got)
	}
	if rec.Header().Get("X-Doc-Hash") == "" {
		t.Error("missing X-Doc-Hash header")
	}
	doc := rec.Body.String()
	if !strings.Contains(doc, "<circle") || !strings.Contains(doc, "<path") {
		t.Errorf("unexpected document:\n%s", doc)
	}
}

func TestRenderPNG(t *testing.T) {
	srv := testServer(t)

	body, contentType := multipartBody(t,
		"L 0.0, 0.0, 0.0, 10.0, 5.0, 0.0, 0, 255, 0\n")
	req := httptest.NewRequest(http.MethodPost, "/render?scale=1", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q", got)
	}
	// PNG signature
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("body is not a PNG")
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		files      []string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "no files",
			url:        "/render",
			files:      nil,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "bad format",
			url:        "/render?format=gif",
			files:      []string{"P 1.0, 2.0, 0.0, 255, 0, 0, 1, x\n"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_FORMAT",
		},
		{
			name:       "bad scale",
			url:        "/render?scale=-2",
			files:      []string{"P 1.0, 2.0, 0.0, 255, 0, 0, 1, x\n"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "unrenderable upload",
			url:        "/render",
			files:      []string{"not a map line\n"},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "RENDER_FAILED",
		},
	}

	srv := testServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartBody(t, tt.files...)
			req := httptest.NewRequest(http.MethodPost, tt.url, body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			srv.Router().ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if resp["code"] != tt.wantCode {
				t.Errorf("code = %q, want %q", resp["code"], tt.wantCode)
			}
		})
	}
}

func TestRequestIDEcho(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}
