package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	fsadapter "github.com/3-lines-studio/landing/internal/adapters/fs"
	"github.com/3-lines-studio/landing/internal/assets"
	"github.com/3-lines-studio/landing/internal/core"
	"github.com/3-lines-studio/landing/internal/usecase"
)

func testSite() core.Site {
	return core.Site{
		Meta:     core.PageMeta{Title: "Widget", Icon: "⭐", Lang: "en"},
		Product:  core.Product{Name: "Widget", CheckoutURL: "https://pay.example.com", Image: "product.png"},
		Features: []core.Feature{{Image: "特点.png", Heading: "One"}},
		Video:    core.Video{File: "demo.mp4", Format: "video/mp4"},
		FAQ:      []core.FAQEntry{{Question: "Why?", Answer: "Because."}},
		Contact:  core.Contact{Email: "hello@example.com"},
	}
}

func testFiles() fstest.MapFS {
	return fstest.MapFS{
		"styles/main.css":    {Data: []byte("body{}")},
		"assets/product.png": {Data: []byte("product")},
		"assets/特点.png":      {Data: []byte("feature")},
		"assets/demo.mp4":    {Data: []byte("0123456789")},
	}
}

func newTestRouter(t *testing.T, files fstest.MapFS, dev bool) (http.Handler, *observer.ObservedLogs) {
	t.Helper()

	obs, logs := observer.New(zapcore.InfoLevel)
	site := fsadapter.NewEmbedFileSystem(files)
	resolver := assets.NewResolver(site, "", "")

	return NewRouter(RouterConfig{
		Pages:     usecase.NewPageService(testSite(), resolver),
		Assets:    site,
		AssetsDir: resolver.AssetsDir(),
		Logger:    zap.New(obs),
		Dev:       dev,
	}), logs
}

func TestPageHandler(t *testing.T) {
	router, logs := newTestRouter(t, testFiles(), false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected security headers")
	}
	if !strings.Contains(rec.Body.String(), `<h1 class="product-name">Widget</h1>`) {
		t.Error("expected product heading in body")
	}

	entries := logs.FilterMessage("http request").All()
	if len(entries) != 1 {
		t.Fatalf("expected one request log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(200) || fields["path"] != "/" {
		t.Errorf("unexpected log fields: %v", fields)
	}
	if fields["requestId"] == nil {
		t.Error("expected request id in log")
	}
}

func TestPageHandlerMissingAsset(t *testing.T) {
	tests := []struct {
		name        string
		dev         bool
		wantMessage bool
	}{
		{name: "production hides error", dev: false, wantMessage: false},
		{name: "dev shows error", dev: true, wantMessage: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := testFiles()
			delete(files, "assets/demo.mp4")
			router, logs := newTestRouter(t, files, tt.dev)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", rec.Code)
			}
			body := rec.Body.String()
			if !strings.Contains(body, "Internal Server Error") {
				t.Error("expected generic error page")
			}
			if got := strings.Contains(body, "demo.mp4"); got != tt.wantMessage {
				t.Errorf("error detail shown = %v, want %v", got, tt.wantMessage)
			}
			if strings.Contains(body, "product-name") {
				t.Error("expected no partial page")
			}

			if logs.FilterMessage("failed to render page").Len() != 1 {
				t.Error("expected render failure to be logged")
			}
		})
	}
}

func TestHeadRequest(t *testing.T) {
	router, _ := newTestRouter(t, testFiles(), false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for HEAD, got %d", rec.Code)
	}
}

func TestPostNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t, testFiles(), false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=x")))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestAssetHandler(t *testing.T) {
	router, _ := newTestRouter(t, testFiles(), false)

	tests := []struct {
		name        string
		target      string
		wantStatus  int
		wantType    string
		wantCache   string
		wantContent string
	}{
		{
			name:        "versioned image",
			target:      "/assets/product.png?v=abc",
			wantStatus:  http.StatusOK,
			wantType:    "image/png",
			wantCache:   immutableCache,
			wantContent: "product",
		},
		{
			name:        "unversioned video",
			target:      "/assets/demo.mp4",
			wantStatus:  http.StatusOK,
			wantType:    "video/mp4",
			wantCache:   revalidate,
			wantContent: "0123456789",
		},
		{
			name:        "escaped unicode name",
			target:      core.AssetPath("特点.png"),
			wantStatus:  http.StatusOK,
			wantType:    "image/png",
			wantCache:   revalidate,
			wantContent: "feature",
		},
		{
			name:       "missing file",
			target:     "/assets/nope.png",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "stylesheet outside assets",
			target:     "/assets/../styles/main.css",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.wantType {
				t.Errorf("Content-Type = %q, want %q", ct, tt.wantType)
			}
			if cc := rec.Header().Get("Cache-Control"); cc != tt.wantCache {
				t.Errorf("Cache-Control = %q, want %q", cc, tt.wantCache)
			}
			if rec.Body.String() != tt.wantContent {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantContent)
			}
		})
	}
}

func TestAssetHandlerRange(t *testing.T) {
	router, _ := newTestRouter(t, testFiles(), false)

	req := httptest.NewRequest(http.MethodGet, "/assets/demo.mp4", nil)
	req.Header.Set("Range", "bytes=2-5")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusPartialContent {
		t.Fatalf("expected 206, got %d", rec.Code)
	}
	if rec.Body.String() != "2345" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "2345")
	}
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t, testFiles(), false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q", body["status"])
	}
}

func TestRequestLoggingServerError(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	handler := RequestLogging(zap.New(obs))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.All()
	if len(entries) != 1 || entries[0].Level != zapcore.ErrorLevel {
		t.Errorf("expected one error-level request log, got %v", entries)
	}
}
