package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nightrelay/dark-ai/backend/internal/config"
	"github.com/nightrelay/dark-ai/backend/internal/service/ai"
	chatservice "github.com/nightrelay/dark-ai/backend/internal/service/chat"
	userservice "github.com/nightrelay/dark-ai/backend/internal/service/user"
)

func setupTestRouter(t *testing.T) http.Handler {
	t.Helper()

	staticDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>Dark AI</html>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log('dark')"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}

	cfg := config.ServerConfig{Addr: ":0", StaticDir: staticDir}
	return NewRouter(cfg, ai.NewAssistant(nil), chatservice.NewService(), userservice.NewService())
}

func TestServeIndex(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Dark AI") {
		t.Fatalf("expected index content, got %q", resp.Body.String())
	}
}

func TestServeStaticAsset(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestServeStaticMissing(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/missing.css", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCORSHeadersPresent(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS header, got %q", got)
	}
}
