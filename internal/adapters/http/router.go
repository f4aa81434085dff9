package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/3-lines-studio/landing/internal/adapters/fs"
	"github.com/3-lines-studio/landing/internal/usecase"
)

type RouterConfig struct {
	Pages     *usecase.PageService
	Assets    fs.FileSystem
	AssetsDir string
	Logger    *zap.Logger
	Dev       bool
}

// NewRouter wires the page, its assets and a health check. Only GET and
// HEAD are routed; the contact form posts to the external relay.
func NewRouter(cfg RouterConfig) chi.Router {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogging(logger))
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders)

	page := NewPageHandler(cfg.Pages, logger, cfg.Dev)
	r.Method(http.MethodGet, "/", page)
	r.Method(http.MethodHead, "/", page)

	assets := http.StripPrefix("/assets", NewAssetHandler(cfg.Assets, cfg.AssetsDir, logger))
	r.Method(http.MethodGet, "/assets/*", assets)
	r.Method(http.MethodHead, "/assets/*", assets)

	r.Get("/healthz", healthHandler)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
