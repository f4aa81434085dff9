package http

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"github.com/3-lines-studio/landing/internal/core"
	"github.com/3-lines-studio/landing/internal/usecase"
)

// PageHandler renders the landing page on every request.
type PageHandler struct {
	service *usecase.PageService
	logger  *zap.Logger
	isDev   bool
}

func NewPageHandler(service *usecase.PageService, logger *zap.Logger, isDev bool) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{
		service: service,
		logger:  logger,
		isDev:   isDev,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	output := h.service.RenderPage(req.Context())

	if output.Error != nil {
		h.logger.Error("failed to render page",
			zap.String("path", req.URL.Path),
			zap.Error(output.Error),
		)
		h.serveError(w, output.Error)
		return
	}

	h.serveHTML(w, output.HTML)
}

func (h *PageHandler) serveHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *PageHandler) serveError(w http.ResponseWriter, err error) {
	data := core.ErrorData{
		Message: err.Error(),
		IsDev:   h.isDev,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><h1>Internal Server Error</h1></body></html>"))
		h.logger.Error("failed to render error page", zap.Error(err))
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
