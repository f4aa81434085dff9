package http

import (
	"bytes"
	"io"
	"net/http"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/3-lines-studio/landing/internal/adapters/fs"
	"github.com/3-lines-studio/landing/internal/core"
)

const (
	immutableCache = "public, max-age=31536000, immutable"
	revalidate     = "no-cache"
)

// AssetHandler serves files from the site's assets directory. Requests
// carrying a version query are cached forever; the page always links to
// versioned URLs.
type AssetHandler struct {
	fs     fs.FileSystem
	dir    string
	logger *zap.Logger
}

func NewAssetHandler(fsys fs.FileSystem, dir string, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetHandler{
		fs:     fsys,
		dir:    dir,
		logger: logger,
	}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	name := strings.TrimPrefix(req.URL.Path, "/")
	if err := core.ValidateAssetName(name); err != nil {
		http.NotFound(w, req)
		return
	}

	full := path.Join(h.dir, name)
	info, err := h.fs.Stat(full)
	if err != nil || info.IsDir() {
		http.NotFound(w, req)
		return
	}

	file, err := h.fs.Open(full)
	if err != nil {
		h.logger.Warn("failed to open asset", zap.String("asset", name), zap.Error(err))
		http.NotFound(w, req)
		return
	}
	defer func() { _ = file.Close() }()

	content, ok := file.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(file)
		if err != nil {
			h.logger.Warn("failed to read asset", zap.String("asset", name), zap.Error(err))
			http.NotFound(w, req)
			return
		}
		content = bytes.NewReader(data)
	}

	w.Header().Set("Content-Type", core.GetContentType(name))
	if req.URL.Query().Get("v") != "" {
		w.Header().Set("Cache-Control", immutableCache)
	} else {
		w.Header().Set("Cache-Control", revalidate)
	}

	http.ServeContent(w, req, info.Name(), info.ModTime(), content)
}
