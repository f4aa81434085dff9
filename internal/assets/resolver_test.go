package assets

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	fsadapter "github.com/3-lines-studio/landing/internal/adapters/fs"
	"github.com/3-lines-studio/landing/internal/core"
)

func newTestResolver(files fstest.MapFS) *Resolver {
	return NewResolver(fsadapter.NewEmbedFileSystem(files), "", "")
}

func TestResolverURL(t *testing.T) {
	r := newTestResolver(fstest.MapFS{
		"assets/product.png": {Data: []byte("png")},
		"assets/00.mp4":      {Data: []byte("mp4")},
	})

	url, err := r.URL("product.png")
	if err != nil {
		t.Fatalf("URL() error = %v", err)
	}
	want := "/assets/product.png?v=" + core.HashContent([]byte("png"))
	if url != want {
		t.Errorf("URL() = %q, want %q", url, want)
	}

	again, err := r.URL("product.png")
	if err != nil || again != url {
		t.Errorf("second URL() = %q, %v; want %q", again, err, url)
	}
}

func TestResolverMissingAsset(t *testing.T) {
	tests := []struct {
		name  string
		asset string
		kind  string
	}{
		{name: "missing image", asset: "nope.png", kind: "image"},
		{name: "missing video", asset: "nope.mp4", kind: "video"},
		{name: "directory", asset: "sub", kind: "asset"},
		{name: "escaping path", asset: "../styles/main.css", kind: "asset"},
	}

	r := newTestResolver(fstest.MapFS{
		"assets/sub/x.png": {Data: []byte("x")},
		"styles/main.css":  {Data: []byte("body{}")},
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.URL(tt.asset)
			if err == nil {
				t.Fatal("expected error")
			}
			var assetErr *core.AssetError
			if !errors.As(err, &assetErr) {
				t.Fatalf("expected *core.AssetError, got %T", err)
			}
			if assetErr.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", assetErr.Kind, tt.kind)
			}
			if !errors.Is(err, core.ErrAssetNotFound) {
				t.Error("expected error to match core.ErrAssetNotFound")
			}
		})
	}
}

func TestResolverVersionChangesWithContent(t *testing.T) {
	files := fstest.MapFS{
		"assets/a.png": {Data: []byte("one"), ModTime: time.Unix(1, 0)},
	}
	r := newTestResolver(files)

	first, err := r.URL("a.png")
	if err != nil {
		t.Fatalf("URL() error = %v", err)
	}

	files["assets/a.png"] = &fstest.MapFile{Data: []byte("two!"), ModTime: time.Unix(2, 0)}

	second, err := r.URL("a.png")
	if err != nil {
		t.Fatalf("URL() error = %v", err)
	}
	if first == second {
		t.Errorf("expected version to change after edit, both %q", first)
	}
}

func TestResolverFailsAfterRemoval(t *testing.T) {
	files := fstest.MapFS{
		"assets/a.png": {Data: []byte("one")},
	}
	r := newTestResolver(files)

	if _, err := r.URL("a.png"); err != nil {
		t.Fatalf("URL() error = %v", err)
	}

	delete(files, "assets/a.png")

	if _, err := r.URL("a.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist after removal, got %v", err)
	}
}

func TestResolverStylesheet(t *testing.T) {
	r := newTestResolver(fstest.MapFS{
		"styles/main.css": {Data: []byte(".button{color:red}")},
	})

	css, err := r.Stylesheet()
	if err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}
	if css != ".button{color:red}" {
		t.Errorf("Stylesheet() = %q", css)
	}

	missing := newTestResolver(fstest.MapFS{})
	_, err = missing.Stylesheet()
	var assetErr *core.AssetError
	if !errors.As(err, &assetErr) || assetErr.Kind != "stylesheet" {
		t.Errorf("expected stylesheet AssetError, got %v", err)
	}
}

func TestResolverCheckCollectsAll(t *testing.T) {
	r := newTestResolver(fstest.MapFS{
		"assets/ok.png": {Data: []byte("ok")},
	})

	errs := r.Check([]string{"ok.png", "a.png", "b.mp4"})
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors (stylesheet + 2 assets), got %d: %v", len(errs), errs)
	}

	var names []string
	for _, err := range errs {
		var assetErr *core.AssetError
		if errors.As(err, &assetErr) {
			names = append(names, assetErr.Name)
		}
	}
	if got := strings.Join(names, ","); got != "styles/main.css,a.png,b.mp4" {
		t.Errorf("reported assets = %q", got)
	}
}
