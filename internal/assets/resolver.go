package assets

import (
	"fmt"
	"path"

	"github.com/3-lines-studio/landing/internal/adapters/fs"
	"github.com/3-lines-studio/landing/internal/core"
)

const (
	DefaultAssetsDir  = "assets"
	DefaultStylesFile = "styles/main.css"
)

// Resolver reads the stylesheet and turns asset filenames into versioned
// URLs. Every call goes back to the filesystem, so a file removed between
// renders fails the next render.
type Resolver struct {
	site       fs.FileSystem
	assetsDir  string
	stylesFile string
	versions   *versionCache
}

func NewResolver(site fs.FileSystem, assetsDir, stylesFile string) *Resolver {
	if assetsDir == "" {
		assetsDir = DefaultAssetsDir
	}
	if stylesFile == "" {
		stylesFile = DefaultStylesFile
	}
	return &Resolver{
		site:       site,
		assetsDir:  path.Clean(assetsDir),
		stylesFile: path.Clean(stylesFile),
		versions:   newVersionCache(),
	}
}

func (r *Resolver) FileSystem() fs.FileSystem {
	return r.site
}

func (r *Resolver) AssetsDir() string {
	return r.assetsDir
}

// Path returns the location of an asset inside the site filesystem.
func (r *Resolver) Path(name string) string {
	return path.Join(r.assetsDir, name)
}

func (r *Resolver) Stylesheet() (string, error) {
	data, err := r.site.ReadFile(r.stylesFile)
	if err != nil {
		return "", &core.AssetError{Kind: "stylesheet", Name: r.stylesFile, Err: err}
	}
	return string(data), nil
}

func (r *Resolver) URL(name string) (string, error) {
	if err := core.ValidateAssetName(name); err != nil {
		return "", &core.AssetError{Kind: kindOf(name), Name: name, Err: err}
	}

	full := r.Path(name)
	info, err := r.site.Stat(full)
	if err != nil {
		return "", &core.AssetError{Kind: kindOf(name), Name: name, Err: err}
	}
	if info.IsDir() {
		return "", &core.AssetError{Kind: kindOf(name), Name: name, Err: fmt.Errorf("is a directory")}
	}

	key := versionKey{name: name, size: info.Size(), modTime: info.ModTime()}
	version, ok := r.versions.get(key)
	if !ok {
		data, err := r.site.ReadFile(full)
		if err != nil {
			return "", &core.AssetError{Kind: kindOf(name), Name: name, Err: err}
		}
		version = core.HashContent(data)
		r.versions.set(key, version)
	}

	return core.AssetPath(name) + "?v=" + version, nil
}

// Check resolves every name and returns one error per asset that cannot
// be served, plus the stylesheet.
func (r *Resolver) Check(names []string) []error {
	var errs []error
	if _, err := r.Stylesheet(); err != nil {
		errs = append(errs, err)
	}
	for _, name := range names {
		if _, err := r.URL(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Reset drops cached versions.
func (r *Resolver) Reset() {
	r.versions.clear()
}

func kindOf(name string) string {
	ct := core.GetContentType(name)
	switch {
	case len(ct) >= 6 && ct[:6] == "image/":
		return "image"
	case len(ct) >= 6 && ct[:6] == "video/":
		return "video"
	default:
		return "asset"
	}
}
