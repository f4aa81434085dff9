package landing

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/3-lines-studio/landing/internal/adapters/cli"
	"github.com/3-lines-studio/landing/internal/adapters/env"
	"github.com/3-lines-studio/landing/internal/adapters/fs"
	httpadapter "github.com/3-lines-studio/landing/internal/adapters/http"
	"github.com/3-lines-studio/landing/internal/assets"
	"github.com/3-lines-studio/landing/internal/config"
	"github.com/3-lines-studio/landing/internal/content"
	"github.com/3-lines-studio/landing/internal/core"
	"github.com/3-lines-studio/landing/internal/usecase"
	"github.com/3-lines-studio/landing/internal/watch"
)

type Site = core.Site

// Reporter receives the human-facing progress lines printed by Export and
// Check.
type Reporter = usecase.CLIOutput

// DefaultSite returns the built-in page content.
func DefaultSite() Site {
	return content.Default()
}

type options struct {
	siteDir     string
	siteFS      iofs.FS
	contentFile string
	stylesFile  string
	assetsDir   string
	site        *Site
	isDev       bool
	devSet      bool
	logger      *zap.Logger
}

type Option func(*options)

// WithSiteDir reads content, stylesheet and assets from dir on disk.
func WithSiteDir(dir string) Option {
	return func(o *options) {
		o.siteDir = dir
	}
}

// WithSiteFS reads the site from fsys, typically an embed.FS, so the page
// can ship inside the binary. Dev reload is not available.
func WithSiteFS(fsys iofs.FS) Option {
	return func(o *options) {
		o.siteFS = fsys
	}
}

// WithContentFile loads the page content from a .yaml or .md file in the
// site instead of the built-in copy.
func WithContentFile(name string) Option {
	return func(o *options) {
		o.contentFile = name
	}
}

func WithStylesFile(name string) Option {
	return func(o *options) {
		o.stylesFile = name
	}
}

func WithAssetsDir(dir string) Option {
	return func(o *options) {
		o.assetsDir = dir
	}
}

// WithSite uses site as the page content. It takes precedence over
// WithContentFile.
func WithSite(site Site) Option {
	return func(o *options) {
		o.site = &site
	}
}

// WithDev shows render errors on the error page. Without it, dev mode
// follows the LANDING_DEV environment variable.
func WithDev(dev bool) Option {
	return func(o *options) {
		o.isDev = dev
		o.devSet = true
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

type App struct {
	opts     options
	site     fs.FileSystem
	resolver *assets.Resolver
	pages    *usecase.PageService
	logger   *zap.Logger
	isDev    bool
}

func New(opts ...Option) (*App, error) {
	o := options{siteDir: config.DefaultSiteDir}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.devSet {
		o.isDev = env.IsDev()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	var siteFS fs.FileSystem
	if o.siteFS != nil {
		siteFS = fs.NewEmbedFileSystem(o.siteFS)
	} else {
		siteFS = fs.NewOSFileSystem(o.siteDir)
	}

	app := &App{
		opts:     o,
		site:     siteFS,
		resolver: assets.NewResolver(siteFS, o.assetsDir, o.stylesFile),
		logger:   o.logger,
		isDev:    o.isDev,
	}

	site, err := app.loadSite()
	if err != nil {
		return nil, err
	}
	app.pages = usecase.NewPageService(site, app.resolver)

	return app, nil
}

func (a *App) loadSite() (Site, error) {
	switch {
	case a.opts.site != nil:
		if err := a.opts.site.Validate(); err != nil {
			return Site{}, err
		}
		return *a.opts.site, nil
	case a.opts.contentFile != "":
		return content.Load(a.site, filepath.ToSlash(a.opts.contentFile))
	default:
		return content.Default(), nil
	}
}

// Site returns the content currently being rendered.
func (a *App) Site() Site {
	return a.pages.Site()
}

func (a *App) IsDev() bool {
	return a.isDev
}

// Handler serves the page at / and its assets under /assets/.
func (a *App) Handler() http.Handler {
	return httpadapter.NewRouter(httpadapter.RouterConfig{
		Pages:     a.pages,
		Assets:    a.site,
		AssetsDir: a.resolver.AssetsDir(),
		Logger:    a.logger,
		Dev:       a.isDev,
	})
}

// Render returns the complete HTML document. A missing stylesheet or asset
// fails the render with an error matching core.ErrAssetNotFound.
func (a *App) Render(ctx context.Context) ([]byte, error) {
	out := a.pages.RenderPage(ctx)
	return out.HTML, out.Error
}

// Export writes index.html and every referenced asset to outDir.
func (a *App) Export(ctx context.Context, outDir string, r Reporter) ([]string, error) {
	out := usecase.NewExportService(a.pages, reporter(r)).Export(ctx, usecase.ExportInput{OutDir: outDir})
	return out.Files, out.Error
}

// Check validates the content and reports every file the page needs but
// cannot read. The returned error joins all of them.
func (a *App) Check(ctx context.Context, r Reporter) error {
	out := usecase.NewCheckService(a.pages, reporter(r)).Check(ctx)
	if len(out.Missing) > 0 {
		return errors.Join(out.Missing...)
	}
	return out.Error
}

// Reload reads the content file again and drops cached asset versions.
// On failure the previous content stays in place.
func (a *App) Reload() error {
	site, err := a.loadSite()
	if err != nil {
		return err
	}
	a.resolver.Reset()
	a.pages.SetSite(site)
	return nil
}

// Watch reloads the site whenever a file under the site directory changes,
// until ctx is cancelled. Sites read from an fs.FS cannot be watched.
func (a *App) Watch(ctx context.Context) error {
	osfs, ok := a.site.(*fs.OSFileSystem)
	if !ok {
		return fmt.Errorf("watching requires a site directory on disk")
	}
	return watch.New(a.Reload, a.logger, config.ReloadDebounce, osfs.Root()).Run(ctx)
}

func reporter(r Reporter) Reporter {
	if r != nil {
		return r
	}
	out := cli.NewOutputTo(io.Discard, io.Discard)
	out.DisableColors()
	return out
}
