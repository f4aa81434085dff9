package usecase

import (
	"context"
	"fmt"
	"path"

	"github.com/3-lines-studio/landing/internal/adapters/fs"
)

const (
	IndexFile       = "index.html"
	ExportAssetsDir = "assets"
)

type ExportInput struct {
	OutDir string
}

type ExportOutput struct {
	Files []string
	Error error
}

// ExportService writes the rendered page and every asset it references to
// a directory. Asset URLs in index.html are relative, so the directory can
// be hosted under any path prefix.
type ExportService struct {
	pages *PageService
	cli   CLIOutput
	out   func(dir string) FileSystem
}

func NewExportService(pages *PageService, cli CLIOutput) *ExportService {
	return &ExportService{
		pages: pages,
		cli:   cli,
		out: func(dir string) FileSystem {
			return fs.NewOSFileSystem(dir)
		},
	}
}

func (s *ExportService) Export(ctx context.Context, input ExportInput) ExportOutput {
	s.cli.PrintHeader("Landing Build")

	s.cli.PrintStep("", "Rendering page...")
	page := s.pages.RenderRelative(ctx)
	if page.Error != nil {
		return ExportOutput{Error: fmt.Errorf("failed to render page: %w", page.Error)}
	}

	out := s.out(input.OutDir)
	if err := out.MkdirAll(".", 0o755); err != nil {
		return ExportOutput{Error: fmt.Errorf("failed to create output directory: %w", err)}
	}

	if err := out.WriteFile(IndexFile, page.HTML, 0o644); err != nil {
		return ExportOutput{Error: fmt.Errorf("failed to write %s: %w", IndexFile, err)}
	}
	files := []string{IndexFile}

	s.cli.PrintStep("", "Copying %d assets...", len(page.Assets))
	assets := s.pages.Assets()
	for _, name := range page.Assets {
		if err := ctx.Err(); err != nil {
			return ExportOutput{Files: files, Error: err}
		}

		dst := path.Join(ExportAssetsDir, name)
		if err := fs.CopyFile(assets.FileSystem(), assets.Path(name), out, dst); err != nil {
			return ExportOutput{Files: files, Error: fmt.Errorf("failed to copy asset %s: %w", name, err)}
		}
		files = append(files, dst)
	}

	s.cli.PrintSuccess("Exported %d files to %s", len(files), input.OutDir)
	for _, f := range files {
		s.cli.PrintFile(f)
	}

	return ExportOutput{Files: files}
}
