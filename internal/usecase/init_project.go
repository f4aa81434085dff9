package usecase

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path"

	"github.com/3-lines-studio/landing/internal/adapters/fs"
	"github.com/3-lines-studio/landing/internal/assets"
	"github.com/3-lines-studio/landing/internal/templates"
)

type InitInput struct {
	ProjectDir string
	Format     string
	Name       string
}

type InitOutput struct {
	Files []string
	Error error
}

// InitService scaffolds a new site directory from the embedded templates.
type InitService struct {
	cli CLIOutput
	out func(dir string) FileSystem
}

func NewInitService(cli CLIOutput) *InitService {
	return &InitService{
		cli: cli,
		out: func(dir string) FileSystem {
			return fs.NewOSFileSystem(dir)
		},
	}
}

func (s *InitService) InitProject(input InitInput) InitOutput {
	s.cli.PrintHeader("Landing Init")

	format := input.Format
	if format == "" {
		format = "yaml"
	}

	contentName, contentData, err := templates.GetContent(format)
	if err != nil {
		if errors.Is(err, templates.ErrInvalidTemplate) {
			return InitOutput{Error: fmt.Errorf("invalid content format '%s'", format)}
		}
		return InitOutput{Error: err}
	}

	siteFS, err := templates.GetTemplate()
	if err != nil {
		return InitOutput{Error: err}
	}

	dst := s.out(input.ProjectDir)

	entries, err := dst.ReadDir(".")
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return InitOutput{Error: fmt.Errorf("failed to read directory: %w", err)}
	}
	if len(entries) > 0 {
		return InitOutput{Error: fmt.Errorf("directory '%s' already exists and is not empty", input.ProjectDir)}
	}

	if err := dst.MkdirAll(".", 0o755); err != nil {
		return InitOutput{Error: fmt.Errorf("failed to create project directory: %w", err)}
	}

	name := input.Name
	if name == "" {
		name = templates.DeriveSiteName(input.ProjectDir)
	}
	contentFile, _ := templates.ProcessFilename(contentName, templates.TemplateData{})
	data := templates.TemplateData{
		Name:        name,
		ContentFile: contentFile,
	}

	var files []string
	write := func(p string, content []byte) error {
		target, isTemplate := templates.ProcessFilename(p, data)
		if dir := path.Dir(target); dir != "." {
			if err := dst.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
		if err := dst.WriteFile(target, templates.ProcessContent(content, isTemplate, data), 0o644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", target, err)
		}

		if isTemplate {
			s.cli.PrintFile(target + " (generated)")
		} else {
			s.cli.PrintFile(target)
		}
		files = append(files, target)
		return nil
	}

	err = iofs.WalkDir(siteFS, ".", func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := iofs.ReadFile(siteFS, p)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", p, err)
		}
		return write(p, content)
	})
	if err != nil {
		return InitOutput{Files: files, Error: err}
	}

	if err := write(contentName, contentData); err != nil {
		return InitOutput{Files: files, Error: err}
	}

	s.cli.PrintDone(fmt.Sprintf("Created %d files", len(files)))
	s.cli.PrintStep("", "Next steps:")
	s.cli.PrintStep("", "  cp your-demo.mp4 %s", path.Join(input.ProjectDir, assets.DefaultAssetsDir, "demo.mp4"))
	s.cli.PrintStep("", "  cd %s && landing serve --dev", input.ProjectDir)

	return InitOutput{Files: files}
}

// Repair recreates the stylesheet and assets directory of an existing site
// when they are missing. Existing files are left untouched.
func (s *InitService) Repair(projectDir string) InitOutput {
	s.cli.PrintHeader("Landing Repair")

	siteFS, err := templates.GetTemplate()
	if err != nil {
		return InitOutput{Error: err}
	}
	dst := s.out(projectDir)

	if err := dst.MkdirAll(assets.DefaultAssetsDir, 0o755); err != nil {
		return InitOutput{Error: fmt.Errorf("failed to create assets directory: %w", err)}
	}

	var files []string
	if !dst.FileExists(assets.DefaultStylesFile) {
		if err := fs.CopyFile(fs.NewEmbedFileSystem(siteFS), assets.DefaultStylesFile, dst, assets.DefaultStylesFile); err != nil {
			return InitOutput{Error: fmt.Errorf("failed to create %s: %w", assets.DefaultStylesFile, err)}
		}
		s.cli.PrintSuccess("Created %s", assets.DefaultStylesFile)
		files = append(files, assets.DefaultStylesFile)
	}

	s.cli.PrintDone("Repair complete!")
	return InitOutput{Files: files}
}
