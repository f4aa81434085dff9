package usecase

import (
	"context"
	"fmt"
)

type CheckOutput struct {
	Checked int
	Missing []error
	Error   error
}

// CheckService performs a dry run of a render and reports every asset that
// would fail it, rather than stopping at the first one.
type CheckService struct {
	pages *PageService
	cli   CLIOutput
}

func NewCheckService(pages *PageService, cli CLIOutput) *CheckService {
	return &CheckService{
		pages: pages,
		cli:   cli,
	}
}

func (s *CheckService) Check(ctx context.Context) CheckOutput {
	s.cli.PrintHeader("Landing Doctor")

	site := s.pages.Site()
	if err := site.Validate(); err != nil {
		s.cli.PrintError("%v", err)
		return CheckOutput{Error: err}
	}
	s.cli.PrintSuccess("Content is valid")

	names := uniqueNames(site.AssetNames())
	missing := s.pages.Assets().Check(names)
	for _, err := range missing {
		s.cli.PrintError("%v", err)
	}

	out := CheckOutput{
		Checked: len(names) + 1,
		Missing: missing,
	}

	if len(missing) > 0 {
		out.Error = fmt.Errorf("%d of %d files cannot be served", len(missing), out.Checked)
		return out
	}

	if page := s.pages.RenderPage(ctx); page.Error != nil {
		s.cli.PrintError("Render failed: %v", page.Error)
		out.Error = page.Error
		return out
	}

	s.cli.PrintSuccess("All %d files present", out.Checked)
	s.cli.PrintDone("Page renders cleanly")
	return out
}
