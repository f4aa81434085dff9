package usecase

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/3-lines-studio/landing/internal/core"
	"github.com/3-lines-studio/landing/internal/render"
)

type RenderPageOutput struct {
	HTML   []byte
	Assets []string
	Error  error
}

// PageService renders the landing page from the current site content. The
// content can be swapped while requests are in flight; each render works on
// the snapshot it started with.
type PageService struct {
	site   atomic.Pointer[core.Site]
	assets AssetSource
}

func NewPageService(site core.Site, assets AssetSource) *PageService {
	s := &PageService{assets: assets}
	s.site.Store(&site)
	return s
}

func (s *PageService) Site() core.Site {
	return *s.site.Load()
}

func (s *PageService) SetSite(site core.Site) {
	s.site.Store(&site)
}

func (s *PageService) Assets() AssetSource {
	return s.assets
}

func (s *PageService) RenderPage(ctx context.Context) RenderPageOutput {
	return s.renderWith(ctx, s.assets)
}

// RenderRelative renders the page with asset URLs relative to the page, so
// the output works from any directory or over file://.
func (s *PageService) RenderRelative(ctx context.Context) RenderPageOutput {
	return s.renderWith(ctx, relativeResources{s.assets})
}

func (s *PageService) renderWith(ctx context.Context, res render.Resources) RenderPageOutput {
	if err := ctx.Err(); err != nil {
		return RenderPageOutput{Error: err}
	}

	site := s.Site()
	html, err := render.RenderBytes(site, res)
	if err != nil {
		return RenderPageOutput{Error: err}
	}

	return RenderPageOutput{
		HTML:   html,
		Assets: uniqueNames(site.AssetNames()),
	}
}

type relativeResources struct {
	render.Resources
}

func (r relativeResources) URL(name string) (string, error) {
	u, err := r.Resources.URL(name)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(u, "/"), nil
}

func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
