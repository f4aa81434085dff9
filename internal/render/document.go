package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/landing/internal/core"
)

//go:embed base.css
var baseCSS string

// Resources supplies everything a render reads from disk.
type Resources interface {
	Stylesheet() (string, error)
	URL(name string) (string, error)
}

// resolved holds the outcome of every file read the page needs, so that the
// tree itself is built without touching the filesystem.
type resolved struct {
	lang     string
	css      string
	icon     string
	product  string
	features []string
	video    string
}

func resolve(site core.Site, res Resources) (resolved, error) {
	var r resolved
	var err error

	if r.lang, err = core.CanonicalLang(site.Meta.Lang); err != nil {
		return r, err
	}

	if r.css, err = res.Stylesheet(); err != nil {
		return r, err
	}

	if core.IsAssetIcon(site.Meta.Icon) {
		if r.icon, err = res.URL(site.Meta.Icon); err != nil {
			return r, err
		}
	} else if site.Meta.Icon != "" {
		r.icon = emojiIcon(site.Meta.Icon)
	}

	if r.product, err = res.URL(site.Product.Image); err != nil {
		return r, err
	}

	r.features = make([]string, len(site.Features))
	for i, f := range site.Features {
		if r.features[i], err = res.URL(f.Image); err != nil {
			return r, err
		}
	}

	if r.video, err = res.URL(site.Video.File); err != nil {
		return r, err
	}
	if site.Video.Start > 0 {
		r.video += "#t=" + strconv.Itoa(site.Video.Start)
	}

	return r, nil
}

// Document builds the complete landing page for site. Sections are emitted
// in a fixed order: header, hero, features, demo video, FAQ, contact form.
func Document(site core.Site, res Resources) (g.Node, error) {
	r, err := resolve(site, res)
	if err != nil {
		return nil, err
	}

	hero, err := heroSection(site.Product, r.product)
	if err != nil {
		return nil, err
	}

	features, err := featuresSection(site.Sections.Features, site.Features, r.features)
	if err != nil {
		return nil, err
	}

	faq, err := faqSection(site.Sections.FAQ, site.FAQ)
	if err != nil {
		return nil, err
	}

	layout := site.Meta.Layout
	if layout == "" {
		layout = core.LayoutCentered
	}
	sidebar := site.Meta.Sidebar
	if sidebar == "" {
		sidebar = core.SidebarAuto
	}

	title := site.Meta.Title
	if title == "" {
		title = site.Product.Name
	}

	return Doctype(
		HTML(
			Lang(r.lang),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(title)),
				g.If(r.icon != "", Link(Rel("icon"), Href(r.icon))),
				g.El("style", g.Raw(baseCSS)),
				g.El("style", g.Raw(r.css)),
			),
			Body(
				Class("layout-"+string(layout)),
				g.Attr("data-sidebar", string(sidebar)),
				Main(
					Class("block-container"),
					header(site.Product),
					hero,
					Hr(),
					features,
					Hr(),
					demoSection(site.Sections.Demo, site.Video, r.video),
					Hr(),
					faq,
					Hr(),
					contactSection(site.Sections.Contact, site.Contact),
				),
			),
		),
	), nil
}

// RenderBytes builds the document and renders it into memory. Nothing is
// written anywhere when a resource is missing.
func RenderBytes(site core.Site, res Resources) ([]byte, error) {
	doc, err := Document(site, res)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}
	return buf.Bytes(), nil
}

func emojiIcon(emoji string) string {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><text y=".9em" font-size="90">` + emoji + `</text></svg>`
	return "data:image/svg+xml," + url.PathEscape(svg)
}
