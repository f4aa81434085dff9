package render

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/landing/internal/core"
)

func header(p core.Product) g.Node {
	return Header(
		H1(Class("product-name"), g.Text(p.Name)),
		g.If(p.Tagline != "", H2(Class("tagline"), g.Text(p.Tagline))),
	)
}

func heroSection(p core.Product, imageURL string) (g.Node, error) {
	description, err := Markdown(p.Description)
	if err != nil {
		return nil, err
	}

	img := []g.Node{Src(imageURL), Alt(p.Name)}
	if p.ImageWidth > 0 {
		img = append(img, Width(strconv.Itoa(p.ImageWidth)))
	}

	return Section(
		ID("hero"),
		Div(
			Class("columns columns-2-1"),
			Div(
				Class("column"),
				Div(Class("description"), description),
				A(Href(p.CheckoutURL), Class("button"), g.Text(p.CheckoutLabel)),
			),
			Div(
				Class("column"),
				Img(img...),
			),
		),
	), nil
}

func featuresSection(heading string, features []core.Feature, imageURLs []string) (g.Node, error) {
	blocks := make([]g.Node, 0, len(features))
	for i, f := range features {
		body, err := Markdown(f.Body)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, Div(
			Class("feature columns columns-1-1"),
			Div(
				Class("column"),
				Img(Class("full-width"), Src(imageURLs[i]), Alt(f.Heading)),
			),
			Div(
				Class("column"),
				H3(g.Text(f.Heading)),
				body,
			),
		))
	}

	return Section(
		ID("features"),
		g.If(heading != "", H2(g.Text(heading))),
		g.Group(blocks),
	), nil
}

func demoSection(heading string, v core.Video, src string) g.Node {
	format := v.Format
	if format == "" {
		format = core.GetContentType(v.File)
	}

	return Section(
		ID("demo"),
		g.If(heading != "", H2(g.Text(heading))),
		Video(
			g.Attr("controls"),
			g.Attr("preload", "metadata"),
			Source(Src(src), Type(format)),
		),
	)
}

func faqSection(heading string, entries []core.FAQEntry) (g.Node, error) {
	items := make([]g.Node, 0, len(entries))
	for _, entry := range entries {
		answer, err := Markdown(entry.Answer)
		if err != nil {
			return nil, err
		}
		items = append(items, Details(
			Class("faq-item"),
			Summary(g.Text(entry.Question)),
			Div(Class("faq-answer"), answer),
		))
	}

	return Section(
		ID("faq"),
		g.If(heading != "", H2(g.Text(heading))),
		g.Group(items),
	), nil
}

// contactSection renders the form posted to the external relay. The
// submission is never handled by this server.
func contactSection(heading string, c core.Contact) g.Node {
	return Section(
		ID("contact"),
		g.If(heading != "", H2(g.Text(heading))),
		g.El("form",
			Action(c.Endpoint()),
			Method("POST"),
			g.If(!c.Captcha, Input(Type("hidden"), Name("_captcha"), Value("false"))),
			Input(Type("text"), Name("name"), Placeholder(c.NamePlaceholder), Required()),
			Input(Type("email"), Name("email"), Placeholder(c.EmailPlaceholder), Required()),
			Textarea(Name("message"), Placeholder(c.MessagePlaceholder)),
			Button(Type("submit"), Class("button"), g.Text(c.SubmitLabel)),
		),
	)
}
