package render

import (
	"bytes"
	"fmt"

	g "maragu.dev/gomponents"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Markdown converts copy written in markdown into a raw HTML node. Raw HTML
// inside the source is dropped by goldmark's default renderer.
func Markdown(source string) (g.Node, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}
	return g.Raw(buf.String()), nil
}
