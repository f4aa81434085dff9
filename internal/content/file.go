package content

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v2"

	"github.com/3-lines-studio/landing/internal/adapters/fs"
	"github.com/3-lines-studio/landing/internal/core"
)

// document is the on-disk shape of a content file. The FAQ is a YAML
// mapping decoded as a MapSlice so that questions keep the order they were
// written in.
type document struct {
	Page     core.PageMeta  `yaml:"page"`
	Product  core.Product   `yaml:"product"`
	Sections core.Sections  `yaml:"sections"`
	Features []core.Feature `yaml:"features"`
	Video    core.Video     `yaml:"video"`
	FAQ      yaml.MapSlice  `yaml:"faq"`
	Contact  core.Contact   `yaml:"contact"`
}

// Load reads and validates a content file from fsys.
func Load(fsys fs.FileSystem, name string) (core.Site, error) {
	data, err := fsys.ReadFile(name)
	if err != nil {
		return core.Site{}, fmt.Errorf("failed to read content file %s: %w", name, err)
	}

	site, err := Parse(name, data)
	if err != nil {
		return core.Site{}, fmt.Errorf("failed to parse content file %s: %w", name, err)
	}
	return site, nil
}

// Parse decodes content by file extension: .yaml/.yml hold the whole site,
// .md/.markdown hold the site in YAML front matter and the product
// description in the body.
func Parse(name string, data []byte) (core.Site, error) {
	var doc document

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalStrict(data, &doc); err != nil {
			return core.Site{}, fmt.Errorf("%w: %v", core.ErrInvalidContent, err)
		}
	case ".md", ".markdown":
		body, err := frontmatter.Parse(bytes.NewReader(data), &doc)
		if err != nil {
			return core.Site{}, fmt.Errorf("%w: front matter: %v", core.ErrInvalidContent, err)
		}
		if text := strings.TrimSpace(string(body)); text != "" {
			doc.Product.Description = text + "\n"
		}
	default:
		return core.Site{}, fmt.Errorf("%w: unsupported content file type %q", core.ErrInvalidContent, path.Ext(name))
	}

	faq, err := faqEntries(doc.FAQ)
	if err != nil {
		return core.Site{}, err
	}

	site := core.Site{
		Meta:     doc.Page,
		Product:  doc.Product,
		Sections: doc.Sections,
		Features: doc.Features,
		Video:    doc.Video,
		FAQ:      faq,
		Contact:  doc.Contact,
	}

	if err := site.Validate(); err != nil {
		return core.Site{}, err
	}
	return site, nil
}

func faqEntries(items yaml.MapSlice) ([]core.FAQEntry, error) {
	entries := make([]core.FAQEntry, 0, len(items))
	for _, item := range items {
		var question string
		switch k := item.Key.(type) {
		case string:
			question = k
		case nil, yaml.MapSlice, []interface{}:
			return nil, fmt.Errorf("%w: faq question %v is not text", core.ErrInvalidContent, item.Key)
		default:
			question = fmt.Sprint(k)
		}

		var answer string
		switch v := item.Value.(type) {
		case string:
			answer = v
		case nil:
		case yaml.MapSlice, []interface{}:
			return nil, fmt.Errorf("%w: faq answer for %q must be text", core.ErrInvalidContent, question)
		default:
			answer = fmt.Sprint(v)
		}

		entries = append(entries, core.FAQEntry{Question: question, Answer: answer})
	}
	return entries, nil
}
