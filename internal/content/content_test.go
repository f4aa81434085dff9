package content

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	fsadapter "github.com/3-lines-studio/landing/internal/adapters/fs"
	"github.com/3-lines-studio/landing/internal/core"
)

const siteYAML = `
page:
  title: Widget
  icon: "⭐"
  layout: wide
  sidebar: collapsed
  lang: en
product:
  name: Widget
  tagline: The best widget
  description: |
    Widgets are **great**.
  checkout_url: https://pay.example.com/checkout?item=1&qty=2
  checkout_label: Buy now
  image: widget.png
  image_width: 300
sections:
  features: Features
  demo: Demo
  faq: FAQ
  contact: Contact us
features:
  - image: one.png
    heading: One
    body: First
  - image: two.png
    heading: Two
    body: Second
video:
  file: demo.mp4
  format: video/mp4
  start: 5
faq:
  Zebra question?: Z answer
  Apple question?: A answer
  Mango question?: M answer
contact:
  email: hello@example.com
  submit_label: Send
`

func TestDefaultIsValid(t *testing.T) {
	site := Default()
	if err := site.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if len(site.Features) != 3 {
		t.Errorf("expected 3 features, got %d", len(site.Features))
	}
	if len(site.FAQ) != 5 {
		t.Errorf("expected 5 faq entries, got %d", len(site.FAQ))
	}
	if body := site.Features[2].Body; !strings.HasSuffix(body, "装置。。") {
		t.Errorf("third feature body lost its closing punctuation: %q", body)
	}
}

func TestParseScalarQuestions(t *testing.T) {
	source := strings.Replace(siteYAML, "  Zebra question?: Z answer\n", "  Yes: affirmative\n  2024: this year\n  Zebra question?: Z answer\n", 1)

	site, err := Parse("site.yaml", []byte(source))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []core.FAQEntry{
		{Question: "true", Answer: "affirmative"},
		{Question: "2024", Answer: "this year"},
		{Question: "Zebra question?", Answer: "Z answer"},
	}
	for i, w := range want {
		if site.FAQ[i] != w {
			t.Errorf("FAQ[%d] = %+v, want %+v", i, site.FAQ[i], w)
		}
	}
}

func TestParseYAML(t *testing.T) {
	site, err := Parse("site.yaml", []byte(siteYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if site.Product.Name != "Widget" {
		t.Errorf("Name = %q", site.Product.Name)
	}
	if site.Product.CheckoutURL != "https://pay.example.com/checkout?item=1&qty=2" {
		t.Errorf("CheckoutURL = %q", site.Product.CheckoutURL)
	}
	if site.Meta.Layout != core.LayoutWide {
		t.Errorf("Layout = %q", site.Meta.Layout)
	}
	if site.Video.Start != 5 {
		t.Errorf("Video.Start = %d", site.Video.Start)
	}
	if site.Contact.Endpoint() != "https://formsubmit.co/hello@example.com" {
		t.Errorf("Endpoint() = %q", site.Contact.Endpoint())
	}

	wantOrder := []string{"Zebra question?", "Apple question?", "Mango question?"}
	if len(site.FAQ) != len(wantOrder) {
		t.Fatalf("expected %d faq entries, got %d", len(wantOrder), len(site.FAQ))
	}
	for i, q := range wantOrder {
		if site.FAQ[i].Question != q {
			t.Errorf("FAQ[%d] = %q, want %q", i, site.FAQ[i].Question, q)
		}
	}
}

func TestParseMarkdown(t *testing.T) {
	source := `---
product:
  name: Widget
  checkout_url: https://pay.example.com
  image: widget.png
video:
  file: demo.mp4
faq:
  B?: b
  A?: a
contact:
  email: hello@example.com
---

Widgets are **great**.

- fast
- cheap
`

	site, err := Parse("landing.md", []byte(source))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := "Widgets are **great**.\n\n- fast\n- cheap\n"
	if site.Product.Description != want {
		t.Errorf("Description = %q, want %q", site.Product.Description, want)
	}
	if site.FAQ[0].Question != "B?" || site.FAQ[1].Question != "A?" {
		t.Errorf("FAQ order not preserved: %+v", site.FAQ)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		source string
	}{
		{name: "unsupported extension", file: "site.json", source: "{}"},
		{name: "unknown field", file: "site.yaml", source: "bogus: 1\n"},
		{name: "missing required fields", file: "site.yaml", source: "product:\n  name: X\n"},
		{name: "nested faq answer", file: "site.yaml", source: "faq:\n  Q?:\n    nested: true\n"},
		{name: "list question", file: "site.yaml", source: "faq:\n  ? [a, b]\n  : one\n"},
		{name: "null question", file: "site.yaml", source: "faq:\n  ~: one\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.file, []byte(tt.source))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, core.ErrInvalidContent) {
				t.Errorf("expected ErrInvalidContent, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	fsys := fsadapter.NewEmbedFileSystem(fstest.MapFS{
		"content/site.yaml": {Data: []byte(siteYAML)},
	})

	site, err := Load(fsys, "content/site.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(site.Features) != 2 {
		t.Errorf("expected 2 features, got %d", len(site.Features))
	}

	if _, err := Load(fsys, "content/missing.yaml"); err == nil {
		t.Error("expected error for missing content file")
	}
}
