package core

import (
	"fmt"

	"golang.org/x/text/language"
)

// CanonicalLang parses a BCP 47 tag and returns its canonical form, e.g.
// "zh-hans" becomes "zh-Hans". An empty tag yields "und".
func CanonicalLang(tag string) (string, error) {
	if tag == "" {
		return language.Und.String(), nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%w: language %q: %v", ErrInvalidContent, tag, err)
	}
	return t.String(), nil
}

func (s Site) Validate() error {
	if s.Product.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrInvalidContent)
	}
	if s.Product.CheckoutURL == "" {
		return fmt.Errorf("%w: checkout url is required", ErrInvalidContent)
	}
	if s.Contact.Email == "" {
		return fmt.Errorf("%w: contact email is required", ErrInvalidContent)
	}

	switch s.Meta.Layout {
	case "", LayoutCentered, LayoutWide:
	default:
		return fmt.Errorf("%w: layout must be %q or %q, got %q", ErrInvalidContent, LayoutCentered, LayoutWide, s.Meta.Layout)
	}

	switch s.Meta.Sidebar {
	case "", SidebarAuto, SidebarExpanded, SidebarCollapsed:
	default:
		return fmt.Errorf("%w: unknown sidebar state %q", ErrInvalidContent, s.Meta.Sidebar)
	}

	if _, err := CanonicalLang(s.Meta.Lang); err != nil {
		return err
	}

	for _, name := range s.AssetNames() {
		if err := ValidateAssetName(name); err != nil {
			return fmt.Errorf("%w: asset %q: %v", ErrInvalidContent, name, err)
		}
	}

	for i, f := range s.Features {
		if f.Heading == "" {
			return fmt.Errorf("%w: feature %d has no heading", ErrInvalidContent, i+1)
		}
	}

	seen := make(map[string]bool, len(s.FAQ))
	for _, entry := range s.FAQ {
		if entry.Question == "" {
			return fmt.Errorf("%w: faq entry with empty question", ErrInvalidContent)
		}
		if seen[entry.Question] {
			return fmt.Errorf("%w: duplicate faq question %q", ErrInvalidContent, entry.Question)
		}
		seen[entry.Question] = true
	}

	return nil
}
