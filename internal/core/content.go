package core

import "strings"

type Layout string

const (
	LayoutCentered Layout = "centered"
	LayoutWide     Layout = "wide"
)

type SidebarState string

const (
	SidebarAuto      SidebarState = "auto"
	SidebarExpanded  SidebarState = "expanded"
	SidebarCollapsed SidebarState = "collapsed"
)

const DefaultFormRelay = "https://formsubmit.co"

// PageMeta is consumed once at the start of a render and ends up in the
// document head and body attributes.
type PageMeta struct {
	Title   string       `yaml:"title"`
	Icon    string       `yaml:"icon"`
	Layout  Layout       `yaml:"layout"`
	Sidebar SidebarState `yaml:"sidebar"`
	Lang    string       `yaml:"lang"`
}

type Product struct {
	Name          string `yaml:"name"`
	Tagline       string `yaml:"tagline"`
	Description   string `yaml:"description"`
	CheckoutURL   string `yaml:"checkout_url"`
	CheckoutLabel string `yaml:"checkout_label"`
	Image         string `yaml:"image"`
	ImageWidth    int    `yaml:"image_width"`
}

type Sections struct {
	Features string `yaml:"features"`
	Demo     string `yaml:"demo"`
	FAQ      string `yaml:"faq"`
	Contact  string `yaml:"contact"`
}

type Feature struct {
	Image   string `yaml:"image"`
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

type Video struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"`
	Start  int    `yaml:"start"`
}

type FAQEntry struct {
	Question string
	Answer   string
}

type Contact struct {
	Relay              string `yaml:"relay"`
	Email              string `yaml:"email"`
	Captcha            bool   `yaml:"captcha"`
	NamePlaceholder    string `yaml:"name_placeholder"`
	EmailPlaceholder   string `yaml:"email_placeholder"`
	MessagePlaceholder string `yaml:"message_placeholder"`
	SubmitLabel        string `yaml:"submit_label"`
}

// Endpoint is the URL the contact form posts to.
func (c Contact) Endpoint() string {
	relay := c.Relay
	if relay == "" {
		relay = DefaultFormRelay
	}
	return strings.TrimSuffix(relay, "/") + "/" + c.Email
}

type Site struct {
	Meta     PageMeta
	Product  Product
	Sections Sections
	Features []Feature
	Video    Video
	FAQ      []FAQEntry
	Contact  Contact
}

// AssetNames lists every asset file the page references, in render order.
// The icon is included only when it names a file rather than an emoji.
func (s Site) AssetNames() []string {
	var names []string
	if IsAssetIcon(s.Meta.Icon) {
		names = append(names, s.Meta.Icon)
	}
	names = append(names, s.Product.Image)
	for _, f := range s.Features {
		names = append(names, f.Image)
	}
	names = append(names, s.Video.File)
	return names
}

// IsAssetIcon reports whether icon refers to an image file in the assets
// directory instead of an emoji.
func IsAssetIcon(icon string) bool {
	switch GetContentType(icon) {
	case "image/png", "image/jpeg", "image/gif", "image/svg+xml", "image/x-icon", "image/webp":
		return true
	}
	return false
}
