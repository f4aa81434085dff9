package templates

import (
	"embed"
	"errors"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
)

//go:embed all:site
var siteFS embed.FS

//go:embed content
var contentFS embed.FS

var validFormats = []string{"yaml", "markdown"}

var ErrInvalidTemplate = errors.New("invalid template name")

// GetTemplate returns the files shared by every new site.
func GetTemplate() (fs.FS, error) {
	return fs.Sub(siteFS, "site")
}

// GetContent returns the content file template for format, named as it
// appears in the embedded tree.
func GetContent(format string) (string, []byte, error) {
	var name string
	switch format {
	case "yaml":
		name = "content.yaml.tmpl"
	case "markdown":
		name = "content.md.tmpl"
	default:
		return "", nil, ErrInvalidTemplate
	}

	data, err := contentFS.ReadFile("content/" + name)
	if err != nil {
		return "", nil, err
	}
	return name, data, nil
}

func Formats() []string {
	return append([]string(nil), validFormats...)
}

type TemplateData struct {
	Name        string
	ContentFile string
}

func ProcessFilename(filename string, data TemplateData) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

// ProcessContent fills in the placeholders of a template file. The name is
// written as a double-quoted YAML scalar so quotes and backslashes in it
// survive.
func ProcessContent(content []byte, isTemplate bool, data TemplateData) []byte {
	if !isTemplate {
		return content
	}

	result := string(content)
	result = strings.ReplaceAll(result, "{{.Name}}", strconv.Quote(data.Name))
	result = strings.ReplaceAll(result, "{{.ContentFile}}", data.ContentFile)

	return []byte(result)
}

func DeriveSiteName(projectDir string) string {
	base := filepath.Base(projectDir)
	if base == "." || base == "/" || base == "" {
		return "landing"
	}
	return base
}
