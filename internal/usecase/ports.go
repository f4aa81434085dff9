package usecase

import (
	"github.com/3-lines-studio/landing/internal/adapters/fs"
	"github.com/3-lines-studio/landing/internal/render"
)

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(emoji, msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
}

// AssetSource resolves the stylesheet and asset URLs for a render and knows
// where each asset lives in the site filesystem.
type AssetSource interface {
	render.Resources
	FileSystem() fs.FileSystem
	Path(name string) string
	Check(names []string) []error
}

type FileSystem = fs.FileSystem
