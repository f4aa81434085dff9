package core

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("asset name cannot be empty")
	}

	if strings.HasPrefix(name, "/") {
		return fmt.Errorf("asset name must be relative to the assets directory")
	}

	if strings.Contains(name, "\\") {
		return fmt.Errorf("asset name must use forward slashes")
	}

	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return fmt.Errorf("asset name cannot contain parent directory references")
		}
	}

	if strings.ContainsAny(name, "?#") {
		return fmt.Errorf("asset name cannot contain query or fragment characters")
	}

	return nil
}

// AssetPath returns the URL path an asset is served under. Each segment is
// escaped so that non-ASCII filenames survive as valid URLs.
func AssetPath(name string) string {
	parts := strings.Split(path.Clean(name), "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return "/assets/" + strings.Join(parts, "/")
}
