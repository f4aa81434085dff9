package core

import "fmt"

// HashContent returns a short, stable version string for content. It is
// used as the cache-busting query on asset URLs.
func HashContent(content []byte) string {
	result := 0
	for _, b := range content {
		result = (result*31 + int(b)) % 1000000007
	}
	return fmt.Sprintf("%x", result)
}
