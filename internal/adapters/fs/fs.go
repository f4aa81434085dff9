package fs

import (
	"io"
	iofs "io/fs"
)

// FileSystem is the storage the site is read from and exported to. Paths
// are slash-separated and relative to the filesystem root.
type FileSystem interface {
	Open(path string) (iofs.File, error)
	Stat(path string) (iofs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]iofs.DirEntry, error)
	FileExists(path string) bool
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	Create(path string) (io.WriteCloser, error)
	MkdirAll(path string, perm iofs.FileMode) error
}
