package fs

import (
	"errors"
	"io"
	iofs "io/fs"
)

var ErrReadOnly = errors.New("filesystem is read-only")

// EmbedFileSystem adapts a read-only io/fs tree, typically an embed.FS
// sub-tree, to FileSystem.
type EmbedFileSystem struct {
	fs iofs.FS
}

func NewEmbedFileSystem(fsys iofs.FS) *EmbedFileSystem {
	return &EmbedFileSystem{fs: fsys}
}

func (fs *EmbedFileSystem) Open(path string) (iofs.File, error) {
	return fs.fs.Open(path)
}

func (fs *EmbedFileSystem) Stat(path string) (iofs.FileInfo, error) {
	return iofs.Stat(fs.fs, path)
}

func (fs *EmbedFileSystem) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(fs.fs, path)
}

func (fs *EmbedFileSystem) ReadDir(path string) ([]iofs.DirEntry, error) {
	return iofs.ReadDir(fs.fs, path)
}

func (fs *EmbedFileSystem) FileExists(path string) bool {
	info, err := iofs.Stat(fs.fs, path)
	return err == nil && !info.IsDir()
}

func (fs *EmbedFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	return ErrReadOnly
}

func (fs *EmbedFileSystem) Create(path string) (io.WriteCloser, error) {
	return nil, ErrReadOnly
}

func (fs *EmbedFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	return ErrReadOnly
}
