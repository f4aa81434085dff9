package fs

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem reads and writes below root on the local disk. Reads go
// through os.DirFS so that paths cannot escape root.
type OSFileSystem struct {
	root string
	dir  iofs.FS
}

func NewOSFileSystem(root string) *OSFileSystem {
	if root == "" {
		root = "."
	}
	return &OSFileSystem{
		root: root,
		dir:  os.DirFS(root),
	}
}

func (fs *OSFileSystem) Root() string {
	return fs.root
}

func (fs *OSFileSystem) Open(path string) (iofs.File, error) {
	return fs.dir.Open(path)
}

func (fs *OSFileSystem) Stat(path string) (iofs.FileInfo, error) {
	return iofs.Stat(fs.dir, path)
}

func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(fs.dir, path)
}

func (fs *OSFileSystem) ReadDir(path string) ([]iofs.DirEntry, error) {
	return iofs.ReadDir(fs.dir, path)
}

func (fs *OSFileSystem) FileExists(path string) bool {
	info, err := iofs.Stat(fs.dir, path)
	return err == nil && !info.IsDir()
}

func (fs *OSFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	return os.WriteFile(fs.resolve(path), data, perm)
}

func (fs *OSFileSystem) Create(path string) (io.WriteCloser, error) {
	return os.Create(fs.resolve(path))
}

func (fs *OSFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	return os.MkdirAll(fs.resolve(path), perm)
}

func (fs *OSFileSystem) resolve(path string) string {
	return filepath.Join(fs.root, filepath.FromSlash(path))
}

// CopyFile streams srcPath from src to dstPath in dst, creating parent
// directories.
func CopyFile(src FileSystem, srcPath string, dst FileSystem, dstPath string) error {
	in, err := src.Open(srcPath)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	if dir := filepath.ToSlash(filepath.Dir(dstPath)); dir != "." {
		if err := dst.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	out, err := dst.Create(dstPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
