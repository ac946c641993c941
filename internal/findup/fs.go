package findup

import (
	"io/fs"
	"os"
)

// FileSystem is the filesystem levels are resolved against.
type FileSystem interface {
	// ReadDir lists the entries of the named directory in directory order.
	// It may return the entries read so far together with a non-nil error.
	ReadDir(name string) ([]fs.DirEntry, error)

	// DirFS returns the tree rooted at dir for the glob engine.
	DirFS(dir string) fs.FS
}

// OSFileSystem reads the host filesystem.
type OSFileSystem struct{}

// ReadDir opens name and reads all of its entries without sorting them.
func (OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}

// DirFS returns os.DirFS(dir).
func (OSFileSystem) DirFS(dir string) fs.FS {
	return os.DirFS(dir)
}
