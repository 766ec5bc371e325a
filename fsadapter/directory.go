package fsadapter

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

var _ FS = Directory{}

// Directory is the adapter for a plain directory tree rooted at dir.
type Directory struct {
	dir string
}

// NewDirectory returns a new Directory adapter rooted at dir.  The
// directory itself is created lazily, on the first write.
func NewDirectory(dir string) Directory {
	return Directory{dir: dir}
}

func (d Directory) String() string {
	return "<directory: " + d.dir + ">"
}

func (d Directory) Create(fpath string) (io.WriteCloser, error) {
	node := filepath.Join(d.dir, fpath)
	if err := mkdirAll(filepath.Dir(node)); err != nil {
		return nil, err
	}
	return os.Create(node)
}

func (d Directory) WriteFile(name string, data []byte, perm os.FileMode) error {
	node := filepath.Join(d.dir, name)
	if err := mkdirAll(filepath.Dir(node)); err != nil {
		return err
	}
	return os.WriteFile(node, data, perm)
}

func (d Directory) Mkdir(name string) error {
	return mkdirAll(filepath.Join(d.dir, name))
}

// mkdirAll creates the directory "name", if the directory exists, it does
// nothing.
func mkdirAll(name string) error {
	if name == "" {
		return errors.New("empty directory")
	}
	fi, err := os.Stat(name)
	if err == nil && fi.IsDir() {
		// exists and is a directory
		return nil
	}
	return os.MkdirAll(name, 0755)
}
