// Package fsadapter provides a filesystem abstraction for the export
// destination: a plain directory tree or a zip archive, chosen by the
// destination name.
package fsadapter

import (
	"io"
	"os"
	"strings"
)

// FS is the interface for operating on the files of the underlying
// filesystem.
type FS interface {
	// Create creates the named file, along with any missing parents.
	Create(string) (io.WriteCloser, error)
	// WriteFile writes data to the named file in one call.
	WriteFile(name string, data []byte, perm os.FileMode) error
	// Mkdir creates the named directory, along with any missing parents.
	// It is not an error if the directory already exists.
	Mkdir(name string) error
}

// FSCloser is an FS that must be closed after use to flush the underlying
// storage.
type FSCloser interface {
	FS
	io.Closer
}

// New returns the appropriate filesystem adapter for the location: a zip
// archive if the location ends in ".zip", a directory otherwise.
func New(location string) (FSCloser, error) {
	if strings.HasSuffix(strings.ToLower(location), ".zip") {
		return NewZipFile(location)
	}
	return directoryCloser{NewDirectory(location)}, nil
}

// directoryCloser adds a no-op Close to Directory, which needs none.
type directoryCloser struct {
	Directory
}

func (directoryCloser) Close() error { return nil }
