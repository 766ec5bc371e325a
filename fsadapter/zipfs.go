package fsadapter

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path"
	"strings"
	"sync"
)

var _ FS = &ZIP{}

// ZIP is the adapter for a zip archive.
type ZIP struct {
	zw   *zip.Writer
	mu   sync.Mutex
	f    *os.File
	seen map[string]bool // directory entries already written
}

// NewZIP returns a ZIP adapter writing to an existing zip.Writer.  The
// caller remains responsible for closing zw.
func NewZIP(zw *zip.Writer) *ZIP {
	return &ZIP{zw: zw, seen: make(map[string]bool)}
}

// NewZipFile creates the zip file with the given filename and returns a ZIP
// adapter writing to it.  Close must be called to finalise the archive.
func NewZipFile(filename string) (*ZIP, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	zw := zip.NewWriter(f)
	return &ZIP{zw: zw, f: f, seen: make(map[string]bool)}, nil
}

func (z *ZIP) String() string {
	name := "(writer)"
	if z.f != nil {
		name = z.f.Name()
	}
	return "<zip archive: " + name + ">"
}

func (z *ZIP) Create(filepath string) (io.WriteCloser, error) {
	z.mu.Lock() // mutex is unlocked when the caller closes the file.
	w, err := z.create(filepath)
	if err != nil {
		z.mu.Unlock()
		return nil, err
	}
	return &syncWriter{w: w, mu: &z.mu}, nil
}

func (z *ZIP) WriteFile(name string, data []byte, _ os.FileMode) error {
	z.mu.Lock()
	defer z.mu.Unlock()
	zf, err := z.create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(zf, bytes.NewReader(data))
	return err
}

// Mkdir writes an explicit directory entry (name with a trailing slash).
// Parents are recorded implicitly by create, so only the entry itself is
// written.
func (z *ZIP) Mkdir(name string) error {
	z.mu.Lock()
	defer z.mu.Unlock()
	name = strings.TrimRight(path.Clean(name), "/") + "/"
	if z.seen[name] {
		return nil
	}
	if _, err := z.zw.Create(name); err != nil {
		return err
	}
	z.seen[name] = true
	return nil
}

// create must be called with the mutex held.
func (z *ZIP) create(name string) (io.Writer, error) {
	z.seen[path.Dir(name)+"/"] = true
	return z.zw.Create(name)
}

// Close closes the underlying zip writer and the file handle.  It is only
// necessary if ZIP was initialised using NewZipFile.
func (z *ZIP) Close() error {
	if z.f == nil {
		return nil
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	if err := z.zw.Close(); err != nil {
		return err
	}
	return z.f.Close()
}

type syncWriter struct {
	w io.Writer // underlying writer

	// zip writer can only process one file at a time, so any process that
	// wants to Create a file will have to wait until Close is called:
	//
	// From zip.Create doc:  The file's contents must be written to the
	// io.Writer before the next call to Create, CreateHeader, or Close.
	mu *sync.Mutex
}

func (sw *syncWriter) Write(p []byte) (int, error) {
	return sw.w.Write(p)
}

func (sw *syncWriter) Close() error {
	sw.mu.Unlock()
	return nil
}
