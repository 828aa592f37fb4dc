package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Source is where a catalog document lives.
//
// Fingerprint must be cheap and must change whenever the content does; the
// Loader only calls Open when the fingerprint differs from the cached one.
type Source interface {
	Name() string
	Fingerprint(ctx context.Context) (string, error)
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads the catalog from a local file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return "file:" + s.path }

// Path returns the file the source reads.
func (s *FileSource) Path() string { return s.path }

// Fingerprint combines modification time and size.
func (s *FileSource) Fingerprint(ctx context.Context) (string, error) {
	fi, err := os.Stat(s.path)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%s is a directory", s.path)
	}
	return fmt.Sprintf("%d:%d", fi.ModTime().UnixNano(), fi.Size()), nil
}

func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return os.Open(s.path)
}
