package fshelper

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FSSource lists and opens image files from an fs.FS: a local directory or
// a zip archive
type FSSource struct {
	fsys fs.FS
	name string
	root string
	zip  bool
	rc   io.Closer
}

// NewFSSource wraps fsys. Paths reported by Path are joined onto root.
func NewFSSource(fsys fs.FS, name, root string) *FSSource {
	return &FSSource{
		fsys: fsys,
		name: name,
		root: root,
	}
}

// OpenSource opens a directory or a .zip archive as a source
func OpenSource(path string) (*FSSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("path does not exist: %s", path)
		}
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	if info.IsDir() {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("error resolving path %s: %w", path, err)
		}
		return NewFSSource(os.DirFS(abs), filepath.Base(abs), abs), nil
	}

	if strings.HasSuffix(strings.ToLower(path), ".zip") {
		return OpenZip(path)
	}

	return nil, fmt.Errorf("unsupported source type: %s", path)
}

// OpenZip opens a zip archive as a source
func OpenZip(path string) (*FSSource, error) {
	zipFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening zip file: %w", err)
	}

	info, err := zipFile.Stat()
	if err != nil {
		zipFile.Close()
		return nil, fmt.Errorf("error getting zip file info: %w", err)
	}

	zipReader, err := zip.NewReader(zipFile, info.Size())
	if err != nil {
		zipFile.Close()
		return nil, fmt.Errorf("error creating zip reader: %w", err)
	}

	return &FSSource{
		fsys: zipReader,
		name: filepath.Base(path),
		root: path,
		zip:  true,
		rc:   zipFile,
	}, nil
}

// Name returns the name of the source
func (s *FSSource) Name() string {
	return s.name
}

// List walks the source and returns every regular file in walk order
func (s *FSSource) List(ctx context.Context) ([]string, error) {
	var names []string

	err := fs.WalkDir(s.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		names = append(names, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", s.name, err)
	}

	return names, nil
}

// Open opens a file listed by List
func (s *FSSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fsys.Open(name)
}

// Path returns the name a file is reported under. Files inside an archive
// are reported as "<archive>:<path>".
func (s *FSSource) Path(name string) string {
	if s.zip {
		return s.root + ":" + name
	}
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// Close releases the archive, if any
func (s *FSSource) Close() error {
	if s.rc != nil {
		return s.rc.Close()
	}
	return nil
}
