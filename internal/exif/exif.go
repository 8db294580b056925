// internal/exif/exif.go
package exif

import (
	"io"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// TagReader reads EXIF tags from an image stream into a map of
// "<IFD> <Field>" names to raw string values
type TagReader interface {
	ReadTags(r io.Reader) (map[string]string, error)
}

// Reader is the goexif backed TagReader
type Reader struct{}

// NewReader creates a new EXIF tag reader
func NewReader() *Reader {
	return &Reader{}
}

// ReadTags decodes the EXIF block of r. Streams without EXIF data, or that
// are not images at all, yield an empty map.
func (Reader) ReadTags(r io.Reader) (map[string]string, error) {
	tags := make(map[string]string)

	x, err := exif.Decode(r)
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		return tags, nil
	}

	if err := x.Walk(&tagWalker{tags: tags}); err != nil {
		return nil, err
	}

	return tags, nil
}

// tagWalker collects every field visited by exif.Walk
type tagWalker struct {
	tags map[string]string
}

// Walk implements exif.Walker
func (w *tagWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag == nil {
		return nil
	}
	w.tags[TagName(name)] = tagValue(tag)
	return nil
}

// TagName prefixes a goexif field name with the IFD it lives in
func TagName(name exif.FieldName) string {
	if strings.HasPrefix(string(name), "GPS") {
		return "GPS " + string(name)
	}
	return "EXIF " + string(name)
}

func tagValue(tag *tiff.Tag) string {
	if tag.Format() == tiff.StringVal {
		if s, err := tag.StringVal(); err == nil {
			return strings.TrimRight(s, "\x00")
		}
	}
	return tag.String()
}
