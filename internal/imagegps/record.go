// internal/imagegps/record.go
package imagegps

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bstardust/imagegps/internal/exif"
	"github.com/bstardust/imagegps/internal/gps"
	"github.com/bstardust/imagegps/internal/logger"
	"github.com/bstardust/imagegps/pkg/common"
)

// Zoom level bounds accepted by Google Maps
const (
	MinZoomLevel     = 1
	MaxZoomLevel     = 21
	DefaultZoomLevel = 16
)

var supportedSuffixes = []string{"jpg", "jpeg", "tiff"}

// State is the processing state of a Record
type State int

const (
	Unprocessed State = iota
	NoGPS
	HasGPS
)

func (s State) String() string {
	switch s {
	case NoGPS:
		return "no-gps"
	case HasGPS:
		return "has-gps"
	default:
		return "unprocessed"
	}
}

// Opener opens a named file for reading
type Opener func(name string) (io.ReadCloser, error)

// Record holds the GPS derived map link of one image
type Record struct {
	filename   string
	zoom       int
	state      State
	coordinate gps.Coordinate
	url        string

	open   Opener
	reader exif.TagReader
}

// Option configures a Record
type Option func(*Record)

// WithOpener replaces os.Open as the way the image is opened
func WithOpener(open Opener) Option {
	return func(r *Record) {
		r.open = open
	}
}

// WithTagReader replaces the goexif tag reader
func WithTagReader(reader exif.TagReader) Option {
	return func(r *Record) {
		r.reader = reader
	}
}

// WithZoomLevel sets the initial zoom level, subject to SetZoomLevel rules
func WithZoomLevel(zoom int) Option {
	return func(r *Record) {
		r.SetZoomLevel(zoom)
	}
}

// WithZoomLevelText sets the initial zoom level from text, subject to
// SetZoomLevelText rules
func WithZoomLevelText(text string) Option {
	return func(r *Record) {
		r.SetZoomLevelText(text)
	}
}

// New creates an unprocessed record for filename
func New(filename string, opts ...Option) *Record {
	r := &Record{
		filename: filename,
		zoom:     DefaultZoomLevel,
		open:     openFile,
		reader:   exif.NewReader(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read is an alias of New kept for callers that think of it as opening an image
func Read(filename string, opts ...Option) *Record {
	return New(filename, opts...)
}

func openFile(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// IsSupportedImageFile reports whether name ends in jpg, jpeg or tiff, ignoring case.
// It is a plain suffix test with no dot boundary.
func IsSupportedImageFile(name string) bool {
	name = strings.ToLower(name)
	for _, suffix := range supportedSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// SetZoomLevel sets the zoom level. Values outside [MinZoomLevel, MaxZoomLevel]
// are ignored.
func (r *Record) SetZoomLevel(zoom int) {
	if zoom >= MinZoomLevel && zoom <= MaxZoomLevel {
		r.zoom = zoom
	}
}

// SetZoomLevelText parses text as a zoom level. Non-numeric or out of range
// input is ignored.
func (r *Record) SetZoomLevelText(text string) {
	zoom, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return
	}
	r.SetZoomLevel(zoom)
}

// ZoomLevel returns the current zoom level
func (r *Record) ZoomLevel() int {
	return r.zoom
}

// Filename returns the record's filename
func (r *Record) Filename() string {
	return r.filename
}

// State returns the processing state
func (r *Record) State() State {
	return r.state
}

// HasGPS reports whether the image carried a complete set of GPS tags
func (r *Record) HasGPS() bool {
	return r.state == HasGPS
}

// Coordinate returns the decimal coordinate when the record has GPS data
func (r *Record) Coordinate() (gps.Coordinate, bool) {
	if r.state != HasGPS {
		return gps.Coordinate{}, false
	}
	return r.coordinate, true
}

// ProcessExif reads the image's GPS tags and derives its coordinate.
// Unsupported file types, images without EXIF and incomplete tag sets leave
// the record in NoGPS with a nil error. Unreadable files and malformed tag
// values also leave it in NoGPS but return the cause.
func (r *Record) ProcessExif() error {
	r.state = NoGPS
	r.coordinate = gps.Coordinate{}
	r.url = ""

	if !IsSupportedImageFile(r.filename) {
		logger.Debug("Skipping unsupported file type %s", r.filename)
		return nil
	}

	tags, err := r.readTags()
	if err != nil {
		return err
	}

	gpsTags := gps.FilterGPSTags(tags)
	if len(gpsTags) == 0 || !gps.IsCompleteTagSet(gpsTags) {
		return nil
	}

	coordinate, err := gps.ResolveSignedCoordinates(gpsTags)
	if err != nil {
		return fmt.Errorf("%s: %w", r.filename, err)
	}

	r.coordinate = coordinate
	r.state = HasGPS
	return nil
}

// readTags opens the image and reads its EXIF tags, releasing the handle on
// every path
func (r *Record) readTags() (map[string]string, error) {
	f, err := r.open(r.filename)
	if err != nil {
		return nil, common.NewFileError(r.filename, err)
	}
	defer f.Close()

	tags, err := r.reader.ReadTags(f)
	if err != nil {
		return nil, common.NewFileError(r.filename, err)
	}
	return tags, nil
}

// URL builds the map link from the cached coordinate and the current zoom
// level. It is empty until ProcessExif finds GPS data.
func (r *Record) URL() string {
	if r.state == HasGPS {
		r.url = gps.BuildMapsURL(r.coordinate, r.zoom)
		logger.Debug("url is %s", r.url)
	}
	return r.url
}

func (r *Record) String() string {
	return fmt.Sprintf("Filename: %s\nUrl: %s\n", r.filename, r.URL())
}
