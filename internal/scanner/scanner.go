// Package scanner finds the images with GPS data in a directory, archive or
// bucket.
package scanner

import (
	"context"
	"fmt"
	"io"

	"github.com/bstardust/imagegps/internal/exif"
	"github.com/bstardust/imagegps/internal/fshelper"
	"github.com/bstardust/imagegps/internal/imagegps"
	"github.com/bstardust/imagegps/internal/logger"
	"github.com/bstardust/imagegps/internal/progress"
	"github.com/bstardust/imagegps/internal/worker"
)

// Source is anything files can be listed and opened from
type Source interface {
	Name() string
	List(ctx context.Context) ([]string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Path(name string) string
}

// Options configures a Scanner. ZoomLevelText is applied after ZoomLevel;
// non-numeric or out of range text keeps the numeric level.
type Options struct {
	Concurrency   int
	ZoomLevel     int
	ZoomLevelText string
	TagReader     exif.TagReader
	Progress      *progress.Reporter
}

// Scanner processes every file of a source and keeps the ones with GPS data
type Scanner struct {
	source   Source
	pool     *worker.Pool
	zoom     int
	zoomText string
	reader   exif.TagReader
	progress *progress.Reporter
}

// New creates a new Scanner
func New(source Source, opts Options) *Scanner {
	if opts.ZoomLevel == 0 {
		opts.ZoomLevel = imagegps.DefaultZoomLevel
	}
	if opts.TagReader == nil {
		opts.TagReader = exif.NewReader()
	}
	if opts.Progress == nil {
		opts.Progress = progress.New()
	}

	return &Scanner{
		source:   source,
		pool:     worker.NewPool(opts.Concurrency),
		zoom:     opts.ZoomLevel,
		zoomText: opts.ZoomLevelText,
		reader:   opts.TagReader,
		progress: opts.Progress,
	}
}

// Search processes every file of the source and returns the records that
// produced a map URL, in listing order. Files that fail are logged and
// skipped.
func (s *Scanner) Search(ctx context.Context) ([]*imagegps.Record, error) {
	names, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.source.Name(), err)
	}

	s.progress.Start(len(names))
	defer s.progress.Finish()

	records := make([]*imagegps.Record, len(names))
	for i, name := range names {
		record := s.newRecord(ctx, name)
		records[i] = record

		if err := s.pool.Submit(ctx, func() { s.process(record) }); err != nil {
			s.pool.Wait()
			return nil, err
		}
	}

	s.pool.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	found := make([]*imagegps.Record, 0, len(records))
	for _, record := range records {
		if record.URL() != "" {
			found = append(found, record)
		}
	}
	return found, nil
}

func (s *Scanner) newRecord(ctx context.Context, name string) *imagegps.Record {
	return imagegps.New(s.source.Path(name),
		imagegps.WithZoomLevel(s.zoom),
		imagegps.WithZoomLevelText(s.zoomText),
		imagegps.WithTagReader(s.reader),
		imagegps.WithOpener(func(string) (io.ReadCloser, error) {
			return s.source.Open(ctx, name)
		}),
	)
}

func (s *Scanner) process(record *imagegps.Record) {
	if err := record.ProcessExif(); err != nil {
		logger.Warn("Failed to read GPS data from %s: %v", record.Filename(), err)
		s.progress.Error(record.Filename(), err)
		return
	}

	if record.HasGPS() {
		logger.Debug("Found GPS data in %s", record.Filename())
		s.progress.Found(record.Filename())
	} else {
		s.progress.Skip(record.Filename())
	}
}

// SearchDir scans a local directory or zip archive
func SearchDir(ctx context.Context, path string, opts Options) ([]*imagegps.Record, error) {
	source, err := fshelper.OpenSource(path)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	return New(source, opts).Search(ctx)
}
