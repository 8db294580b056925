// internal/progress/reporter.go
package progress

import (
	"sync"
	"time"

	"github.com/bstardust/imagegps/internal/logger"
)

// Stats is a snapshot of scan progress
type Stats struct {
	Total   int
	Found   int
	Skipped int
	Errors  int
}

// Processed returns how many files have been handled so far
func (s Stats) Processed() int {
	return s.Found + s.Skipped + s.Errors
}

// Reporter tracks and reports scan progress
type Reporter struct {
	mu             sync.Mutex
	stats          Stats
	startTime      time.Time
	lastUpdateTime time.Time
	updateInterval time.Duration
}

// New creates a new progress reporter
func New() *Reporter {
	return &Reporter{
		updateInterval: 2 * time.Second,
	}
}

// Start initializes the progress reporter with the total number of files
func (r *Reporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats = Stats{Total: total}
	r.startTime = time.Now()
	r.lastUpdateTime = time.Now()

	logger.Info("Scanning %d files", total)
}

// Found marks a file as carrying GPS data
func (r *Reporter) Found(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Found++
	r.updateProgress()
}

// Skip marks a file as having no usable GPS data
func (r *Reporter) Skip(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Skipped++
	r.updateProgress()
}

// Error marks a file as failed
func (r *Reporter) Error(path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Errors++
	r.updateProgress()
}

// Stats returns the current counters
func (r *Reporter) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.stats
}

// Finish logs the scan summary
func (r *Reporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()

	duration := time.Since(r.startTime)

	logger.Info("Scan complete: %d/%d files with GPS data, %d without, %d errors in %s",
		r.stats.Found, r.stats.Total, r.stats.Skipped, r.stats.Errors, duration.Round(time.Millisecond))
}

// updateProgress logs progress at most once per update interval
func (r *Reporter) updateProgress() {
	now := time.Now()
	if now.Sub(r.lastUpdateTime) < r.updateInterval {
		return
	}

	r.lastUpdateTime = now
	processed := r.stats.Processed()
	if processed == 0 || r.stats.Total == 0 {
		return
	}

	percentage := float64(processed) / float64(r.stats.Total) * 100

	logger.Info("Progress: %.1f%% (%d/%d, %d with GPS, %d without, %d errors)",
		percentage, processed, r.stats.Total, r.stats.Found, r.stats.Skipped, r.stats.Errors)
}
