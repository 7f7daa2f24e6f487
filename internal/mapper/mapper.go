package mapper

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/codemap-dev/codemap/internal/model"
)

// ReadFileFunc loads the raw bytes of one candidate file. Reading is the
// caller's responsibility; the mapper only sees paths and bytes.
type ReadFileFunc func(path string) ([]byte, error)

// ProgressReporter receives mapping progress. Implementations must tolerate
// calls from the fold goroutine.
type ProgressReporter interface {
	OnFileProcessingStart(totalFiles int)
	OnFileProcessed(path string)
}

// NoOpProgressReporter ignores all progress events.
type NoOpProgressReporter struct{}

func (NoOpProgressReporter) OnFileProcessingStart(int) {}
func (NoOpProgressReporter) OnFileProcessed(string)    {}

// Options tune one mapping run.
type Options struct {
	// Concurrency bounds the number of files analyzed at once; 0 means
	// GOMAXPROCS. The bound keeps memory flat: at most this many parsed
	// trees exist simultaneously.
	Concurrency int
}

// Mapper coordinates concurrent per-file analysis and sequential folding.
type Mapper struct {
	analyzer *Analyzer
	progress ProgressReporter
	opts     Options
}

// NewMapper creates a mapper. A nil progress reporter is replaced with a
// no-op one.
func NewMapper(analyzer *Analyzer, progress ProgressReporter, opts Options) *Mapper {
	if progress == nil {
		progress = NoOpProgressReporter{}
	}
	return &Mapper{analyzer: analyzer, progress: progress, opts: opts}
}

// Run analyzes the given paths and folds the results into one report.
// Per-file analyses are independent and run on a bounded worker pool; the
// fold is the single synchronization point, drained by one consumer so
// totals are never lost to races.
//
// Cancellation stops dispatching new files; in-flight analyses finish and
// the partial report is still valid and formattable. A deadline is a
// completeness degradation, not a failure, so Run never returns an error
// for it.
func (m *Mapper) Run(ctx context.Context, root string, paths []string, read ReadFileFunc) *Report {
	report := NewReport(root)
	if len(paths) == 0 {
		return report
	}

	workers := m.opts.Concurrency
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	m.progress.OnFileProcessingStart(len(paths))

	jobs := make(chan string)
	results := make(chan model.SourceFile, workers)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for path := range jobs {
				source, err := read(path)
				if err != nil {
					results <- m.analyzer.Unreadable(path, err)
					continue
				}
				results <- m.analyzer.Analyze(path, source)
			}
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for file := range results {
			report.Fold(file)
			m.progress.OnFileProcessed(file.Path)
		}
	}()

dispatch:
	for _, path := range paths {
		select {
		case jobs <- path:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)

	_ = g.Wait()
	close(results)
	<-done

	return report
}
