package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/tkruer/jfmt/internal/logging"
	"github.com/tkruer/jfmt/pkg/config"
	"github.com/tkruer/jfmt/pkg/langdetect"
	"github.com/tkruer/jfmt/pkg/lint"
)

// Runner orchestrates multi-file linting using a lint.Pipeline.
type Runner struct {
	// Pipeline handles per-file processing with safety guarantees.
	Pipeline *lint.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *lint.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under opts.Paths and processes them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Processes files concurrently using a worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	logging.FromContext(ctx).Debug("discovery complete",
		logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	pipelineOpts := lint.PipelineOptionsFromConfig(opts.Config)

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts, pipelineOpts)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; key outcomes by path and rebuild in
	// discovery order.
	outcomes := make(map[string]FileOutcome, len(files))

	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	opts Options,
	pipelineOpts lint.PipelineOptions,
) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processOne(ctx, path, cfg, opts, pipelineOpts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processOne runs detection and the pipeline for a single file.
func (r *Runner) processOne(
	ctx context.Context,
	path string,
	cfg *config.Config,
	opts Options,
	pipelineOpts lint.PipelineOptions,
) FileOutcome {
	outcome := FileOutcome{Path: path}

	if opts.DetectLanguage {
		isJava, err := langdetect.DetectFile(ctx, path)
		if err != nil {
			outcome.Error = fmt.Errorf("detect language: %w", err)
			return outcome
		}
		if !isJava {
			logging.FromContext(ctx).Debug("skipping non-Java file",
				logging.FieldPath, path)
			outcome.Result = &lint.PipelineResult{
				Path:       path,
				Skipped:    true,
				SkipReason: "content is not Java",
			}
			return outcome
		}
	}

	pr, err := r.Pipeline.ProcessFile(ctx, path, cfg, pipelineOpts)
	if err != nil {
		outcome.Error = err
	} else {
		outcome.Result = pr
	}
	return outcome
}
