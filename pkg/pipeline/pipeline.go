// Package pipeline cleans raw draw exports into tidy CSV outputs, fanning
// per-file work across a worker pool.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/japaniel/powerball/pkg/dictionary"
	"github.com/japaniel/powerball/pkg/draws"
)

// Output file names written for every cleaned raw file.
const (
	WideFileName = "powerball_clean_wide.csv"
	LongFileName = "powerball_clean_long.csv"
	DictFileName = "data_dictionary.csv"
)

// WorkerPoolInterface abstracts the worker pool so tests can inject failing implementations.
type WorkerPoolInterface interface {
	Start(ctx context.Context)
	Submit(Job) error
	// SubmitCtx attempts to enqueue a job but returns promptly if ctx is canceled.
	SubmitCtx(ctx context.Context, job Job) error
	Close()
}

// CleanResult reports the outputs of cleaning one raw file.
type CleanResult struct {
	WidePath string
	LongPath string
	DictPath string
	WideRows int
	LongRows int
}

// Clean reads one raw export, builds the wide and long tables and writes
// them plus the data dictionary into outDir.
func Clean(inPath, outDir string) (CleanResult, error) {
	raws, err := draws.ReadFile(inPath)
	if err != nil {
		return CleanResult{}, err
	}
	wide := draws.BuildWide(raws)
	long := draws.BuildLong(wide)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return CleanResult{}, err
	}

	res := CleanResult{
		WidePath: filepath.Join(outDir, WideFileName),
		LongPath: filepath.Join(outDir, LongFileName),
		DictPath: filepath.Join(outDir, DictFileName),
		WideRows: len(wide),
		LongRows: len(long),
	}
	if err := draws.WriteWideCSV(res.WidePath, wide); err != nil {
		return CleanResult{}, err
	}
	if err := draws.WriteLongCSV(res.LongPath, long); err != nil {
		return CleanResult{}, err
	}
	if err := dictionary.WriteCSV(res.DictPath); err != nil {
		return CleanResult{}, err
	}
	return res, nil
}

// FileResult pairs one raw input with its clean outputs or failure.
type FileResult struct {
	Input  string
	OutDir string
	Result CleanResult
	Err    error
}

// Runner cleans every raw file in a directory using concurrent workers.
type Runner struct {
	Workers int
	Logger  *zap.Logger

	// PoolFactory allows tests to inject custom worker pool implementations.
	PoolFactory func(workers, queue int) WorkerPoolInterface
}

// NewRunner creates a Runner with default concurrency.
func NewRunner() *Runner {
	return &Runner{
		Workers: 4,
		Logger:  zap.NewNop(),
	}
}

// Process cleans every raw file under rawDir, writing each file's outputs to
// procDir/<stem>/. Results come back in input order; the returned error is
// the first per-file failure, a submit failure, or context cancellation.
func (r *Runner) Process(ctx context.Context, rawDir, procDir string) ([]FileResult, error) {
	files, err := listRawFiles(rawDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no raw files found in %s", rawDir)
	}

	var wp WorkerPoolInterface
	if r.PoolFactory != nil {
		wp = r.PoolFactory(r.Workers, r.Workers*2)
	} else {
		wp = NewWorkerPool(r.Workers, r.Workers*2)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wp.Start(ctx)

	runID := uuid.NewString()
	r.Logger.Info("processing raw files",
		zap.String("run_id", runID),
		zap.Int("files", len(files)),
		zap.Int("workers", r.Workers))

	// Each job writes only its own slot; slots are read after wp.Close().
	results := make([]FileResult, len(files))

Loop:
	for i, file := range files {
		idx := i
		in := file
		job := func(context.Context) error {
			outDir := filepath.Join(procDir, stem(in))
			res, err := Clean(in, outDir)
			results[idx] = FileResult{Input: in, OutDir: outDir, Result: res, Err: err}
			if err != nil {
				r.Logger.Warn("clean failed",
					zap.String("run_id", runID),
					zap.String("input", in),
					zap.Error(err))
				return err
			}
			r.Logger.Info("cleaned raw file",
				zap.String("run_id", runID),
				zap.String("input", in),
				zap.Int("draws", res.WideRows))
			return nil
		}

		if err := wp.SubmitCtx(ctx, job); err != nil {
			if err == ctx.Err() || err == ErrPoolClosed {
				break Loop
			}
			wp.Close()
			return nil, err
		}
	}

	wp.Close()

	if err := ctx.Err(); err != nil {
		return results, err
	}

	var firstErr error
	for _, res := range results {
		if res.Err != nil {
			firstErr = fmt.Errorf("clean %s: %w", res.Input, res.Err)
			break
		}
	}
	return results, firstErr
}

// listRawFiles returns the csv and xlsx files in dir, sorted by name.
func listRawFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.csv", "*.xlsx"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// stem returns the file name without its extension, used as the per-file
// output directory name.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
