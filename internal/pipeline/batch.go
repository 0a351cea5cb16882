package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of simultaneous batch conversions.
const DefaultConcurrency = 4

// BatchJob is one input of a batch conversion. Every job needs its own OutputPath.
type BatchJob struct {
	Name       string
	HTML       string
	OutputPath string
}

// BatchResult pairs a job with its outcome.
type BatchResult struct {
	Job    BatchJob
	Result *Result
	Err    error
}

// ConvertBatch converts jobs concurrently, at most concurrency at a time.
// A failing job does not stop the others; its error is kept in its result.
// The returned error is set only for invalid batches or a cancelled context.
func ConvertBatch(ctx context.Context, jobs []BatchJob, concurrency int, opts *Options) ([]BatchResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	seen := make(map[string]string, len(jobs))
	for _, job := range jobs {
		key := filepath.Clean(job.OutputPath)
		if other, dup := seen[key]; dup {
			return nil, fmt.Errorf("jobs %q and %q share output path %s", other, job.Name, job.OutputPath)
		}
		seen[key] = job.Name
	}

	results := make([]BatchResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, job := range jobs {
		results[i].Job = job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			results[i].Result, results[i].Err = ConvertToFile(gctx, job.HTML, job.OutputPath, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
