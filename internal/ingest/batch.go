package ingest

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome of one request of a batch.
type BatchResult struct {
	Index  int     `json:"index"`
	Report *Report `json:"report"`
	Err    error   `json:"-"`
}

// IngestBatch ingests independent cases concurrently, at most Workers at a
// time. Results come back in request order. One case failing never stops the
// others; once ctx is done, requests that have not started are skipped with
// ctx's error.
func (o *Orchestrator) IngestBatch(ctx context.Context, reqs []Request) []BatchResult {
	results := make([]BatchResult, len(reqs))

	var g errgroup.Group
	g.SetLimit(o.cfg.Workers)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			results[i].Index = i
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Report, results[i].Err = o.Ingest(ctx, req)
			return nil
		})
	}

	_ = g.Wait()

	o.logger.Info("Batch ingestion finished", "requests", len(reqs), "failed", countFailed(results))
	return results
}

func countFailed(results []BatchResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
