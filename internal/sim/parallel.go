package sim

import (
	"context"
	"fmt"
	"sync"
)

// Ensemble runs one variant across consecutive seeds, one goroutine and one
// field per run.
type Ensemble struct {
	base       *Runner
	numRuns    int
	seedStart  int64
	newMetrics func() []Metric
}

// NewEnsemble copies the variant and pointer path of r. Metrics are stateful,
// so every run gets a fresh set from newMetrics.
func NewEnsemble(r *Runner, numRuns int, seedStart int64, newMetrics func() []Metric) *Ensemble {
	return &Ensemble{base: r, numRuns: numRuns, seedStart: seedStart, newMetrics: newMetrics}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	if e.numRuns < 1 {
		return nil, fmt.Errorf("runs must be positive, got %d", e.numRuns)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)

			r := New(e.base.variant)
			r.SetPath(e.base.path)
			if e.newMetrics != nil {
				for _, m := range e.newMetrics() {
					r.AddMetric(m)
				}
			}

			results[idx], errs[idx] = r.Run(ctx, cfgCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
