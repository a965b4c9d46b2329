package sim

import (
	"context"
	"sync"

	"github.com/san-kum/atomscene/internal/scene"
)

// Ensemble runs the same configuration over consecutive seeds. Each run gets
// its own scene from build, so runs share nothing.
type Ensemble struct {
	build     func(seed int64) *scene.Scene
	metrics   func() []Metric
	numRuns   int
	seedStart int64
}

func NewEnsemble(build func(seed int64) *scene.Scene, metrics func() []Metric, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{build: build, metrics: metrics, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)

			s := New()
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx, e.build(cfgCopy.Seed), cfgCopy)
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
