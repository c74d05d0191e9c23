// Package sweep measures collectible placement over many generated island
// fields.
package sweep

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"cat-yarn/internal/core"
	"cat-yarn/internal/world"
	"cat-yarn/internal/yarn"
)

// Result summarizes one seed.
type Result struct {
	Seed       int64
	Islands    int
	Occluded   int
	Draws      int
	Fallbacks  int
	MeanHeight float64
}

// OccludedRatio is the share of islands some other island overhangs.
func (r Result) OccludedRatio() float64 {
	if r.Islands == 0 {
		return 0
	}
	return float64(r.Occluded) / float64(r.Islands)
}

// FallbackRate is the share of placements that fell back to the highest
// island.
func (r Result) FallbackRate() float64 {
	if r.Draws == 0 {
		return 0
	}
	return float64(r.Fallbacks) / float64(r.Draws)
}

// Report aggregates every seed of a sweep. Results are ordered by seed.
type Report struct {
	Results    []Result
	Draws      int
	Fallbacks  int
	MeanHeight float64
	Worst      Result
}

// RunSeed generates the field for seed and performs draws placements on it.
func RunSeed(wp world.Params, yp yarn.Params, seed int64, draws int) (Result, error) {
	rng := core.NewRNG(seed)
	islands, err := world.Generate(wp, rng)
	if err != nil {
		return Result{}, fmt.Errorf("sweep: seed %d: %w", seed, err)
	}
	res := Result{Seed: seed, Islands: islands.Len(), Draws: draws}
	for i := 0; i < islands.Len(); i++ {
		if islands.Occluded(i, yp.Epsilon) {
			res.Occluded++
		}
	}
	total := 0.0
	for i := 0; i < draws; i++ {
		pl := yarn.Choose(islands, yp, rng)
		if pl.Fallback {
			res.Fallbacks++
		}
		total += pl.Position.Y()
	}
	if draws > 0 {
		res.MeanHeight = total / float64(draws)
	}
	return res, nil
}

// Run sweeps seeds across workers goroutines.
func Run(wp world.Params, yp yarn.Params, seeds []int64, draws, workers int) (Report, error) {
	if err := wp.Validate(); err != nil {
		return Report{}, err
	}
	if workers <= 0 {
		workers = 1
	}

	type outcome struct {
		res Result
		err error
	}
	jobs := make(chan int64)
	results := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				res, err := RunSeed(wp, yp, seed, draws)
				results <- outcome{res: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	var rep Report
	var errs []error
	for out := range results {
		if out.err != nil {
			errs = append(errs, out.err)
			continue
		}
		rep.Results = append(rep.Results, out.res)
	}
	if len(errs) > 0 {
		return Report{}, errors.Join(errs...)
	}

	slices.SortFunc(rep.Results, func(a, b Result) int {
		switch {
		case a.Seed < b.Seed:
			return -1
		case a.Seed > b.Seed:
			return 1
		}
		return 0
	})
	heights := 0.0
	for i, res := range rep.Results {
		rep.Draws += res.Draws
		rep.Fallbacks += res.Fallbacks
		heights += res.MeanHeight * float64(res.Draws)
		if i == 0 || worse(res, rep.Worst) {
			rep.Worst = res
		}
	}
	if rep.Draws > 0 {
		rep.MeanHeight = heights / float64(rep.Draws)
	}
	return rep, nil
}

// worse ranks by fallback rate, then by occlusion. Earlier seeds win ties.
func worse(a, b Result) bool {
	if a.FallbackRate() != b.FallbackRate() {
		return a.FallbackRate() > b.FallbackRate()
	}
	return a.OccludedRatio() > b.OccludedRatio()
}

// Seeds returns n consecutive seeds starting at first.
func Seeds(first int64, n int) []int64 {
	seeds := make([]int64, 0, max(n, 0))
	for i := 0; i < n; i++ {
		seeds = append(seeds, first+int64(i))
	}
	return seeds
}
