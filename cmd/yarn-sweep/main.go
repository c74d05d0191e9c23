package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"cat-yarn/internal/config"
	"cat-yarn/internal/sweep"
)

func main() {
	seeds := flag.Int("seeds", 200, "number of consecutive seeds to sweep")
	seed := flag.Int64("seed", 1, "first seed")
	draws := flag.Int("draws", 50, "yarn placements per seed")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel seed evaluations")
	tuningPath := flag.String("tuning", config.DefaultFile, "tuning file; embedded defaults are used when it does not exist")
	verbose := flag.Bool("v", false, "print every seed")
	var overrides config.Overrides
	flag.Var(&overrides, "set", "tuning override in section.key=value form (repeatable)")
	flag.Parse()

	tuning, err := config.Load(*tuningPath)
	if err != nil {
		log.Fatalf("tuning: %v", err)
	}
	if err := tuning.ApplyOverrides(overrides); err != nil {
		log.Fatalf("tuning: %v", err)
	}

	wp, yp := tuning.WorldParams(), tuning.YarnParams()
	fmt.Printf("Sweeping %d seeds from %d (%d islands, %d draws, %d workers)\n", *seeds, *seed, wp.Count, *draws, *workers)

	start := time.Now()
	rep, err := sweep.Run(wp, yp, sweep.Seeds(*seed, *seeds), *draws, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	if *verbose {
		for _, r := range rep.Results {
			fmt.Printf("  seed %d: fallbacks %d/%d occluded %.2f mean height %.2f\n",
				r.Seed, r.Fallbacks, r.Draws, r.OccludedRatio(), r.MeanHeight)
		}
	}

	occluded, islands := 0, 0
	for _, r := range rep.Results {
		occluded += r.Occluded
		islands += r.Islands
	}
	ratio := 0.0
	if islands > 0 {
		ratio = float64(occluded) / float64(islands)
	}

	fmt.Printf("\nPlacements: %d, fallbacks: %d, occluded islands: %.2f%%, mean height %.2f (elapsed %s)\n",
		rep.Draws, rep.Fallbacks, 100*ratio, rep.MeanHeight, elapsed.Round(time.Millisecond))
	w := rep.Worst
	fmt.Printf("Worst seed: %d fallbacks %d/%d occluded %.2f\n", w.Seed, w.Fallbacks, w.Draws, w.OccludedRatio())
}
