// Command pathgrid-sweep compares the search strategies over many generated
// mazes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"pathgrid/internal/app"
	"pathgrid/internal/core"
	"pathgrid/internal/search"
)

type job struct {
	seed int64
	alg  search.Algorithm
}

type summary struct {
	alg     search.Algorithm
	runs    int
	found   int
	visited int
	steps   int
	failed  int
	elapsed time.Duration
}

func (s summary) meanVisited() float64 {
	if s.runs == 0 {
		return 0
	}
	return float64(s.visited) / float64(s.runs)
}

func main() {
	rows := flag.Int("rows", 41, "grid rows")
	cols := flag.Int("cols", 61, "grid columns")
	seeds := flag.Int("seeds", 100, "mazes to generate")
	first := flag.Int64("seed", 1, "first maze seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	// Per-run logs would swamp the summary.
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	size := core.Size{Rows: *rows, Cols: *cols}
	algs := search.Algorithms()
	fmt.Printf("Sweeping %d mazes x %d algorithms on %dx%d (%d workers)\n", *seeds, len(algs), size.Rows, size.Cols, *workers)

	jobs := make(chan job)
	results := make(chan app.ScenarioResult)
	errs := make(chan error, *workers)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				_, res, err := app.RunScenario(ctx, app.Scenario{Size: size, Seed: j.seed, Algorithm: j.alg}, quiet)
				if err != nil {
					select {
					case errs <- err:
					default:
					}
					res.Found = false
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for s := int64(0); s < int64(*seeds); s++ {
			for _, alg := range algs {
				select {
				case jobs <- job{seed: *first + s, alg: alg}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	start := time.Now()
	totals := map[search.Algorithm]*summary{}
	for _, alg := range algs {
		totals[alg] = &summary{alg: alg}
	}
	for res := range results {
		s := totals[res.Algorithm]
		s.runs++
		s.visited += res.Visited
		s.elapsed += res.Elapsed
		if res.Found {
			s.found++
			s.steps += res.Steps
		} else {
			s.failed++
		}
	}
	close(errs)
	for err := range errs {
		fmt.Fprintf(os.Stderr, "scenario error: %v\n", err)
	}

	all := make([]summary, 0, len(totals))
	for _, s := range totals {
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].meanVisited() < all[j].meanVisited() })

	fmt.Printf("\nResults (elapsed %s), fewest cells visited first:\n", time.Since(start).Round(time.Millisecond))
	for i, s := range all {
		meanSteps := 0.0
		if s.found > 0 {
			meanSteps = float64(s.steps) / float64(s.found)
		}
		fmt.Printf("%d) %-8s runs=%d found=%d failed=%d visited=%.1f path=%.1f search=%s\n",
			i+1, s.alg, s.runs, s.found, s.failed, s.meanVisited(), meanSteps, s.elapsed.Round(time.Millisecond))
	}
}
