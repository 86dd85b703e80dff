package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/kaymed/picklepong/internal/app"
	"github.com/kaymed/picklepong/internal/core"
	"github.com/kaymed/picklepong/internal/pong"
)

type runResult struct {
	seed   int64
	report pong.Report
}

func main() {
	runs := flag.Int("runs", 16, "number of seeds to simulate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	ticks := flag.Int("ticks", 20000, "ticks to simulate per seed")
	seed := flag.Int64("seed", 1, "first seed; run i uses seed+i")
	change := flag.Float64("mash", 0.05, "chance per tick that a scripted key flips")
	var overrides app.KVList
	flag.Var(&overrides, "set", "match parameter override in key=value form (repeatable)")
	flag.Parse()

	if *workers <= 0 {
		*workers = 1
	}
	params := overrides.Map()

	fmt.Printf("Simulating %d seeds (%d workers, %d ticks)\n", *runs, *workers, *ticks)

	jobs := make(chan int64)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- runSeed(params, s, *ticks, *change)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *runs; i++ {
			jobs <- *seed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []runResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })

	failed := 0
	for _, res := range all {
		r := res.report
		fmt.Printf("seed=%d ticks=%d score=%d-%d serves=%d hits=%d walls=%d points=%d peakParticles=%d violations=%d\n",
			res.seed, r.Ticks, r.LeftScore, r.RightScore,
			r.Events[pong.EventServe], r.Events[pong.EventPaddleHit], r.Events[pong.EventWallBounce], r.Events[pong.EventScore],
			r.PeakParticle, len(r.Violations))
		for i, v := range r.Violations {
			if i == 5 {
				fmt.Printf("  ... %d more\n", len(r.Violations)-i)
				break
			}
			fmt.Printf("  %s\n", v)
		}
		if len(r.Violations) > 0 {
			failed++
		}
	}

	fmt.Printf("\n%d/%d seeds clean (elapsed %s)\n", len(all)-failed, len(all), time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}

func runSeed(params map[string]string, seed int64, ticks int, change float64) runResult {
	cfg := pong.FromMap(params)
	cfg.Seed = seed
	engine := pong.NewEngine(cfg)
	h := pong.Harness{
		Engine: engine,
		Script: pong.MashKeys(core.NewRNG(seed^0x5eed), engine.Bindings(), change),
	}
	return runResult{seed: seed, report: h.Run(ticks)}
}
