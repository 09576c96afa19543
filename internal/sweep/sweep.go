// Package sweep renders many Wolfram codes in one go. Each code gets its own
// engine; generations within a run are computed strictly in order.
package sweep

import (
	"slices"
	"sync"

	"cellular/internal/sims/elementary"
)

// Options configures every run in a sweep.
type Options struct {
	Width      int
	Height     int
	Init       elementary.Strategy
	Seed       int64
	NoiseScale float64

	// StopOnFixedPoint ends a run as soon as a generation equals the one
	// before it. The remaining image rows stay black.
	StopOnFixedPoint bool
}

// Result summarises one run.
type Result struct {
	Code  uint8
	Rows  int
	Fixed bool
	Live  int
	Image []byte
	Err   error
}

// Run simulates code for up to opts.Height generations and returns them
// oldest first.
func Run(opts Options, code uint8) (elementary.History, error) {
	e, err := elementary.NewWithConfig(elementary.Config{
		Width:      opts.Width,
		Height:     opts.Height,
		Rule:       code,
		Seed:       opts.Seed,
		Init:       opts.Init,
		NoiseScale: opts.NoiseScale,
	})
	if err != nil {
		return nil, err
	}
	h := make(elementary.History, 0, opts.Height)
	for len(h) < opts.Height {
		gen := e.Get()
		if opts.StopOnFixedPoint && len(h) > 0 && slices.Equal(h[len(h)-1], gen) {
			break
		}
		h = append(h, gen)
		if err := e.Next(); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Sweep runs every code on up to workers goroutines and hands each image to
// save, which must be safe for concurrent use. Results come back in code
// order.
func Sweep(opts Options, codes []uint8, workers int, save func(code uint8, rgb []byte) error) []Result {
	if workers <= 0 {
		workers = 1
	}
	results := make([]Result, len(codes))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, code := range codes {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, c uint8) {
			defer wg.Done()
			results[i] = runOne(opts, c, save)
			<-sem
		}(idx, code)
	}
	wg.Wait()
	return results
}

func runOne(opts Options, code uint8, save func(uint8, []byte) error) Result {
	res := Result{Code: code}
	h, err := Run(opts, code)
	if err != nil {
		res.Err = err
		return res
	}
	res.Rows = len(h)
	res.Fixed = len(h) < opts.Height
	if len(h) > 0 {
		for _, c := range h[len(h)-1] {
			res.Live += int(c.State)
		}
	}
	res.Image = elementary.HistoryToColour(h, opts.Width, opts.Height)
	if save != nil {
		res.Err = save(code, res.Image)
	}
	return res
}

// Codes returns the inclusive range from..to, or to..from when reversed.
func Codes(from, to uint8) []uint8 {
	var out []uint8
	if from <= to {
		for c := int(from); c <= int(to); c++ {
			out = append(out, uint8(c))
		}
		return out
	}
	for c := int(from); c >= int(to); c-- {
		out = append(out, uint8(c))
	}
	return out
}
