package sweep

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"cellular/internal/sims/elementary"
)

func TestRunStrictlySequential(t *testing.T) {
	opts := Options{Width: 5, Height: 3, Init: elementary.StrategySingleHigh, Seed: 1}
	h, err := Run(opts, 110)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]elementary.State{{0, 0, 1, 0, 0}, {0, 1, 1, 0, 0}, {1, 1, 1, 0, 0}}
	if len(h) != len(want) {
		t.Fatalf("rows = %d, want %d", len(h), len(want))
	}
	for i, gen := range h {
		if !slices.Equal(gen.States(), want[i]) {
			t.Fatalf("row %d = %v, want %v", i, gen.States(), want[i])
		}
	}
}

func TestRunStopsOnFixedPoint(t *testing.T) {
	// Rule 4 keeps an isolated cell and nothing else, so the first row repeats.
	opts := Options{Width: 7, Height: 10, Init: elementary.StrategySingleHigh, Seed: 1, StopOnFixedPoint: true}
	h, err := Run(opts, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(h) != 1 {
		t.Fatalf("rows = %d, want 1", len(h))
	}
}

func TestRunRejectsUnknownInit(t *testing.T) {
	if _, err := Run(Options{Width: 4, Height: 4, Init: "zigzag"}, 30); !errors.Is(err, elementary.ErrUnknownStrategy) {
		t.Fatalf("Run = %v", err)
	}
}

func TestSweepOrderAndPadding(t *testing.T) {
	opts := Options{Width: 7, Height: 4, Init: elementary.StrategySingleHigh, Seed: 1, StopOnFixedPoint: true}
	var mu sync.Mutex
	saved := map[uint8]int{}
	results := Sweep(opts, Codes(0, 9), 3, func(code uint8, rgb []byte) error {
		mu.Lock()
		defer mu.Unlock()
		saved[code] = len(rgb)
		return nil
	})

	if len(results) != 10 || len(saved) != 10 {
		t.Fatalf("results %d saved %d, want 10", len(results), len(saved))
	}
	for i, r := range results {
		if r.Code != uint8(i) {
			t.Fatalf("result %d has code %d", i, r.Code)
		}
		if r.Err != nil {
			t.Fatalf("code %d: %v", r.Code, r.Err)
		}
		if len(r.Image) != 3*7*4 || saved[r.Code] != 3*7*4 {
			t.Fatalf("code %d image %d bytes", r.Code, len(r.Image))
		}
	}

	// Code 4 stops after one row, so rows 1..3 are padded black.
	r := results[4]
	if !r.Fixed || r.Rows != 1 || r.Live != 1 {
		t.Fatalf("code 4 result %+v", r)
	}
	if !slices.Equal(r.Image[3*7:], make([]byte, 3*7*3)) {
		t.Fatal("missing rows are not black")
	}
}

func TestSweepReportsSaveErrors(t *testing.T) {
	boom := errors.New("read-only")
	results := Sweep(Options{Width: 3, Height: 2, Init: elementary.StrategyAlternate}, []uint8{30}, 1,
		func(uint8, []byte) error { return boom })
	if !errors.Is(results[0].Err, boom) {
		t.Fatalf("Err = %v", results[0].Err)
	}
}

func TestCodes(t *testing.T) {
	if got := Codes(253, 255); !slices.Equal(got, []uint8{253, 254, 255}) {
		t.Fatalf("Codes(253,255) = %v", got)
	}
	if got := Codes(2, 0); !slices.Equal(got, []uint8{2, 1, 0}) {
		t.Fatalf("Codes(2,0) = %v", got)
	}
	if got := Codes(0, 255); len(got) != 256 {
		t.Fatalf("len(Codes(0,255)) = %d", len(got))
	}
}
