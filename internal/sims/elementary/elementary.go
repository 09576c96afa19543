package elementary

import (
	"errors"
	"fmt"
	"strconv"

	"cellular/internal/core"
)

// ErrNotInitialized is returned when stepping an engine that holds no generation.
var ErrNotInitialized = errors.New("elementary: generation not initialized")

// Generation is one row of cells.
type Generation []Cell

// States returns the bare state of every cell.
func (g Generation) States() []State {
	out := make([]State, len(g))
	for i, c := range g {
		out[i] = c.State
	}
	return out
}

// History is an ordered run of generations, oldest first.
type History []Generation

// Elementary implements a one-dimensional Wolfram code with an open boundary:
// the cells past either edge are permanently Off.
type Elementary struct {
	w, h  int
	rules RuleTable
	cur   Generation
	nxt   Generation
	steps int

	rng        *core.RNG
	noiseScale float64
}

// New creates an automaton with the given dimensions and rule table. The seed
// drives the random and noise initializers; zero seeds from the clock. The
// engine starts uninitialized.
func New(w, h int, rules RuleTable, seed int64) *Elementary {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Elementary{
		w:          w,
		h:          h,
		rules:      rules,
		rng:        core.NewRNG(seed),
		noiseScale: DefaultConfig().NoiseScale,
	}
}

// NewWithConfig creates an automaton from cfg and seeds it with cfg.Init.
func NewWithConfig(cfg Config) (*Elementary, error) {
	e := New(cfg.Width, cfg.Height, Wolfram(cfg.Rule), cfg.Seed)
	if cfg.NoiseScale > 0 {
		e.noiseScale = cfg.NoiseScale
	}
	if err := e.Init(cfg.Init); err != nil {
		return nil, err
	}
	return e, nil
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the field dimensions. Height is the number of generations a
// consumer is expected to draw; the engine itself never uses it.
func (e *Elementary) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Ready reports whether a generation is loaded.
func (e *Elementary) Ready() bool { return len(e.cur) != 0 }

// Steps returns how many generations have been computed since the last init.
func (e *Elementary) Steps() int { return e.steps }

// Rules returns the active rule table.
func (e *Elementary) Rules() RuleTable { return e.rules }

// SetRules swaps the rule table. The current generation is left untouched.
func (e *Elementary) SetRules(r RuleTable) { e.rules = r }

// Reset drops the current generation.
func (e *Elementary) Reset() {
	e.cur = nil
	e.nxt = nil
	e.steps = 0
}

// Init runs the initializer registered for s.
func (e *Elementary) Init(s Strategy) error {
	fn, ok := initializers[s]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	fn(e)
	return nil
}

// InitSingleLow sets every cell On except the middle one.
func (e *Elementary) InitSingleLow() {
	mid := e.w / 2
	e.fill(func(i int) State {
		if i == mid {
			return Off
		}
		return On
	})
}

// InitSingleHigh sets only the middle cell On.
func (e *Elementary) InitSingleHigh() {
	mid := e.w / 2
	e.fill(func(i int) State {
		if i == mid {
			return On
		}
		return Off
	})
}

// InitAlternate gives cell i the state i mod 2.
func (e *Elementary) InitAlternate() {
	e.fill(func(i int) State { return State(i % 2) })
}

// InitRandom draws every cell independently from the engine's RNG.
func (e *Elementary) InitRandom() {
	e.fill(func(int) State { return State(e.rng.Bit()) })
}

func (e *Elementary) fill(state func(i int) State) {
	e.Reset()
	e.cur = make(Generation, e.w)
	e.nxt = make(Generation, e.w)
	for i := range e.cur {
		e.cur[i] = CellFor(state(i))
	}
}

// Get returns a copy of the current generation.
func (e *Elementary) Get() Generation {
	if e.cur == nil {
		return nil
	}
	return append(Generation(nil), e.cur...)
}

// Next advances the automaton by one generation.
func (e *Elementary) Next() error {
	if !e.Ready() {
		return ErrNotInitialized
	}
	last := len(e.cur) - 1
	for i := range e.cur {
		left, right := Off, Off
		if i > 0 {
			left = e.cur[i-1].State
		}
		if i < last {
			right = e.cur[i+1].State
		}
		e.nxt[i] = e.rules.Lookup(left, e.cur[i].State, right)
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.steps++
	return nil
}

// Parameters describes the engine for display.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Automaton",
		Params: []core.Parameter{
			{Key: "rule", Label: "Wolfram code", Type: core.ParamTypeInt, Value: strconv.Itoa(int(e.rules.Code()))},
			{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(e.w)},
			{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(e.h)},
			{Key: "steps", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(e.steps)},
		},
		Summary: e.rules.String(),
	}}}
}
