package control

import (
	"fmt"
	"log"
	"strconv"

	"cellular/internal/core"
	"cellular/internal/sims/elementary"
)

// Saver persists a finished image under its Wolfram code.
type Saver interface {
	Save(code uint8, img *core.Canvas) error
}

// State is the mutable control state shared by the bindings and the loop.
type State struct {
	Paused     bool
	SingleStep bool

	Save       bool
	UpdateRule bool
	Quit       bool

	Gen     int
	Code    uint8
	NewCode uint8
	Init    elementary.Strategy
}

// Options configures a Controller.
type Options struct {
	Init elementary.Strategy

	// Batch sweeps every code from the starting one up to 255, saving each
	// image once the canvas is full.
	Batch bool

	// Logf reports rule changes and saves. Defaults to log.Printf.
	Logf func(format string, args ...any)
}

// Controller owns the automaton, the image it is drawn into and the control
// state. It is driven by a single loop calling Trigger and Frame.
type Controller struct {
	engine   *elementary.Elementary
	canvas   *core.Canvas
	saver    Saver
	bindings map[string]Binding
	ordered  []Binding
	state    State
	batch    bool
	done     bool
	logf     func(format string, args ...any)
}

// New wires a controller around engine. The canvas matches the engine's size.
// saver may be nil, in which case save requests are dropped. An engine that
// holds no generation is seeded with opts.Init.
func New(engine *elementary.Elementary, saver Saver, bindings []Binding, opts Options) (*Controller, error) {
	strategy := elementary.StrategyRandom
	if opts.Init != "" {
		s, err := elementary.ParseStrategy(string(opts.Init))
		if err != nil {
			return nil, err
		}
		strategy = s
	}

	size := engine.Size()
	c := &Controller{
		engine:   engine,
		canvas:   core.NewCanvas(size.W, size.H),
		saver:    saver,
		bindings: make(map[string]Binding, len(bindings)),
		ordered:  bindings,
		batch:    opts.Batch,
		logf:     opts.Logf,
	}
	if c.logf == nil {
		c.logf = log.Printf
	}
	for _, b := range bindings {
		c.bindings[b.Trigger] = b
	}
	code := engine.Rules().Code()
	c.state.Code, c.state.NewCode = code, code
	c.state.Init = strategy
	if !engine.Ready() {
		c.restart()
	}
	return c, nil
}

// Bindings returns the key map in display order.
func (c *Controller) Bindings() []Binding { return c.ordered }

// State returns a copy of the control state.
func (c *Controller) State() State { return c.state }

// Canvas exposes the image the generations are drawn into.
func (c *Controller) Canvas() *core.Canvas { return c.canvas }

// Done reports whether a batch sweep has finished.
func (c *Controller) Done() bool { return c.done }

// Trigger runs the command bound to name and reports whether one exists.
func (c *Controller) Trigger(name string) bool {
	b, ok := c.bindings[name]
	if !ok {
		return false
	}
	b.Command(c)
	return true
}

// SetRule schedules a switch to code at the start of the next frame.
func (c *Controller) SetRule(code uint8) {
	c.state.NewCode = code
	c.state.UpdateRule = true
}

// Frame applies pending requests and then runs up to ticks simulation ticks.
func (c *Controller) Frame(ticks int) error {
	if c.done {
		return nil
	}
	if c.state.Save {
		c.state.Save = false
		if err := c.save(); err != nil {
			return err
		}
	}
	if c.state.Quit {
		c.done = true
		return nil
	}
	if c.state.UpdateRule {
		c.applyRule()
	}
	for i := 0; i < ticks; i++ {
		if err := c.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Tick advances the automaton by one generation and draws the generation it
// replaced into the next canvas row. Once the canvas is full the controller
// pauses; in batch mode it also queues the save and the next code.
func (c *Controller) Tick() error {
	s := &c.state
	if s.Gen >= c.canvas.H {
		s.Paused = true
		if c.batch && !s.Save && !s.UpdateRule && !s.Quit {
			s.Save = true
			if s.Code == 255 {
				s.Quit = true
			} else {
				c.SetRule(s.Code + 1)
			}
		}
	}
	if s.Paused {
		return nil
	}
	if s.SingleStep {
		s.Paused = true
		s.SingleStep = false
	}

	gen := c.engine.Get()
	if err := c.engine.Next(); err != nil {
		return err
	}
	c.canvas.SetRow(s.Gen, elementary.CellsToColour(gen))
	s.Gen++
	return nil
}

func (c *Controller) restart() {
	c.engine.Reset()
	if err := c.engine.Init(c.state.Init); err != nil {
		// Only registered strategies reach the state.
		panic(err)
	}
	c.canvas.Clear()
	c.state.Gen = 0
	c.state.Paused = false
}

func (c *Controller) applyRule() {
	s := &c.state
	s.UpdateRule = false
	s.Code = s.NewCode
	c.logf("wolfram code: %d", s.Code)

	c.engine.SetRules(elementary.Wolfram(s.Code))
	c.restart()
}

func (c *Controller) save() error {
	if c.saver == nil {
		return nil
	}
	if err := c.saver.Save(c.state.Code, c.canvas); err != nil {
		return fmt.Errorf("save rule %d: %w", c.state.Code, err)
	}
	c.logf("saved rule %d", c.state.Code)
	return nil
}

// Parameters merges the engine description with the control state.
func (c *Controller) Parameters() core.ParameterSnapshot {
	snap := c.engine.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Control",
		Params: []core.Parameter{
			{Key: "row", Label: "Row", Type: core.ParamTypeInt, Value: strconv.Itoa(c.state.Gen)},
			{Key: "init", Label: "Init", Type: core.ParamTypeString, Value: string(c.state.Init)},
			{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.state.Paused)},
			{Key: "batch", Label: "Batch", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.batch)},
		},
	})
	return snap
}
