package control

import "cellular/internal/sims/elementary"

// Command mutates the controller in response to an input event.
type Command func(c *Controller)

// Binding pairs a trigger name with the command it runs. Front-ends map their
// native key codes to Trigger.
type Binding struct {
	Trigger string
	Name    string
	Descr   string
	Command Command
}

// Trigger names shared by every front-end.
const (
	TriggerPause     = "space"
	TriggerStep      = "."
	TriggerSingle    = "1"
	TriggerAlternate = "'"
	TriggerRandom    = "r"
	TriggerNoise     = "n"
	TriggerSave      = "s"
	TriggerNextRule  = "]"
	TriggerPrevRule  = "["
)

// DefaultBindings returns the standard key map.
func DefaultBindings() []Binding {
	return []Binding{
		{TriggerPause, "SPACE", "Pause", (*Controller).TogglePause},
		{TriggerStep, ">", "Single step", (*Controller).SingleStep},
		{TriggerSingle, "1", "Reset single", restartWith(elementary.StrategySingleHigh)},
		{TriggerAlternate, "@", "Reset alternate", restartWith(elementary.StrategyAlternate)},
		{TriggerRandom, "R", "Reset random", restartWith(elementary.StrategyRandom)},
		{TriggerNoise, "N", "Reset noise", restartWith(elementary.StrategyNoise)},
		{TriggerSave, "S", "Save image", (*Controller).RequestSave},
		{TriggerNextRule, "]", "Next rule", (*Controller).NextRule},
		{TriggerPrevRule, "[", "Previous rule", (*Controller).PrevRule},
	}
}

// TogglePause flips the paused flag.
func (c *Controller) TogglePause() {
	c.state.Paused = !c.state.Paused
}

// SingleStep runs exactly one more generation and pauses again.
func (c *Controller) SingleStep() {
	c.state.Paused = false
	c.state.SingleStep = true
}

// Restart re-seeds the automaton with s and starts drawing from the top row.
// s becomes the strategy used after later rule changes.
func (c *Controller) Restart(s elementary.Strategy) error {
	parsed, err := elementary.ParseStrategy(string(s))
	if err != nil {
		return err
	}
	c.state.Init = parsed
	c.restart()
	return nil
}

// RequestSave queues an export of the current image for the next frame.
func (c *Controller) RequestSave() {
	c.state.Save = true
}

// NextRule schedules the following Wolfram code, wrapping 255 to 0.
func (c *Controller) NextRule() {
	c.SetRule(c.state.Code + 1)
}

// PrevRule schedules the preceding Wolfram code, wrapping 0 to 255.
func (c *Controller) PrevRule() {
	c.SetRule(c.state.Code - 1)
}

func restartWith(s elementary.Strategy) Command {
	return func(c *Controller) {
		if err := c.Restart(s); err != nil {
			panic(err)
		}
	}
}
