package term

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"cellular/internal/control"
	"cellular/internal/core"
)

const (
	frameInterval    = 50 * time.Millisecond
	maxTicksPerFrame = 4096
	leftColumnWidth  = 28
	minWindowHeight  = 12
)

// keys maps control triggers to terminal keys.
var keys = map[string]interface{}{
	control.TriggerPause:     gocui.KeySpace,
	control.TriggerStep:      '.',
	control.TriggerSingle:    '1',
	control.TriggerAlternate: '\'',
	control.TriggerRandom:    'r',
	control.TriggerNoise:     'n',
	control.TriggerSave:      's',
	control.TriggerNextRule:  ']',
	control.TriggerPrevRule:  '[',
}

// ConsoleUI draws the automaton in a terminal. All controller calls happen on
// the gocui main loop.
type ConsoleUI struct {
	ctrl *control.Controller
	g    *gocui.Gui
	step *core.FixedStep
	stop chan struct{}
	err  error

	liveFiller string
	deadFiller string
}

// NewConsoleUI opens the terminal and registers the key bindings.
func NewConsoleUI(ctrl *control.Controller, tps int) (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	t := &ConsoleUI{
		ctrl:       ctrl,
		g:          g,
		step:       core.NewFixedStep(tps),
		stop:       make(chan struct{}),
		liveFiller: aurora.Black("█").BgBlack().String(),
		deadFiller: aurora.White("░").String(),
	}
	g.SetManagerFunc(t.layout)

	quit := func(*gocui.Gui, *gocui.View) error { return gocui.ErrQuit }
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		g.Close()
		return nil, fmt.Errorf("term: %w", err)
	}
	if err := g.SetKeybinding("", 'q', gocui.ModNone, quit); err != nil {
		g.Close()
		return nil, fmt.Errorf("term: %w", err)
	}
	for _, b := range ctrl.Bindings() {
		key, ok := keys[b.Trigger]
		if !ok {
			continue
		}
		trigger := b.Trigger
		if err := g.SetKeybinding("", key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error {
			ctrl.Trigger(trigger)
			return nil
		}); err != nil {
			g.Close()
			return nil, fmt.Errorf("term: %w", err)
		}
	}
	return t, nil
}

// Run drives the automaton until the user quits or a batch sweep finishes.
func (t *ConsoleUI) Run() error {
	defer t.g.Close()
	go t.tick()
	err := t.g.MainLoop()
	close(t.stop)
	if err != nil && err != gocui.ErrQuit {
		return err
	}
	return t.err
}

func (t *ConsoleUI) tick() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			t.g.Update(t.frame)
		}
	}
}

func (t *ConsoleUI) frame(g *gocui.Gui) error {
	if err := t.ctrl.Frame(t.step.Due(maxTicksPerFrame)); err != nil {
		t.err = err
		return gocui.ErrQuit
	}
	if t.ctrl.Done() {
		return gocui.ErrQuit
	}
	t.render(g)
	return nil
}

func (t *ConsoleUI) render(g *gocui.Gui) {
	if v, err := g.View("field"); err == nil {
		v.Clear()
		maxW, maxH := v.Size()
		_, _ = fmt.Fprint(v, fieldText(t.ctrl.Canvas(), t.ctrl.State().Gen, maxW, maxH, t.liveFiller, t.deadFiller))
	}
	if v, err := g.View("status"); err == nil {
		v.Clear()
		for _, group := range t.ctrl.Parameters().Groups {
			for _, p := range group.Params {
				_, _ = fmt.Fprintln(v, renderProp(p.Label, p.Value))
			}
		}
	}
}

func renderProp(name, value string) string {
	return " " + aurora.Colorize(name, aurora.GreenFg).String() + ": " + value
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxY < minWindowHeight || maxX <= leftColumnWidth+2 {
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		_ = g.DeleteView("help")
		v, err := g.SetView("small", 0, 0, maxX-1, maxY-1)
		if err != nil && err != gocui.ErrUnknownView {
			return err
		}
		v.Clear()
		_, _ = fmt.Fprintln(v, aurora.Red("Terminal too small").String())
		return nil
	}
	_ = g.DeleteView("small")

	if v, err := g.SetView("status", 0, 0, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView("field", leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Generations"
	}
	if v, err := g.SetView("help", -1, maxY-2, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString(aurora.Green("q").String() + ": Quit")
		for _, k := range t.ctrl.Bindings() {
			b.WriteString(", ")
			b.WriteString(aurora.Green(strings.ToLower(k.Name)).String())
			b.WriteString(": ")
			b.WriteString(k.Descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	t.render(g)
	return nil
}
