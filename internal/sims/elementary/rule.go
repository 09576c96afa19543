package elementary

import "fmt"

// State is the value of a single binary cell.
type State uint8

const (
	// Off is the quiescent state, also used for the cells past each edge.
	Off State = 0
	// On is the active state.
	On State = 1
)

// Colour is an 8-bit RGB triple.
type Colour struct {
	R, G, B uint8
}

// Cell pairs a state with its display colour.
type Cell struct {
	State  State
	Colour Colour
}

// palette maps each state to its cell. Colours never change for a state.
var palette = [2]Cell{
	Off: {State: Off, Colour: Colour{R: 255, G: 255, B: 255}},
	On:  {State: On, Colour: Colour{R: 0, G: 0, B: 0}},
}

// CellFor returns the canonical cell for s. It panics if s is not binary.
func CellFor(s State) Cell {
	if s > On {
		panic(fmt.Sprintf("elementary: state %d out of range", s))
	}
	return palette[s]
}

// Neighborhood packs (left, center, right) into left*4+center*2+right.
func Neighborhood(left, center, right State) uint8 {
	return uint8(left)<<2 | uint8(center)<<1 | uint8(right)
}

// RuleTable maps every packed neighborhood 0..7 to the resulting cell.
type RuleTable [8]Cell

// Wolfram builds the rule table for code. Bit k of the code is the output
// state of neighborhood k, so bit 7 covers 111 and bit 0 covers 000. Every
// byte value is a valid code.
func Wolfram(code uint8) RuleTable {
	var t RuleTable
	for n := range t {
		t[n] = palette[(code>>n)&1]
	}
	return t
}

// Lookup returns the cell that follows the given neighborhood.
func (t RuleTable) Lookup(left, center, right State) Cell {
	n := Neighborhood(left, center, right)
	if int(n) >= len(t) {
		panic(fmt.Sprintf("elementary: no rule for neighborhood %03b", n))
	}
	return t[n]
}

// Code reassembles the Wolfram code the table encodes.
func (t RuleTable) Code() uint8 {
	var code uint8
	for n, c := range t {
		code |= uint8(c.State&1) << n
	}
	return code
}

// String renders the table as "111:0 110:1 ..." from the highest pattern down.
func (t RuleTable) String() string {
	b := make([]byte, 0, len(t)*6)
	for n := len(t) - 1; n >= 0; n-- {
		if n != len(t)-1 {
			b = append(b, ' ')
		}
		b = fmt.Appendf(b, "%03b:%d", n, t[n].State)
	}
	return string(b)
}
