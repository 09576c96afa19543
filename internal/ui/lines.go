package ui

import (
	"strings"

	"cellular/internal/control"
	"cellular/internal/core"
)

// line is one row of panel text. Header rows have an empty value.
type line struct {
	label  string
	value  string
	header bool
}

// snapshotLines flattens a parameter snapshot into panel rows: a header per
// group, one row per parameter and the group summary, if any, last.
func snapshotLines(s core.ParameterSnapshot) []line {
	var out []line
	for _, g := range s.Groups {
		out = append(out, line{label: g.Name, header: true})
		for _, p := range g.Params {
			out = append(out, line{label: p.Label, value: p.Value})
		}
		if g.Summary != "" {
			for _, chunk := range wrapWords(g.Summary, summaryWidth) {
				out = append(out, line{label: chunk})
			}
		}
	}
	return out
}

// helpLines lists the key bindings as "KEY  description".
func helpLines(bindings []control.Binding) []string {
	out := make([]string, 0, len(bindings)+1)
	out = append(out, "KEYBINDINGS")
	for _, b := range bindings {
		out = append(out, b.Name+strings.Repeat(" ", max(1, 7-len(b.Name)))+b.Descr)
	}
	return out
}

// wrapWords splits s into lines of at most width bytes on spaces.
func wrapWords(s string, width int) []string {
	var out []string
	cur := ""
	for _, w := range strings.Fields(s) {
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) <= width:
			cur += " " + w
		default:
			out = append(out, cur)
			cur = w
		}
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}

const summaryWidth = 23
