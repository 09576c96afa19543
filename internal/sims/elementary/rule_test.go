package elementary

import "testing"

func TestWolframTotalAndDeterministic(t *testing.T) {
	for code := 0; code <= 255; code++ {
		a := Wolfram(uint8(code))
		b := Wolfram(uint8(code))
		if a != b {
			t.Fatalf("Wolfram(%d) not deterministic", code)
		}
		for n, c := range a {
			if c != palette[c.State] {
				t.Fatalf("Wolfram(%d)[%03b] = %+v, not a palette cell", code, n, c)
			}
		}
	}
}

func TestWolframRoundTrip(t *testing.T) {
	for code := 0; code <= 255; code++ {
		table := Wolfram(uint8(code))
		var rebuilt int
		for l := State(0); l <= On; l++ {
			for c := State(0); c <= On; c++ {
				for r := State(0); r <= On; r++ {
					bit := int(l)<<2 | int(c)<<1 | int(r)
					rebuilt |= int(table.Lookup(l, c, r).State) << bit
				}
			}
		}
		if rebuilt != code {
			t.Fatalf("rebuilt code %d from Wolfram(%d)", rebuilt, code)
		}
		if got := table.Code(); int(got) != code {
			t.Fatalf("Code() = %d, want %d", got, code)
		}
	}
}

func TestRule110Table(t *testing.T) {
	// 110 = 0b01101110
	want := map[[3]State]State{
		{1, 1, 1}: 0,
		{1, 1, 0}: 1,
		{1, 0, 1}: 1,
		{1, 0, 0}: 0,
		{0, 1, 1}: 1,
		{0, 1, 0}: 1,
		{0, 0, 1}: 1,
		{0, 0, 0}: 0,
	}
	table := Wolfram(110)
	for n, s := range want {
		if got := table.Lookup(n[0], n[1], n[2]).State; got != s {
			t.Fatalf("rule 110 %v -> %d, want %d", n, got, s)
		}
	}
	if got := table.String(); got != "111:0 110:1 101:1 100:0 011:1 010:1 001:1 000:0" {
		t.Fatalf("String() = %q", got)
	}
}

func TestPaletteColours(t *testing.T) {
	if got := CellFor(Off).Colour; got != (Colour{255, 255, 255}) {
		t.Fatalf("Off colour = %+v, want white", got)
	}
	if got := CellFor(On).Colour; got != (Colour{0, 0, 0}) {
		t.Fatalf("On colour = %+v, want black", got)
	}
}

func TestLookupPanicsOnNonBinaryState(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Lookup with state 2 did not panic")
		}
	}()
	Wolfram(30).Lookup(2, 0, 0)
}
