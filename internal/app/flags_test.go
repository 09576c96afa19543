package app

import (
	"flag"
	"testing"

	"cellular/internal/sims/elementary"
)

func TestBindAndConvert(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "64", "-rule", "30", "-init", "alternate", "-seed", "5", "-batch"}); err != nil {
		t.Fatal(err)
	}
	if !cfg.Batch {
		t.Fatal("-batch not bound")
	}
	ec := cfg.Elementary()
	if ec.Width != 64 || ec.Rule != 30 || ec.Init != elementary.StrategyAlternate || ec.Seed != 5 {
		t.Fatalf("elementary config = %+v", ec)
	}
}

func TestElementaryIgnoresOutOfRangeRule(t *testing.T) {
	cfg := NewConfig()
	cfg.Rule = 256
	cfg.Init = "diagonal"
	ec := cfg.Elementary()
	if ec.Rule != elementary.DefaultConfig().Rule || ec.Init != elementary.DefaultConfig().Init {
		t.Fatalf("rule %d init %q, want defaults", ec.Rule, ec.Init)
	}
}
