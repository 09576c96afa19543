package elementary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy reports an initial-condition name that is not registered.
var ErrUnknownStrategy = errors.New("elementary: unknown init strategy")

// Strategy names an initial-condition generator.
type Strategy string

const (
	// StrategySingleLow sets every cell except the middle one.
	StrategySingleLow Strategy = "single-low"
	// StrategySingleHigh sets only the middle cell.
	StrategySingleHigh Strategy = "single-high"
	// StrategyAlternate sets every odd cell.
	StrategyAlternate Strategy = "alternate"
	// StrategyRandom draws each cell uniformly from {0,1}.
	StrategyRandom Strategy = "random"
	// StrategyNoise thresholds one-dimensional Perlin noise.
	StrategyNoise Strategy = "noise"
)

var initializers = map[Strategy]func(*Elementary){
	StrategySingleLow:  (*Elementary).InitSingleLow,
	StrategySingleHigh: (*Elementary).InitSingleHigh,
	StrategyAlternate:  (*Elementary).InitAlternate,
	StrategyRandom:     (*Elementary).InitRandom,
	StrategyNoise:      (*Elementary).InitNoise,
}

// Strategies lists the registered strategies in a stable order.
func Strategies() []Strategy {
	return []Strategy{
		StrategySingleLow,
		StrategySingleHigh,
		StrategyAlternate,
		StrategyRandom,
		StrategyNoise,
	}
}

// ParseStrategy resolves a strategy name, ignoring case and surrounding space.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := initializers[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}
