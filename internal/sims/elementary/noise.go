package elementary

import "github.com/aquilax/go-perlin"

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// InitNoise sets a cell On where smooth Perlin noise sampled along the row is
// positive, giving runs of On and Off cells instead of white noise. The noise
// field is seeded from the engine's RNG.
func (e *Elementary) InitNoise() {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, e.rng.Int64())
	scale := e.noiseScale
	e.fill(func(i int) State {
		if p.Noise1D(float64(i)*scale) > 0 {
			return On
		}
		return Off
	})
}
