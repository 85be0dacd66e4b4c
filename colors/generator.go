package colors

import "math/rand"

// defaultSeed is the fixed “zero” seed used when callers pass seed==0,
// matching the policy of the noise engine.
const defaultSeed int64 = 1

// Generator produces deterministic pseudo-random colors from a seed.
// It is NOT goroutine-safe: math/rand.Rand state advances per call. Build
// one Generator per goroutine when generating palettes in parallel.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a seeded color generator.
// Policy: seed==0 ⇒ fixed default seed, so the zero value of a config
// field still yields a reproducible palette.
func NewGenerator(seed int64) *Generator {
	var s = seed
	if s == 0 {
		s = defaultSeed
	}

	return &Generator{rng: rand.New(rand.NewSource(s))}
}

// Color returns the next random color as a "#rrggbb" string.
func (g *Generator) Color() string {
	return g.RGB().Hex()
}

// RGB returns the next random color as a channel triple.
func (g *Generator) RGB() RGB {
	return RGB{
		R: g.rng.Intn(256),
		G: g.rng.Intn(256),
		B: g.rng.Intn(256),
	}
}
