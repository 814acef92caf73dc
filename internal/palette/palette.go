// Package palette assigns a display colour to each distinct task name.
//
// The first names seen take the fixed palette colours in order; every name after
// the palette is exhausted gets a freshly generated random colour. A name keeps its
// colour for the lifetime of the Assigner.
package palette

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Base is the default palette: blue, green, red, cyan, magenta, yellow, black, white.
var Base = []colorful.Color{
	{R: 0, G: 0, B: 1},
	{R: 0, G: 0.5, B: 0},
	{R: 1, G: 0, B: 0},
	{R: 0, G: 0.75, B: 0.75},
	{R: 0.75, G: 0, B: 0.75},
	{R: 0.75, G: 0.75, B: 0},
	{R: 0, G: 0, B: 0},
	{R: 1, G: 1, B: 1},
}

// Config controls colour assignment.
type Config struct {
	// Palette holds the colours handed out first, in order.
	Palette []colorful.Color
	// Random generates a colour once the palette is exhausted.
	Random func() colorful.Color
}

// DefaultConfig returns the base palette with a random generator seeded by seed.
// A zero seed uses the current time.
func DefaultConfig(seed int64) Config {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return Config{
		Palette: append([]colorful.Color(nil), Base...),
		Random:  RandomRGB(rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))),
	}
}

// RandomRGB returns a generator drawing each channel uniformly from rng.
func RandomRGB(rng *rand.Rand) func() colorful.Color {
	return func() colorful.Color {
		return colorful.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
	}
}

// ParseHex parses a list of "#rrggbb" strings into a palette.
func ParseHex(hexes []string) ([]colorful.Color, error) {
	colors := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette colour %q: %w", h, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// Hexes formats a palette as "#rrggbb" strings.
func Hexes(colors []colorful.Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}

// Assigner maps task names to colours, remembering insertion order.
// It is not safe for concurrent use.
type Assigner struct {
	cfg    Config
	names  []string
	colors map[string]colorful.Color
	used   int
}

// NewAssigner creates an Assigner. A nil Random falls back to a time-seeded generator.
func NewAssigner(cfg Config) *Assigner {
	if cfg.Random == nil {
		cfg.Random = DefaultConfig(0).Random
	}
	return &Assigner{
		cfg:    cfg,
		colors: make(map[string]colorful.Color),
	}
}

// Color returns the colour for name, assigning one if name is new.
func (a *Assigner) Color(name string) colorful.Color {
	if c, ok := a.colors[name]; ok {
		return c
	}

	var c colorful.Color
	if a.used < len(a.cfg.Palette) {
		c = a.cfg.Palette[a.used]
		a.used++
	} else {
		c = a.cfg.Random()
	}

	a.colors[name] = c
	a.names = append(a.names, name)
	return c
}

// Lookup returns the colour already assigned to name without assigning one.
func (a *Assigner) Lookup(name string) (colorful.Color, bool) {
	c, ok := a.colors[name]
	return c, ok
}

// AssignAll assigns colours to names in order.
func (a *Assigner) AssignAll(names []string) {
	for _, n := range names {
		a.Color(n)
	}
}

// Names returns the assigned names in order of first appearance.
func (a *Assigner) Names() []string {
	return append([]string(nil), a.names...)
}

// Len returns the number of assigned names.
func (a *Assigner) Len() int {
	return len(a.names)
}
