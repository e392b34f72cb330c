package isogrid

import "math"

// Config is the adjustable surface of a terrain grid.
type Config struct {
	// Size is the amount of cells along each axis.
	Size V3i
	// Zoom scales the normalized coordinates passed to the sampling Field.
	Zoom float64
	// Isolevel is the threshold separating inside (below) from outside (at or above).
	Isolevel float64
	// Strength is the brush value change per unit time.
	Strength float64
	// Range is the clamp range of interactive edits.
	Range [2]float64
	// Seed is passed to the sampling Field.
	Seed int64
}

// DefaultConfig returns a 20×10×20 cell grid configuration with isolevel 0.5
// and edits clamped to [0,1].
func DefaultConfig() Config {
	return Config{
		Size:     V3i{20, 10, 20},
		Zoom:     1,
		Isolevel: 0.5,
		Strength: 2,
		Range:    [2]float64{0, 1},
	}
}

// Validate returns an error if the configuration can not build a grid.
func (c Config) Validate() error {
	switch {
	case c.Size[0] < 1 || c.Size[1] < 1 || c.Size[2] < 1:
		return ErrMsg("grid dimensions must be 1 or larger")
	case !(c.Zoom > 0) || math.IsInf(c.Zoom, 0):
		return ErrMsg("zoom must be positive and finite")
	case math.IsNaN(c.Isolevel) || math.IsInf(c.Isolevel, 0):
		return ErrMsg("isolevel must be finite")
	case !(c.Strength >= 0) || math.IsInf(c.Strength, 1):
		return ErrMsg("brush strength must be non-negative and finite")
	case math.IsNaN(c.Range[0]) || math.IsNaN(c.Range[1]) || c.Range[0] > c.Range[1]:
		return ErrMsg("bad edit clamp range")
	}
	return nil
}

// NewGrid validates the configuration and allocates a grid with the edit range applied.
func (c Config) NewGrid() (*Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	g, err := NewGrid(c.Size)
	if err != nil {
		return nil, err
	}
	if err := g.SetRange(c.Range[0], c.Range[1]); err != nil {
		return nil, err
	}
	return g, nil
}

// Brush returns a brush of the configured strength.
func (c Config) Brush(radius float64, erase bool) Brush {
	return Brush{Strength: c.Strength, Radius: radius, Erase: erase}
}
