// Package isogrid implements a dense scalar field grid with brush editing and
// procedural samplers, the input of isosurface extraction in package render.
package isogrid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sample is a single scalar field sample on the grid lattice.
type Sample struct {
	// Pos is the lattice coordinate of the sample. It never changes.
	Pos V3i
	// Value is the scalar field value at Pos.
	Value float64
}

// Field computes a scalar value at a zoomed, normalized position p.
// Components of p lie in [0, zoom]. The same seed must produce the same field.
type Field func(p r3.Vec, seed int64) float64

// Grid is a dense, fixed size lattice of scalar samples bounding W×H×D unit cells.
// It holds (W+1)×(H+1)×(D+1) samples.
//
// Grid is not safe for concurrent use. Writes must not overlap with an extraction pass.
type Grid struct {
	size    V3i // cells along each axis
	samples []Sample
	lo, hi  float64 // clamp range for Set and Add
	version uint64
	changed func(*Sample)
}

// NewGrid allocates a grid of size[0]×size[1]×size[2] cells. All sample values start at zero
// and the edit clamp range is [0,1]. Any dimension smaller than 1 is rejected before allocating.
func NewGrid(size V3i) (*Grid, error) {
	if size[0] < 1 || size[1] < 1 || size[2] < 1 {
		return nil, ErrMsg("grid dimensions must be 1 or larger")
	}
	g := &Grid{
		size: size,
		hi:   1,
	}
	pts := g.Points()
	g.samples = make([]Sample, pts.Prod())
	for z := 0; z < pts[2]; z++ {
		for y := 0; y < pts[1]; y++ {
			for x := 0; x < pts[0]; x++ {
				g.samples[g.index(V3i{x, y, z})].Pos = V3i{x, y, z}
			}
		}
	}
	return g, nil
}

// Size returns the amount of cells along each axis.
func (g *Grid) Size() V3i { return g.size }

// Points returns the amount of lattice points along each axis, which is Size()+1.
func (g *Grid) Points() V3i { return g.size.AddScalar(1) }

// Version returns a counter incremented on every mutation of the grid.
// Callers poll it to decide whether the isosurface needs rebuilding.
func (g *Grid) Version() uint64 { return g.version }

// Range returns the clamp range applied by Set and Add.
func (g *Grid) Range() (lo, hi float64) { return g.lo, g.hi }

// SetRange sets the clamp range applied by Set and Add.
func (g *Grid) SetRange(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return ErrMsg("NaN clamp range")
	} else if lo > hi {
		return ErrMsg("clamp range minimum greater than maximum")
	}
	g.lo, g.hi = lo, hi
	return nil
}

// OnChange registers a function called once per Set or Add with the mutated sample.
// Passing nil removes the hook. The hook should only record that a rebuild is due.
func (g *Grid) OnChange(fn func(*Sample)) { g.changed = fn }

// At returns the sample at lattice coordinate p. The returned sample must not be modified.
func (g *Grid) At(p V3i) *Sample {
	return &g.samples[g.mustIndex(p)]
}

// Get returns the value at lattice coordinate p.
func (g *Grid) Get(p V3i) float64 {
	return g.samples[g.mustIndex(p)].Value
}

// Set clamps v to the grid's range, stores it at p and notifies the change hook.
// It returns the stored value. A NaN v leaves the sample untouched and does not
// notify the hook.
func (g *Grid) Set(p V3i, v float64) float64 {
	s := &g.samples[g.mustIndex(p)]
	if math.IsNaN(v) {
		return s.Value
	}
	s.Value = Clamp(v, g.lo, g.hi)
	g.version++
	if g.changed != nil {
		g.changed(s)
	}
	return s.Value
}

// Add adds delta to the value at p, clamping the result to the grid's range.
// It returns the new value.
func (g *Grid) Add(p V3i, delta float64) float64 {
	return g.Set(p, g.Get(p)+delta)
}

// Sample overwrites every value with f evaluated at the zoomed normalized
// lattice position. Values are not clamped.
func (g *Grid) Sample(f Field, zoom float64, seed int64) {
	size := r3.Vec{X: float64(g.size[0]), Y: float64(g.size[1]), Z: float64(g.size[2])}
	for i := range g.samples {
		s := &g.samples[i]
		p := s.Pos.ToR3()
		s.Value = f(r3.Vec{
			X: zoom * (p.X / size.X),
			Y: zoom * (p.Y / size.Y),
			Z: zoom * (p.Z / size.Z),
		}, seed)
	}
	g.version++
}

// Clear sets every value to fill.
func (g *Grid) Clear(fill float64) {
	for i := range g.samples {
		g.samples[i].Value = fill
	}
	g.version++
}

func (g *Grid) index(p V3i) int {
	nx, ny := g.size[0]+1, g.size[1]+1
	return p[0] + nx*(p[1]+ny*p[2])
}

func (g *Grid) mustIndex(p V3i) int {
	if !p.within(g.size) {
		panic("lattice coordinate out of grid bounds")
	}
	return g.index(p)
}
