package isogrid

import (
	"math"

	"github.com/soypat/isogrid/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Brush edits grid values inside a sphere. Drawing lowers values, pushing samples
// below the isolevel (inside the surface). Erasing raises them.
type Brush struct {
	// Strength is the value change per unit of time.
	Strength float64
	// Radius of the brush sphere in lattice units.
	Radius float64
	// Erase raises values instead of lowering them.
	Erase bool
}

// Apply edits every lattice point within b.Radius of center (in lattice coordinates)
// by Strength*dt, clamped to the grid's range. It returns the number of points edited.
// Each edited point fires the grid's change hook. A non finite center or a NaN change edits nothing.
func (b Brush) Apply(g *Grid, center r3.Vec, dt float64) int {
	if b.Radius < 0 || math.IsNaN(b.Radius) {
		panic("invalid brush radius")
	}
	if !d3.IsFinite(center) {
		return 0
	}
	delta := -b.Strength * dt
	if b.Erase {
		delta = -delta
	}
	if math.IsNaN(delta) {
		return 0
	}
	gridBox := d3.Box{Max: g.Size().ToR3()}
	box, ok := d3.CenteredBox(center, d3.Elem(2*b.Radius)).Intersect(gridBox)
	if !ok {
		return 0
	}
	lo := R3ToI(d3.CeilElem(box.Min))
	hi := R3ToI(d3.FloorElem(box.Max))
	r2 := b.Radius * b.Radius
	n := 0
	for z := lo[2]; z <= hi[2]; z++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for x := lo[0]; x <= hi[0]; x++ {
				p := V3i{x, y, z}
				if r3.Norm2(r3.Sub(p.ToR3(), center)) > r2 {
					continue
				}
				g.Add(p, delta)
				n++
			}
		}
	}
	return n
}
