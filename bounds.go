package isogrid

import "gonum.org/v1/gonum/spatial/r3"

// BoundsPolyline returns a connected 16 point walk over the 12 edges of the grid's
// bounding box [0,W]×[0,H]×[0,D]. Three edges are traversed twice.
func BoundsPolyline(size V3i) [16]r3.Vec {
	X, Y, Z := float64(size[0]), float64(size[1]), float64(size[2])
	return [16]r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: Y, Z: 0},
		{X: X, Y: Y, Z: 0},
		{X: X, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: Z},
		{X: 0, Y: Y, Z: Z},
		{X: X, Y: Y, Z: Z},
		{X: X, Y: 0, Z: Z},
		{X: 0, Y: 0, Z: Z},
		{X: 0, Y: Y, Z: Z},
		{X: 0, Y: Y, Z: 0},
		{X: X, Y: Y, Z: 0},
		{X: X, Y: Y, Z: Z},
		{X: X, Y: 0, Z: Z},
		{X: X, Y: 0, Z: 0},
	}
}
