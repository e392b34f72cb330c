/*

Integer 3D lattice vectors

*/

package isogrid

import "gonum.org/v1/gonum/spatial/r3"

// V3i is a 3D integer vector. It addresses lattice points of a Grid.
type V3i [3]int

// Add adds two vectors. Return v = a + b.
func (a V3i) Add(b V3i) V3i {
	return V3i{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// AddScalar adds a scalar to each component of the vector.
func (a V3i) AddScalar(b int) V3i {
	return V3i{a[0] + b, a[1] + b, a[2] + b}
}

// ToR3 converts V3i (integer) to r3.Vec (float).
func (a V3i) ToR3() r3.Vec {
	return r3.Vec{X: float64(a[0]), Y: float64(a[1]), Z: float64(a[2])}
}

// Prod returns the product of the components.
func (a V3i) Prod() int {
	return a[0] * a[1] * a[2]
}

// within returns true if 0 <= a[i] <= max[i] for every component.
func (a V3i) within(max V3i) bool {
	return a[0] >= 0 && a[1] >= 0 && a[2] >= 0 &&
		a[0] <= max[0] && a[1] <= max[1] && a[2] <= max[2]
}

// R3ToI converts r3.Vec (float) to V3i (integer) by truncation.
func R3ToI(a r3.Vec) V3i {
	return V3i{int(a.X), int(a.Y), int(a.Z)}
}
