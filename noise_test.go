package isogrid

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestPerlin2(t *testing.T) {
	for x := -3; x < 3; x++ {
		for y := -3; y < 3; y++ {
			if got := Perlin2(float64(x), float64(y)); got != 0.5 {
				t.Errorf("Perlin2(%d,%d)=%g, want 0.5", x, y, got)
			}
		}
	}
	var min, max float64 = 1, 0
	for i := 0; i < 10000; i++ {
		x := float64(i%100)*0.137 - 5
		y := float64(i/100)*0.291 - 11
		n := Perlin2(x, y)
		if n < 0 || n > 1 || math.IsNaN(n) {
			t.Fatalf("Perlin2(%g,%g)=%g out of [0,1]", x, y, n)
		}
		if n != Perlin2(x, y) {
			t.Fatal("Perlin2 not deterministic")
		}
		min = math.Min(min, n)
		max = math.Max(max, n)
	}
	if max-min < 0.2 {
		t.Errorf("noise range too narrow: [%g,%g]", min, max)
	}
}

func TestPermutation(t *testing.T) {
	var seen [256]bool
	for i := 0; i < 256; i++ {
		seen[perm[i]] = true
		if perm[i] != perm[i+256] {
			t.Fatalf("permutation not repeated at %d", i)
		}
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("%d missing from permutation", i)
		}
	}
}

func TestTerrain(t *testing.T) {
	// Terrain is zero at the bottom layer and grows with height.
	for x := 0.0; x <= 1; x += 0.25 {
		if got := Terrain(r3.Vec{X: x, Y: 0, Z: x}, 3); got != 0 {
			t.Errorf("Terrain at y=0 got %g", got)
		}
		top := Terrain(r3.Vec{X: x, Y: 1, Z: x}, 3)
		if top < 0.25 || top > 1.25 {
			t.Errorf("Terrain at y=1 got %g", top)
		}
	}
}

func TestSphere(t *testing.T) {
	f := Sphere(r3.Vec{X: 1, Y: 1, Z: 1}, 2)
	if got := f(r3.Vec{X: 1, Y: 1, Z: 1}, 0); got != 0 {
		t.Errorf("center got %g", got)
	}
	if got := f(r3.Vec{X: 3, Y: 1, Z: 1}, 9); got != 1 {
		t.Errorf("surface got %g", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero radius")
		}
	}()
	Sphere(r3.Vec{}, 0)
}
