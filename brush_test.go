package isogrid

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBrushDraw(t *testing.T) {
	g, _ := NewGrid(V3i{10, 10, 10})
	g.Clear(1)
	center := r3.Vec{X: 5, Y: 5, Z: 5}
	b := Brush{Strength: 2, Radius: 2}
	hooked := 0
	g.OnChange(func(*Sample) { hooked++ })
	n := b.Apply(g, center, 0.1)
	if n != pointsWithin(g.Size(), center, b.Radius) {
		t.Errorf("edited %d points, want %d", n, pointsWithin(g.Size(), center, b.Radius))
	}
	if hooked != n {
		t.Errorf("hook called %d times for %d edits", hooked, n)
	}
	for _, s := range g.samples {
		inside := r3.Norm(r3.Sub(s.Pos.ToR3(), center)) <= b.Radius
		want := 1.0
		if inside {
			want = 0.8
		}
		if math.Abs(s.Value-want) > 1e-12 {
			t.Fatalf("sample %v=%g, want %g", s.Pos, s.Value, want)
		}
	}
	// Repeated strokes clamp at the range minimum.
	for i := 0; i < 10; i++ {
		b.Apply(g, center, 0.1)
	}
	if got := g.Get(V3i{5, 5, 5}); got != 0 {
		t.Errorf("center after strokes got %g, want 0", got)
	}
}

func TestBrushErase(t *testing.T) {
	g, _ := NewGrid(V3i{6, 6, 6})
	b := Brush{Strength: 2, Radius: 1.5, Erase: true}
	b.Apply(g, r3.Vec{X: 3, Y: 3, Z: 3}, 0.25)
	if got := g.Get(V3i{3, 3, 3}); got != 0.5 {
		t.Errorf("erase got %g, want 0.5", got)
	}
	b.Apply(g, r3.Vec{X: 3, Y: 3, Z: 3}, 1)
	if got := g.Get(V3i{3, 3, 3}); got != 1 {
		t.Errorf("erase past max got %g, want 1", got)
	}
	if got := g.Get(V3i{0, 0, 0}); got != 0 {
		t.Errorf("point outside brush modified: %g", got)
	}
}

func TestBrushBounds(t *testing.T) {
	g, _ := NewGrid(V3i{4, 4, 4})
	b := Brush{Strength: 1, Radius: 1.5}
	if n := b.Apply(g, r3.Vec{X: 20, Y: 20, Z: 20}, 1); n != 0 {
		t.Errorf("far brush edited %d points", n)
	}
	center := r3.Vec{X: 0, Y: 4, Z: 0}
	if n := b.Apply(g, center, 1); n != pointsWithin(g.Size(), center, b.Radius) {
		t.Errorf("corner brush edited %d points, want %d", n, pointsWithin(g.Size(), center, b.Radius))
	}
	if n := (Brush{Strength: 1}).Apply(g, r3.Vec{X: 1, Y: 1, Z: 1}, 1); n != 1 {
		t.Errorf("zero radius brush on lattice point edited %d points", n)
	}
}

func TestBrushNaNChange(t *testing.T) {
	g, _ := NewGrid(V3i{4, 4, 4})
	g.Clear(0.5)
	center := r3.Vec{X: 2, Y: 2, Z: 2}
	for _, test := range []struct {
		b  Brush
		dt float64
	}{
		{b: Brush{Strength: math.Inf(1), Radius: 1}, dt: 0},
		{b: Brush{Strength: 2, Radius: 1}, dt: math.NaN()},
		{b: Brush{Strength: math.NaN(), Radius: 1, Erase: true}, dt: 1},
	} {
		if n := test.b.Apply(g, center, test.dt); n != 0 {
			t.Errorf("brush %+v dt=%g edited %d points", test.b, test.dt, n)
		}
	}
	if n := (Brush{Strength: 1, Radius: 1}).Apply(g, r3.Vec{X: math.NaN()}, 1); n != 0 {
		t.Errorf("NaN center edited %d points", n)
	}
	for _, s := range g.samples {
		if s.Value != 0.5 {
			t.Fatalf("sample %v modified to %g", s.Pos, s.Value)
		}
	}
}

func pointsWithin(size V3i, center r3.Vec, radius float64) int {
	n := 0
	for z := 0; z <= size[2]; z++ {
		for y := 0; y <= size[1]; y++ {
			for x := 0; x <= size[0]; x++ {
				if r3.Norm(r3.Sub(V3i{x, y, z}.ToR3(), center)) <= radius {
					n++
				}
			}
		}
	}
	return n
}
