package isogrid

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBoundsPolyline(t *testing.T) {
	size := V3i{20, 10, 20}
	pts := BoundsPolyline(size)
	box := r3.Box{Max: size.ToR3()}
	if pts[0] != (r3.Vec{}) || pts[15] != (r3.Vec{X: 20}) {
		t.Errorf("walk endpoints %v %v", pts[0], pts[15])
	}
	edges := make(map[[2]V3i]int)
	for i := range pts {
		if !box.Contains(pts[i]) {
			t.Fatalf("point %d %v outside bounds", i, pts[i])
		}
		for _, c := range []float64{pts[i].X, pts[i].Y, pts[i].Z} {
			if c != 0 && c != 10 && c != 20 {
				t.Fatalf("point %d %v not a box corner", i, pts[i])
			}
		}
		if i == 0 {
			continue
		}
		a, b := R3ToI(pts[i-1]), R3ToI(pts[i])
		diff := 0
		for k := 0; k < 3; k++ {
			if a[k] != b[k] {
				diff++
			}
		}
		if diff != 1 {
			t.Fatalf("segment %d from %v to %v is not a box edge", i, a, b)
		}
		if b[0] < a[0] || b[1] < a[1] || b[2] < a[2] {
			a, b = b, a
		}
		edges[[2]V3i{a, b}]++
	}
	if len(edges) != 12 {
		t.Errorf("walk covers %d distinct edges, want 12", len(edges))
	}
	twice := 0
	for _, n := range edges {
		if n == 2 {
			twice++
		}
	}
	if twice != 3 {
		t.Errorf("%d edges traversed twice, want 3", twice)
	}
}
