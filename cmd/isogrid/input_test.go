package main

import (
	"strings"
	"testing"

	"github.com/soypat/isogrid"
	"github.com/soypat/isogrid/render"
)

func TestReadGrid(t *testing.T) {
	// Two layers of a single cell, bottom inside and top outside.
	const input = `[[[0,0],[1,1]],[[0,0],[1,1]]]`
	g, err := ReadGrid(strings.NewReader(input), isogrid.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != (isogrid.V3i{1, 1, 1}) {
		t.Fatalf("got grid size %v", g.Size())
	}
	if g.Get(isogrid.V3i{1, 1, 0}) != 1 || g.Get(isogrid.V3i{1, 0, 1}) != 0 {
		t.Error("values stored at wrong lattice points")
	}
	m := render.Extract(g, 0.5)
	if m.TriangleCount() != 2 {
		t.Errorf("got %d triangles, want 2", m.TriangleCount())
	}
	if lo, hi := g.Range(); lo != 0 || hi != 1 {
		t.Errorf("clamp range [%g,%g] not restored", lo, hi)
	}
}

func TestReadGridUnclamped(t *testing.T) {
	g, err := ReadGrid(strings.NewReader(`[[[-3,0],[1,1]],[[0,0],[1,7]]]`), isogrid.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if g.Get(isogrid.V3i{}) != -3 || g.Get(isogrid.V3i{1, 1, 1}) != 7 {
		t.Error("input values were clamped")
	}
}

func TestReadGridErrors(t *testing.T) {
	for _, input := range []string{
		`not json`,
		`[[[0]]]`,
		`[[[0,0],[1,1]],[[0,0]]]`,
		`[[[0,0],[1,1]],[[0,0],[1]]]`,
	} {
		if _, err := ReadGrid(strings.NewReader(input), isogrid.DefaultConfig()); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestFlags(t *testing.T) {
	var size isogrid.V3i
	if err := (sizeValue{&size}).Set("4x5x6"); err != nil || size != (isogrid.V3i{4, 5, 6}) {
		t.Errorf("size parse: %v %v", size, err)
	}
	if err := (sizeValue{&size}).Set("4x5"); err == nil {
		t.Error("expected error for two dimensional size")
	}
	var rng [2]float64
	if err := (rangeValue{&rng}).Set("-1, 2.5"); err != nil || rng != [2]float64{-1, 2.5} {
		t.Errorf("range parse: %v %v", rng, err)
	}
	var strokes strokeList
	if err := strokes.Set("1,2,3,1.5"); err != nil || len(strokes) != 1 || strokes[0].radius != 1.5 {
		t.Errorf("stroke parse: %v %v", strokes, err)
	}
	if err := strokes.Set("1,2,3,-1"); err == nil {
		t.Error("expected error for negative radius")
	}
}
