package render

import (
	"math"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isogrid"
	"gonum.org/v1/gonum/spatial/r2"
)

// marchingCubesMaxTriangles is the largest amount of triangles a single cube can produce.
const marchingCubesMaxTriangles = 5

// mcCorners are the lattice offsets of the cube corners from the cell anchor (x,y,z).
// The lookup tables are indexed by this order.
var mcCorners = [8]isogrid.V3i{
	{0, 0, 1}, {1, 0, 1}, {1, 0, 0}, {0, 0, 0},
	{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0},
}

// mcEdges are the pairs of corners joined by each cube edge.
var mcEdges = [12][2]uint8{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Unit square corners used for texture coordinates.
var (
	uvA = r2.Vec{X: 0, Y: 1}
	uvB = r2.Vec{X: 1, Y: 1}
	uvC = r2.Vec{X: 1, Y: 0}
	uvD = r2.Vec{X: 0, Y: 0}
)

// Extractor builds triangle meshes from grids with the marching cubes algorithm.
// The zero value is ready to use. An Extractor reuses its buffers between calls
// and is not safe for concurrent use.
type Extractor struct {
	vertices  []ms3.Vec
	indices   []uint32
	uv        []r2.Vec
	alternate bool
}

// Extract is shorthand for extracting with a new Extractor.
func Extract(g *isogrid.Grid, isolevel float64) Mesh {
	var e Extractor
	return e.Extract(g, isolevel)
}

// Extract walks every cell of g and returns the triangulated isosurface at isolevel.
// Values below isolevel are inside the surface. The result is deterministic for a given
// grid state and does not share memory with the Extractor or previous results.
// The grid must not be modified during the call.
func (e *Extractor) Extract(g *isogrid.Grid, isolevel float64) Mesh {
	e.vertices = e.vertices[:0]
	e.indices = e.indices[:0]
	e.uv = e.uv[:0]
	e.alternate = false

	var (
		p    [8]ms3.Vec
		v    [8]float64
		tris [marchingCubesMaxTriangles]ms3.Triangle
	)
	size := g.Size()
	for z := 0; z < size[2]; z++ {
		for y := 0; y < size[1]; y++ {
			for x := 0; x < size[0]; x++ {
				anchor := isogrid.V3i{x, y, z}
				for i, offset := range mcCorners {
					s := g.At(anchor.Add(offset))
					p[i] = ms3.Vec{X: float32(s.Pos[0]), Y: float32(s.Pos[1]), Z: float32(s.Pos[2])}
					v[i] = s.Value
				}
				n := mcToTriangles(tris[:], p, v, isolevel)
				e.appendTriangles(tris[:n])
			}
		}
	}
	m := Mesh{
		Vertices: make([]ms3.Vec, len(e.vertices)),
		Indices:  make([]uint32, len(e.indices)),
		UV:       make([]r2.Vec, len(e.uv)),
	}
	copy(m.Vertices, e.vertices)
	copy(m.Indices, e.indices)
	copy(m.UV, e.uv)
	return m
}

// appendTriangles adds the triangles to the mesh buffers. Indices are written in reverse
// vertex order so that face normals point towards higher field values.
func (e *Extractor) appendTriangles(tris []ms3.Triangle) {
	for _, t := range tris {
		base := uint32(len(e.vertices))
		e.vertices = append(e.vertices, t[0], t[1], t[2])
		e.indices = append(e.indices, base+2, base+1, base)
		// Two consecutive triangles cover the unit square.
		if e.alternate {
			e.uv = append(e.uv, uvA, uvC, uvD)
		} else {
			e.uv = append(e.uv, uvA, uvB, uvC)
		}
		e.alternate = !e.alternate
	}
}

// mcIndex returns the cube configuration: bit i is set if corner i is below the isolevel.
func mcIndex(v [8]float64, iso float64) uint8 {
	var index uint8
	for i := 0; i < 8; i++ {
		if v[i] < iso {
			index |= 1 << i
		}
	}
	return index
}

// mcToTriangles writes the triangles of a single cube with corner positions p and values v
// to dst and returns the amount written. dst must have room for 5 triangles.
func mcToTriangles(dst []ms3.Triangle, p [8]ms3.Vec, v [8]float64, iso float64) int {
	index := mcIndex(v, iso)
	edges := mcEdgeTable[index]
	if edges == 0 {
		// Cube entirely inside or outside surface.
		return 0
	}
	var points [12]ms3.Vec
	for i := range mcEdges {
		if edges&(1<<i) == 0 {
			continue
		}
		a, b := mcEdges[i][0], mcEdges[i][1]
		points[i] = mcInterpolate(p[a], p[b], v[a], v[b], iso)
	}
	table := mcTriangleTable[index]
	n := len(table) / 3
	_ = dst[n-1] // early bounds check
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			dst[i][j] = points[table[3*i+j]]
		}
	}
	return n
}

// mcInterpolate returns the point on segment p1-p2 where the linearly interpolated
// value equals iso. Values too close together or to iso resolve to an endpoint,
// as does a NaN value.
func mcInterpolate(p1, p2 ms3.Vec, v1, v2, iso float64) ms3.Vec {
	const epsilon = 1e-5
	switch {
	case math.Abs(iso-v1) < epsilon:
		return p1
	case math.Abs(iso-v2) < epsilon:
		return p2
	case math.Abs(v2-v1) < epsilon:
		return p1
	}
	t := float32((iso - v1) / (v2 - v1))
	if math.IsNaN(float64(t)) {
		return p1
	}
	return ms3.Add(p1, ms3.Scale(t, ms3.Sub(p2, p1)))
}
