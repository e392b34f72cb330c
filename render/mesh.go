package render

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r2"
)

// Mesh is an indexed triangle mesh with per-vertex texture coordinates.
// Every triangle owns its three vertices; vertices are not shared between triangles.
type Mesh struct {
	Vertices []ms3.Vec
	// Indices holds three vertex indices per triangle.
	Indices []uint32
	// UV holds one texture coordinate per vertex.
	UV []r2.Vec
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Triangle returns the ith triangle with vertices in index order.
func (m *Mesh) Triangle(i int) ms3.Triangle {
	idx := m.Indices[3*i : 3*i+3]
	return ms3.Triangle{m.Vertices[idx[0]], m.Vertices[idx[1]], m.Vertices[idx[2]]}
}

// Triangles returns all triangles of the mesh.
func (m *Mesh) Triangles() []ms3.Triangle {
	tris := make([]ms3.Triangle, m.TriangleCount())
	for i := range tris {
		tris[i] = m.Triangle(i)
	}
	return tris
}

// Bounds returns the bounding box of the mesh vertices. An empty mesh has a zero box.
func (m *Mesh) Bounds() ms3.Box {
	if len(m.Vertices) == 0 {
		return ms3.Box{}
	}
	min, max := m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = ms3.Vec{X: math32.Min(min.X, v.X), Y: math32.Min(min.Y, v.Y), Z: math32.Min(min.Z, v.Z)}
		max = ms3.Vec{X: math32.Max(max.X, v.X), Y: math32.Max(max.Y, v.Y), Z: math32.Max(max.Z, v.Z)}
	}
	return ms3.Box{Min: min, Max: max}
}

// Reader returns a Renderer that reads the mesh triangles in order.
func (m *Mesh) Reader() Renderer {
	return &meshReader{m: m}
}

// Validate checks the mesh invariants: three indices per triangle, one texture
// coordinate per vertex, indices in range and finite vertices.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d not a multiple of 3", len(m.Indices))
	}
	if len(m.UV) != len(m.Vertices) {
		return fmt.Errorf("got %d texture coordinates for %d vertices", len(m.UV), len(m.Vertices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("index %d out of range: %d >= %d", i, idx, len(m.Vertices))
		}
	}
	for i, v := range m.Vertices {
		if bad3F32([3]float32{v.X, v.Y, v.Z}) {
			return fmt.Errorf("vertex %d: %w", i, errBadVertex)
		}
	}
	return nil
}

var errBadVertex = errors.New("inf/NaN vertex")
