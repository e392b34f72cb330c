package render

import "github.com/soypat/isogrid"

// Surface keeps the isosurface mesh of a grid up to date. Callers edit the grid freely
// and call Update once per tick; the mesh is rebuilt at most once per Update and only
// when the grid changed since the last rebuild.
type Surface struct {
	isolevel float64
	ex       Extractor
	mesh     Mesh
	grid     *isogrid.Grid
	version  uint64
	valid    bool
	rebuilds int
}

// NewSurface returns a Surface extracting at isolevel.
func NewSurface(isolevel float64) *Surface {
	return &Surface{isolevel: isolevel}
}

// Isolevel returns the isolevel of the extracted surface.
func (s *Surface) Isolevel() float64 { return s.isolevel }

// SetIsolevel changes the isolevel and schedules a rebuild.
func (s *Surface) SetIsolevel(isolevel float64) {
	if isolevel != s.isolevel {
		s.isolevel = isolevel
		s.valid = false
	}
}

// Invalidate forces the next Update to rebuild the mesh.
func (s *Surface) Invalidate() { s.valid = false }

// Update rebuilds the mesh if g was modified since the last rebuild, if g is not the
// grid last extracted or if the surface was invalidated. It reports whether a rebuild happened.
func (s *Surface) Update(g *isogrid.Grid) bool {
	if s.valid && s.grid == g && s.version == g.Version() {
		return false
	}
	s.mesh = s.ex.Extract(g, s.isolevel)
	s.grid = g
	s.version = g.Version()
	s.valid = true
	s.rebuilds++
	return true
}

// Mesh returns the last extracted mesh. It is empty before the first Update.
func (s *Surface) Mesh() *Mesh { return &s.mesh }

// Rebuilds returns the amount of extractions performed.
func (s *Surface) Rebuilds() int { return s.rebuilds }
