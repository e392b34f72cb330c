// Package render extracts triangle meshes from scalar grids with marching cubes
// and writes them as binary STL files.
package render

import (
	"io"

	"github.com/soypat/glgl/math/ms3"
)

// Renderer is a source of triangles. ReadTriangles returns io.EOF once every
// triangle has been read.
type Renderer interface {
	ReadTriangles(dst []ms3.Triangle) (int, error)
}

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.ReadAll implementation.
func RenderAll(r Renderer) ([]ms3.Triangle, error) {
	var err error
	var nt int
	result := make([]ms3.Triangle, 0, 1<<12)
	buf := make([]ms3.Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

type meshReader struct {
	m    *Mesh
	next int // next triangle to read
}

func (r *meshReader) ReadTriangles(dst []ms3.Triangle) (n int, err error) {
	if len(dst) == 0 {
		return 0, io.ErrShortBuffer
	}
	total := r.m.TriangleCount()
	for n < len(dst) && r.next < total {
		dst[n] = r.m.Triangle(r.next)
		n++
		r.next++
	}
	if r.next == total {
		return n, io.EOF
	}
	return n, nil
}
