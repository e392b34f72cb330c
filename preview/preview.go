// Package preview rasterises isosurface meshes to images for quick inspection.
package preview

import (
	"errors"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isogrid"
	"github.com/soypat/isogrid/render"
)

// Config holds the camera and output parameters of a preview render.
type Config struct {
	Width, Height int
	// Supersample renders at a multiple of the output size before downsampling.
	Supersample int
	// Camera position, view center and up vector in the bi-unit cube the mesh is fit into.
	Eye, Center, Up ms3.Vec
	// Color is the hex object color.
	Color string
	// Bounds, if not nil, overlays the bounding box of a grid of that size.
	Bounds *isogrid.V3i
	// Near and far clipping planes.
	Near, Far float64
}

// DefaultConfig returns a 640×480 view looking at the mesh from above and to the side.
func DefaultConfig() Config {
	return Config{
		Width:       640,
		Height:      480,
		Supersample: 2,
		Eye:         ms3.Vec{X: 3, Y: 2.5, Z: 3},
		Up:          ms3.Vec{Y: 1},
		Color:       "#468966",
		Near:        1,
		Far:         20,
	}
}

const fovy = 30 // vertical field of view in degrees

// Render rasterises the mesh with a Phong shader.
func Render(m *render.Mesh, cfg Config) (image.Image, error) {
	if m.TriangleCount() == 0 {
		return nil, errors.New("empty mesh")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("preview dimensions must be positive")
	}
	scale := cfg.Supersample
	if scale < 1 {
		scale = 1
	}
	tris := make([]*fauxgl.Triangle, m.TriangleCount())
	for i := range tris {
		t := m.Triangle(i)
		tris[i] = fauxgl.NewTriangleForPoints(vec(t[0]), vec(t[1]), vec(t[2]))
	}
	var lines []*fauxgl.Line
	if cfg.Bounds != nil {
		lines = Bounds(*cfg.Bounds)
	}
	mesh := fauxgl.NewMesh(tris, lines)

	var (
		eye    = vec(cfg.Eye)
		center = vec(cfg.Center)
		up     = vec(cfg.Up)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(cfg.Width*scale, cfg.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(cfg.Width) / float64(cfg.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, cfg.Near, cfg.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor(cfg.Color)
	context.Shader = shader
	context.DrawMesh(mesh)

	img := context.Image()
	if scale > 1 {
		img = resize.Resize(uint(cfg.Width), uint(cfg.Height), img, resize.Bilinear)
	}
	return img, nil
}

// Bounds returns the grid bounding box walk as line segments.
func Bounds(size isogrid.V3i) []*fauxgl.Line {
	pts := isogrid.BoundsPolyline(size)
	lines := make([]*fauxgl.Line, len(pts)-1)
	for i := range lines {
		a, b := pts[i], pts[i+1]
		lines[i] = fauxgl.NewLineForPoints(fauxgl.V(a.X, a.Y, a.Z), fauxgl.V(b.X, b.Y, b.Z))
	}
	return lines
}

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	return fauxgl.SavePNG(path, img)
}

func vec(v ms3.Vec) fauxgl.Vector {
	return fauxgl.V(float64(v.X), float64(v.Y), float64(v.Z))
}
