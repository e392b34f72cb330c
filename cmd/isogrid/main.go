// Command isogrid samples a terrain scalar field on a grid, optionally carves it with
// brush strokes, extracts the isosurface with marching cubes and saves it as an STL
// file and a PNG preview.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/soypat/isogrid"
	"github.com/soypat/isogrid/preview"
	"github.com/soypat/isogrid/render"
	"github.com/unixpickle/essentials"
)

func main() {
	var (
		cfg        = isogrid.DefaultConfig()
		sizeFlag   = sizeValue{&cfg.Size}
		rangeFlag  = rangeValue{&cfg.Range}
		strokes    strokeList
		inputPath  string
		stlPath    string
		pngPath    string
		clearGrid  bool
		erase      bool
		strokeTime float64
		showBounds bool
	)
	flag.Var(sizeFlag, "size", "grid cells as WxHxD")
	flag.Float64Var(&cfg.Zoom, "zoom", cfg.Zoom, "zoom applied to normalized sampling coordinates")
	flag.Float64Var(&cfg.Isolevel, "iso", cfg.Isolevel, "isolevel separating inside from outside")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "terrain noise seed")
	flag.Float64Var(&cfg.Strength, "strength", cfg.Strength, "brush value change per unit time")
	flag.Var(rangeFlag, "range", "clamp range of brush edits as lo,hi")
	flag.Var(&strokes, "brush", "brush stroke as x,y,z,radius in lattice units (repeatable)")
	flag.Float64Var(&strokeTime, "stroke", 0.1, "duration of each brush stroke")
	flag.BoolVar(&erase, "erase", false, "brush strokes raise values instead of lowering them")
	flag.BoolVar(&clearGrid, "clear", false, "start from a grid filled with the maximum edit value instead of terrain")
	flag.StringVar(&inputPath, "input", "", "read grid values from a JSON [z][y][x] array instead of sampling terrain")
	flag.StringVar(&stlPath, "stl", "isogrid.stl", "output STL file (empty to skip)")
	flag.StringVar(&pngPath, "png", "", "output PNG preview file (empty to skip)")
	flag.BoolVar(&showBounds, "bounds", true, "draw the grid bounds in the preview")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags]")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if len(flag.Args()) != 0 {
		flag.Usage()
	}

	grid, err := buildGrid(cfg, inputPath, clearGrid)
	essentials.Must(err)

	if len(strokes) > 0 {
		brush := cfg.Brush(0, erase)
		edited := 0
		for _, s := range strokes {
			brush.Radius = s.radius
			edited += brush.Apply(grid, s.center, strokeTime)
		}
		log.Printf("applied %d brush strokes editing %d lattice points", len(strokes), edited)
	}

	surface := render.NewSurface(cfg.Isolevel)
	start := time.Now()
	surface.Update(grid)
	mesh := surface.Mesh()
	log.Printf("extracted %d triangles from %v grid in %s", mesh.TriangleCount(), grid.Size(), time.Since(start))
	if mesh.TriangleCount() == 0 {
		log.Println("isosurface is empty, no output written")
		return
	}

	if stlPath != "" {
		err = render.CreateSTL(stlPath, mesh.Reader())
		essentials.Must(errors.Wrap(err, "write STL"))
		log.Println("wrote", stlPath)
	}
	if pngPath != "" {
		pcfg := preview.DefaultConfig()
		if showBounds {
			size := grid.Size()
			pcfg.Bounds = &size
		}
		img, err := preview.Render(mesh, pcfg)
		essentials.Must(errors.Wrap(err, "render preview"))
		essentials.Must(errors.Wrap(preview.SavePNG(pngPath, img), "write PNG"))
		log.Println("wrote", pngPath)
	}
}

func buildGrid(cfg isogrid.Config, inputPath string, clearGrid bool) (*isogrid.Grid, error) {
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, errors.Wrap(err, "open grid input")
		}
		defer f.Close()
		grid, err := ReadGrid(f, cfg)
		if err != nil {
			return nil, err
		}
		log.Println("read", grid.Size(), "grid from", inputPath)
		return grid, nil
	}
	grid, err := cfg.NewGrid()
	if err != nil {
		return nil, errors.Wrap(err, "create grid")
	}
	if clearGrid {
		_, hi := grid.Range()
		grid.Clear(hi)
		log.Println("cleared", grid.Size(), "grid")
		return grid, nil
	}
	grid.Sample(isogrid.Terrain, cfg.Zoom, cfg.Seed)
	log.Println("sampled terrain on", grid.Size(), "grid with seed", cfg.Seed)
	return grid, nil
}
