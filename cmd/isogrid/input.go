package main

import (
	"encoding/json"
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/soypat/isogrid"
)

// ReadGrid reads lattice values as a JSON array with z on the outer dimension, then y,
// then x. An array of (D+1)×(H+1)×(W+1) values produces a grid of W×H×D cells.
// Values are stored unclamped; cfg supplies the clamp range of later edits.
func ReadGrid(r io.Reader, cfg isogrid.Config) (*isogrid.Grid, error) {
	var object [][][]float64
	dec := json.NewDecoder(r)
	if err := dec.Decode(&object); err != nil {
		return nil, errors.Wrap(err, "read grid")
	}
	if len(object) < 2 || len(object[0]) < 2 || len(object[0][0]) < 2 {
		return nil, errors.New("read grid: need at least 2 points along each axis")
	}
	cfg.Size = isogrid.V3i{len(object[0][0]) - 1, len(object[0]) - 1, len(object) - 1}
	grid, err := cfg.NewGrid()
	if err != nil {
		return nil, errors.Wrap(err, "read grid")
	}
	if err := grid.SetRange(math.Inf(-1), math.Inf(1)); err != nil {
		return nil, err
	}
	for z, yPlane := range object {
		if len(yPlane) != cfg.Size[1]+1 {
			return nil, errors.New("read grid: invalid dimensions")
		}
		for y, xLine := range yPlane {
			if len(xLine) != cfg.Size[0]+1 {
				return nil, errors.New("read grid: invalid dimensions")
			}
			for x, v := range xLine {
				if math.IsNaN(v) {
					return nil, errors.Errorf("read grid: NaN value at %d,%d,%d", x, y, z)
				}
				grid.Set(isogrid.V3i{x, y, z}, v)
			}
		}
	}
	if err := grid.SetRange(cfg.Range[0], cfg.Range[1]); err != nil {
		return nil, err
	}
	return grid, nil
}
