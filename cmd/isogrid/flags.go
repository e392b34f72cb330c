package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/soypat/isogrid"
	"gonum.org/v1/gonum/spatial/r3"
)

type sizeValue struct{ v *isogrid.V3i }

func (s sizeValue) String() string {
	if s.v == nil {
		return ""
	}
	return fmt.Sprintf("%dx%dx%d", s.v[0], s.v[1], s.v[2])
}

func (s sizeValue) Set(str string) error {
	parts := strings.Split(str, "x")
	if len(parts) != 3 {
		return errors.New("size must be formatted as WxHxD")
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return errors.Wrap(err, "parse size")
		}
		s.v[i] = n
	}
	return nil
}

type rangeValue struct{ v *[2]float64 }

func (r rangeValue) String() string {
	if r.v == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g", r.v[0], r.v[1])
}

func (r rangeValue) Set(str string) error {
	f, err := parseFloats(str, 2)
	if err != nil {
		return errors.Wrap(err, "parse range")
	}
	r.v[0], r.v[1] = f[0], f[1]
	return nil
}

type stroke struct {
	center r3.Vec
	radius float64
}

type strokeList []stroke

func (l *strokeList) String() string {
	if l == nil {
		return ""
	}
	strs := make([]string, len(*l))
	for i, s := range *l {
		strs[i] = fmt.Sprintf("%g,%g,%g,%g", s.center.X, s.center.Y, s.center.Z, s.radius)
	}
	return strings.Join(strs, " ")
}

func (l *strokeList) Set(str string) error {
	f, err := parseFloats(str, 4)
	if err != nil {
		return errors.Wrap(err, "parse brush stroke")
	}
	if f[3] < 0 {
		return errors.New("brush radius must be non-negative")
	}
	*l = append(*l, stroke{center: r3.Vec{X: f[0], Y: f[1], Z: f[2]}, radius: f[3]})
	return nil
}

func parseFloats(str string, n int) ([]float64, error) {
	parts := strings.Split(str, ",")
	if len(parts) != n {
		return nil, errors.Errorf("expected %d comma separated numbers, got %d", n, len(parts))
	}
	result := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		result[i] = f
	}
	return result, nil
}
