package isogrid

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Size != (V3i{20, 10, 20}) || cfg.Zoom != 1 || cfg.Isolevel != 0.5 ||
		cfg.Strength != 2 || cfg.Range != [2]float64{0, 1} {
		t.Errorf("unexpected default config %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	g, err := cfg.NewGrid()
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != cfg.Size {
		t.Errorf("grid size %v", g.Size())
	}
	b := cfg.Brush(3, true)
	if b.Strength != 2 || b.Radius != 3 || !b.Erase {
		t.Errorf("unexpected brush %+v", b)
	}
}

func TestConfigValidate(t *testing.T) {
	for _, test := range []struct {
		name   string
		modify func(*Config)
	}{
		{name: "zero width", modify: func(c *Config) { c.Size[0] = 0 }},
		{name: "negative depth", modify: func(c *Config) { c.Size[2] = -1 }},
		{name: "zero zoom", modify: func(c *Config) { c.Zoom = 0 }},
		{name: "inf zoom", modify: func(c *Config) { c.Zoom = math.Inf(1) }},
		{name: "nan isolevel", modify: func(c *Config) { c.Isolevel = math.NaN() }},
		{name: "negative strength", modify: func(c *Config) { c.Strength = -1 }},
		{name: "inf strength", modify: func(c *Config) { c.Strength = math.Inf(1) }},
		{name: "nan strength", modify: func(c *Config) { c.Strength = math.NaN() }},
		{name: "inverted range", modify: func(c *Config) { c.Range = [2]float64{1, 0} }},
		{name: "nan range", modify: func(c *Config) { c.Range[1] = math.NaN() }},
	} {
		cfg := DefaultConfig()
		test.modify(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected error", test.name)
			continue
		}
		if !errors.Is(err, ErrBadConfig) {
			t.Errorf("%s: error %v does not wrap ErrBadConfig", test.name, err)
		}
		if g, err := cfg.NewGrid(); err == nil || g != nil {
			t.Errorf("%s: NewGrid accepted invalid config", test.name)
		}
	}
}

func TestConfigRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Range = [2]float64{-2, 3}
	g, err := cfg.NewGrid()
	if err != nil {
		t.Fatal(err)
	}
	if lo, hi := g.Range(); lo != -2 || hi != 3 {
		t.Errorf("grid range [%g,%g]", lo, hi)
	}
}
