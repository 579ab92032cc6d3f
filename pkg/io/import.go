package io

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/xrpg/pkg/errors"
	"github.com/matzehuels/xrpg/pkg/worldmap"
)

type world struct {
	Locations []location `toml:"location"`
	Paths     []path     `toml:"path"`
}

type location struct {
	Name  string `toml:"name"`
	Shape string `toml:"shape"`
}

type path struct {
	From    string `toml:"from"`
	To      string `toml:"to"`
	Minutes int    `toml:"minutes"`
	OneWay  bool   `toml:"oneway"`
}

// ReadWorld decodes a TOML world definition from r into a new map.
//
// ReadWorld returns an error if:
//   - The TOML is malformed or contains keys the format does not define
//   - A location name is empty, contains control characters or repeats
//   - A shape name is not in the catalog
//   - A path names a location that was not declared
//   - A path has negative minutes
//
// ReadWorld does not close r.
func ReadWorld(r io.Reader) (*worldmap.Map, error) {
	var data world
	md, err := toml.NewDecoder(r).Decode(&data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode world")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown keys: %s", strings.Join(keys, ", "))
	}

	m := worldmap.New()
	for i, loc := range data.Locations {
		if err := addLocation(m, loc); err != nil {
			return nil, fmt.Errorf("location %d: %w", i, err)
		}
	}
	for _, p := range data.Paths {
		if err := addPath(m, p); err != nil {
			return nil, fmt.Errorf("path %s->%s: %w", p.From, p.To, err)
		}
	}
	return m, nil
}

func addLocation(m *worldmap.Map, loc location) error {
	if err := errors.ValidateLocationName(loc.Name); err != nil {
		return err
	}
	if _, exists := m.Index(loc.Name); exists {
		return errors.New(errors.ErrCodeDuplicateLocation, "duplicate location %q", loc.Name)
	}

	shape := worldmap.Rectangle
	if loc.Shape != "" {
		s, ok := worldmap.ParseShape(loc.Shape)
		if !ok {
			return errors.New(errors.ErrCodeInvalidShape, "unknown shape %q for %q", loc.Shape, loc.Name)
		}
		shape = s
	}
	m.AddNode(loc.Name, shape)
	return nil
}

func addPath(m *worldmap.Map, p path) error {
	from, ok := m.Index(p.From)
	if !ok {
		return errors.New(errors.ErrCodeUnknownLocation, "unknown location %q", p.From)
	}
	to, ok := m.Index(p.To)
	if !ok {
		return errors.New(errors.ErrCodeUnknownLocation, "unknown location %q", p.To)
	}
	if err := errors.ValidateMinutes(p.Minutes); err != nil {
		return err
	}

	if p.OneWay {
		m.AddPath(from, to, p.Minutes)
	} else {
		m.AddBidirectionalPath(from, to, p.Minutes)
	}
	return nil
}

// ImportWorld reads a TOML world file at path and returns the built map.
//
// ImportWorld opens the file, decodes it using [ReadWorld], and closes the
// file. A missing file is reported with [errors.ErrCodeFileNotFound].
func ImportWorld(path string) (*worldmap.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := ReadWorld(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
