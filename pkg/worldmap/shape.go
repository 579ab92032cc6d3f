package worldmap

import (
	"strconv"
	"strings"
)

// Shape is the visual category of a location in the diagram.
type Shape int

const (
	Rectangle Shape = iota
	Rounded
	Circle
	Rhombus
	Hexagon
	Stadium
	Subroutine
	Cylinder
	DoubleCircle
	Asymmetric
)

// shapeInfo pairs a shape's name with its Mermaid bracket template.
type shapeInfo struct {
	name  string
	open  string
	close string
}

// catalog is indexed by Shape. Every Shape constant must have an entry.
var catalog = [...]shapeInfo{
	Rectangle:    {"rectangle", "[", "]"},
	Rounded:      {"rounded", "(", ")"},
	Circle:       {"circle", "((", "))"},
	Rhombus:      {"rhombus", "{", "}"},
	Hexagon:      {"hexagon", "{{", "}}"},
	Stadium:      {"stadium", "([", "])"},
	Subroutine:   {"subroutine", "[[", "]]"},
	Cylinder:     {"cylinder", "[(", ")]"},
	DoubleCircle: {"double-circle", "(((", ")))"},
	Asymmetric:   {"asymmetric", ">", "]"},
}

// Shapes returns every shape in the catalog, in declaration order.
func Shapes() []Shape {
	shapes := make([]Shape, len(catalog))
	for i := range catalog {
		shapes[i] = Shape(i)
	}
	return shapes
}

// Valid reports whether s is one of the catalog shapes.
func (s Shape) Valid() bool { return s >= 0 && int(s) < len(catalog) }

// String returns the shape's lower-case name, e.g. "double-circle".
func (s Shape) String() string {
	if !s.Valid() {
		return "Shape(" + strconv.Itoa(int(s)) + ")"
	}
	return catalog[s].name
}

// Brackets returns the opening and closing Mermaid brackets for s.
// Shapes outside the catalog fall back to the rectangle brackets.
func (s Shape) Brackets() (open, close string) {
	if !s.Valid() {
		s = Rectangle
	}
	return catalog[s].open, catalog[s].close
}

// Wrap sanitizes label and wraps it, quoted, in the shape's brackets:
//
//	Circle.Wrap("Home Town") == `(("Home Town"))`
func (s Shape) Wrap(label string) string {
	open, close := s.Brackets()
	return open + `"` + Sanitize(label) + `"` + close
}

// ParseShape resolves a shape name case-insensitively. Hyphens, underscores
// and spaces are ignored, so "double-circle", "double_circle" and
// "DoubleCircle" all resolve to [DoubleCircle].
func ParseShape(name string) (Shape, bool) {
	key := normalizeShapeName(name)
	for i, info := range catalog {
		if normalizeShapeName(info.name) == key {
			return Shape(i), true
		}
	}
	return 0, false
}

func normalizeShapeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
