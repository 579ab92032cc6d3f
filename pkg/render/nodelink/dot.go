package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/xrpg/pkg/observability"
	"github.com/matzehuels/xrpg/pkg/worldmap"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed prefixes each label with the location index.
	// When false, only the location name is shown.
	Detailed bool
}

// dotShapes maps each catalog shape to a Graphviz shape and extra style.
var dotShapes = map[worldmap.Shape][2]string{
	worldmap.Rectangle:    {"box", ""},
	worldmap.Rounded:      {"box", "rounded"},
	worldmap.Circle:       {"circle", ""},
	worldmap.Rhombus:      {"diamond", ""},
	worldmap.Hexagon:      {"hexagon", ""},
	worldmap.Stadium:      {"ellipse", ""},
	worldmap.Subroutine:   {"component", ""},
	worldmap.Cylinder:     {"cylinder", ""},
	worldmap.DoubleCircle: {"doublecircle", ""},
	worldmap.Asymmetric:   {"cds", ""},
}

// ToDOT converts a world map to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Removed locations and edges touching them are left out. A bidirectional
// pair becomes a single edge with dir=both carrying the forward weight.
func ToDOT(m *worldmap.Map, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph world {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fillcolor=\"#f9f9f9\", color=\"#333333\", penwidth=2, fontsize=14];\n")
	buf.WriteString("  edge [color=\"#666666\", penwidth=2, fontsize=12];\n")
	buf.WriteString("\n")

	for _, loc := range m.Locations() {
		fmt.Fprintf(&buf, "  %d [%s];\n", loc.Index, strings.Join(fmtAttrs(loc, opts), ", "))
	}

	buf.WriteString("\n")
	type pair struct{ from, to int }
	drawn := make(map[pair]bool)
	for _, p := range m.Paths() {
		if drawn[pair{p.From, p.To}] {
			continue
		}
		drawn[pair{p.From, p.To}] = true
		attrs := fmt.Sprintf("label=%q", fmt.Sprintf("%d min", p.Minutes))
		if m.IsBidirectional(p.From, p.To) {
			drawn[pair{p.To, p.From}] = true
			attrs += ", dir=both"
		}
		fmt.Fprintf(&buf, "  %d -> %d [%s];\n", p.From, p.To, attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(loc worldmap.Location, detailed bool) string {
	if !detailed {
		return loc.Name
	}
	return fmt.Sprintf("#%d %s", loc.Index, loc.Name)
}

func fmtAttrs(loc worldmap.Location, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(loc, opts.Detailed))}
	shape, ok := dotShapes[loc.Shape]
	if !ok {
		shape = dotShapes[worldmap.Rectangle]
	}
	attrs = append(attrs, "shape="+shape[0])
	if shape[1] != "" {
		attrs = append(attrs, fmt.Sprintf("style=%q", shape[1]+",filled"))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Render start and completion are reported to [observability.Render].
func RenderSVG(ctx context.Context, dot string) (svg []byte, err error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, "svg")
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, "svg", len(svg), time.Since(start), err) }()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the drawing scales from a
// zero origin with explicit width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
