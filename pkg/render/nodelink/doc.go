// Package nodelink renders world maps as Graphviz node-link diagrams.
//
// # Overview
//
// This is the second export path next to the Mermaid text produced by the
// worldmap package. It emits Graphviz DOT, which can be rendered in-process
// to SVG with [RenderSVG] or handed to external Graphviz tools.
//
// # Usage
//
//	dot := nodelink.ToDOT(m, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # DOT Format
//
// The generated DOT uses left-to-right layout (rankdir=LR), matching the
// Mermaid output. Node IDs are the location indices, so the two formats can
// be compared line by line. Edge selection follows the Mermaid rules
// exactly: active endpoints only, ascending (from, to) order, and one edge
// with dir=both per bidirectional pair, labeled with the forward weight.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
