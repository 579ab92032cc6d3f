// Package io reads world definitions and writes diagram text for world maps.
//
// # World Files
//
// A world file is TOML with two arrays of tables. Locations are added in
// file order, so the first location gets index 0:
//
//	[[location]]
//	name = "Home Town"
//	shape = "circle"
//
//	[[location]]
//	name = "Enchanted Forest"
//	shape = "stadium"
//
//	[[path]]
//	from = "Home Town"
//	to = "Enchanted Forest"
//	minutes = 15
//	oneway = false
//
// Paths are bidirectional unless oneway is true. Shape names are resolved
// with [worldmap.ParseShape]; an empty shape means rectangle.
//
// # Import
//
// Use [ImportWorld] to read a world from a file path, or [ReadWorld] to read
// from any io.Reader:
//
//	m, err := io.ImportWorld("world.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Unlike [worldmap.Map.AddNode], the loader rejects duplicate location names
// instead of letting the newer location shadow the older one. Unknown keys,
// unknown shapes, paths naming missing locations and negative weights are
// reported as [errors.Error] values with a code describing the problem.
//
// # Export
//
// Use [ExportDiagram] to write a diagram to a file, or [WriteDiagram] to
// write to any io.Writer. Only text formats live here ([FormatMermaid] and
// [FormatDOT]); SVG rendering goes through the nodelink package.
//
// There is deliberately no world writer: the in-memory map is the only
// state, and diagrams are its only output.
//
// [errors.Error]: github.com/matzehuels/xrpg/pkg/errors.Error
package io
