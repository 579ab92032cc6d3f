// Package pkg provides the libraries behind xrpg, a world-map builder for
// role-playing games.
//
// # Overview
//
// A world is a directed graph of named locations joined by paths that take
// some number of minutes to travel. The pkg directory is organized as:
//
//  1. [worldmap] - The map itself: locations, paths, soft removal and Mermaid output
//  2. [io] - TOML world files in, text diagrams out
//  3. [render/nodelink] - Graphviz DOT export and in-process SVG rendering
//  4. [cache] - Artifact cache for rendered SVGs (file, redis or none)
//  5. [errors] - Structured error codes shared by the CLI and the HTTP server
//  6. [observability] - Render, cache and HTTP hooks
//
// # Architecture
//
//	world.toml
//	     ↓
//	[io] ReadWorld
//	     ↓
//	[worldmap] Map (edit: add, remove, query)
//	     ↓
//	Mermaid text  |  [render/nodelink] DOT → SVG (via [cache])
//
// # Quick Start
//
//	m := worldmap.New()
//	town := m.AddNode("Home Town", worldmap.Circle)
//	forest := m.AddNode("Enchanted Forest", worldmap.Stadium)
//	m.AddBidirectionalPath(town, forest, 15)
//	fmt.Print(m.Mermaid())
//
// [worldmap]: https://pkg.go.dev/github.com/matzehuels/xrpg/pkg/worldmap
// [io]: https://pkg.go.dev/github.com/matzehuels/xrpg/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/xrpg/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/matzehuels/xrpg/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/xrpg/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/xrpg/pkg/observability
package pkg
