// Package worldmap provides the world-map graph: named, shaped locations
// connected by weighted directed paths, with deterministic export to Mermaid
// flowchart text.
//
// # Overview
//
// A [Map] owns an append-only list of [Location] records and, for every
// location, the set of outgoing [Path] edges keyed by destination index.
// Locations are identified by a dense integer index assigned in creation
// order, starting at 0. Indices are never reused: [Map.RemoveNode] marks the
// location as removed (a tombstone) and drops its edges, but the slot stays
// allocated so that every other index keeps its meaning.
//
// # Basic Usage
//
//	m := worldmap.New()
//	town := m.AddNode("Home Town", worldmap.Circle)
//	forest := m.AddNode("Enchanted Forest", worldmap.Stadium)
//	m.AddBidirectionalPath(town, forest, 15)
//	fmt.Print(m.Mermaid())
//
// # Paths
//
// Paths are directed. A→B and B→A are independent edges with independent
// weights; "bidirectional" is only the derived predicate [Map.IsBidirectional].
// Re-adding an edge for the same ordered pair overwrites its weight.
//
// # Error Handling
//
// No operation in this package fails. Out-of-range indices make mutations a
// no-op and queries return false, "not found" or an empty result. Callers
// check return values instead of errors.
//
// # Diagram Output
//
// [Map.Mermaid] walks nodes and edges in ascending index order so that two
// maps built by the same sequence of operations produce byte-identical text.
// A bidirectional pair is drawn once with the forward direction's weight; if
// the reverse weight differs it does not appear in the diagram.
//
// # Concurrency
//
// Map is not safe for concurrent use. A host that shares a Map between
// goroutines must guard the whole Map with a single lock; node removal
// touches every adjacency entry, so finer-grained locking buys nothing.
package worldmap
