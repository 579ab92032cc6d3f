package worldmap

import (
	"maps"
	"slices"
)

// Location is a named, shaped point on the map.
//
// Index is assigned by [Map.AddNode] and never changes. A removed location
// keeps its record and index; only its name lookup and edges are dropped.
type Location struct {
	Index   int
	Name    string
	Shape   Shape
	Removed bool
}

// Path is a directed, weighted connection between two locations.
// Minutes is the travel distance shown on the diagram edge.
type Path struct {
	From    int
	To      int
	Minutes int
}

// Map is a mutable directed graph of locations.
//
// The zero value is not usable - use New to create a Map.
// Map is not safe for concurrent use without external synchronization.
type Map struct {
	nodes  []Location
	byName map[string]int
	adj    []map[int]int // from -> to -> minutes
}

// New creates an empty Map.
func New() *Map {
	return &Map{byName: make(map[string]int)}
}

// AddNode appends a location and returns its index.
//
// AddNode always succeeds. If name already belongs to an active location,
// the name lookup is repointed at the new location: the older location keeps
// its index and edges but can no longer be found with [Map.Index]. Callers
// should avoid adding duplicate names.
func (m *Map) AddNode(name string, shape Shape) int {
	idx := len(m.nodes)
	m.nodes = append(m.nodes, Location{Index: idx, Name: name, Shape: shape})
	m.adj = append(m.adj, make(map[int]int))
	m.byName[name] = idx
	return idx
}

// Index returns the index of the active location with the given name.
// It reports false for unknown or removed names.
func (m *Map) Index(name string) (int, bool) {
	idx, ok := m.byName[name]
	if !ok || m.nodes[idx].Removed {
		return 0, false
	}
	return idx, true
}

// AddPath inserts or overwrites the directed edge from→to.
// It is a no-op if either index is out of range. Removed endpoints are not
// rejected; the edge is dropped by the next removal sweep or hidden on export.
func (m *Map) AddPath(from, to, minutes int) {
	if !m.inRange(from) || !m.inRange(to) {
		return
	}
	m.adj[from][to] = minutes
}

// AddBidirectionalPath adds a→b and b→a with the same weight.
// The two edges are stored independently; editing one later does not touch
// the other.
func (m *Map) AddBidirectionalPath(a, b, minutes int) {
	m.AddPath(a, b, minutes)
	m.AddPath(b, a, minutes)
}

// HasDirectedPath reports whether the edge from→to exists, regardless of
// whether either endpoint has been removed.
func (m *Map) HasDirectedPath(from, to int) bool {
	if !m.inRange(from) {
		return false
	}
	_, ok := m.adj[from][to]
	return ok
}

// IsBidirectional reports whether both a→b and b→a exist.
func (m *Map) IsBidirectional(a, b int) bool {
	return m.HasDirectedPath(a, b) && m.HasDirectedPath(b, a)
}

// Weight returns the minutes on the edge from→to.
func (m *Map) Weight(from, to int) (int, bool) {
	if !m.inRange(from) {
		return 0, false
	}
	w, ok := m.adj[from][to]
	return w, ok
}

// RemoveDirectedPath removes the edge from→to and reports whether it existed.
func (m *Map) RemoveDirectedPath(from, to int) bool {
	if !m.HasDirectedPath(from, to) {
		return false
	}
	delete(m.adj[from], to)
	return true
}

// RemoveBidirectionalPath removes a→b and b→a. Either direction may be
// missing without affecting the other.
func (m *Map) RemoveBidirectionalPath(a, b int) {
	m.RemoveDirectedPath(a, b)
	m.RemoveDirectedPath(b, a)
}

// RemoveNode marks the location removed, drops its name lookup, clears its
// outgoing edges and deletes every edge pointing at it. It is a no-op for
// out-of-range or already removed indices.
//
// Edges between other locations are untouched. The slot itself is never
// reclaimed, so repeated add/remove cycles grow the map without bound.
// This is an O(N+E) operation.
func (m *Map) RemoveNode(idx int) {
	if !m.inRange(idx) || m.nodes[idx].Removed {
		return
	}
	n := &m.nodes[idx]
	n.Removed = true
	if cur, ok := m.byName[n.Name]; ok && cur == idx {
		delete(m.byName, n.Name)
	}
	clear(m.adj[idx])
	for from := range m.adj {
		delete(m.adj[from], idx)
	}
}

// Neighbors returns the destinations of idx's outgoing edges in ascending
// order. It returns nil for out-of-range or removed locations.
func (m *Map) Neighbors(idx int) []int {
	if !m.inRange(idx) || m.nodes[idx].Removed {
		return nil
	}
	return slices.Sorted(maps.Keys(m.adj[idx]))
}

// Len returns the number of allocated slots, removed locations included.
// The next call to AddNode returns Len().
func (m *Map) Len() int { return len(m.nodes) }

// Location returns the record at idx, including removed ones.
func (m *Map) Location(idx int) (Location, bool) {
	if !m.inRange(idx) {
		return Location{}, false
	}
	return m.nodes[idx], true
}

// Locations returns the active locations in index order.
func (m *Map) Locations() []Location {
	out := make([]Location, 0, len(m.nodes))
	for _, n := range m.nodes {
		if !n.Removed {
			out = append(out, n)
		}
	}
	return out
}

// Paths returns every directed edge whose endpoints are both active, ordered
// by source index and then destination index. Both directions of a
// bidirectional pair are included with their own weights.
func (m *Map) Paths() []Path {
	var out []Path
	for from := range m.adj {
		if m.nodes[from].Removed {
			continue
		}
		for _, to := range slices.Sorted(maps.Keys(m.adj[from])) {
			if m.nodes[to].Removed {
				continue
			}
			out = append(out, Path{From: from, To: to, Minutes: m.adj[from][to]})
		}
	}
	return out
}

func (m *Map) inRange(idx int) bool { return idx >= 0 && idx < len(m.nodes) }
