package worldmap

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
)

// Mermaid flowchart fragments emitted by [Map.WriteMermaid].
const (
	MermaidHeader = "graph LR"

	arrowBoth = "<-->"
	arrowOne  = "-->"
	indent    = "    "
)

// mermaidStyles are appended to every diagram, empty or not.
var mermaidStyles = []string{
	"classDef default fill:#f9f9f9,stroke:#333,stroke-width:2px",
	"linkStyle default stroke:#666,stroke-width:2px",
}

// Mermaid returns the current map as a Mermaid flowchart document.
func (m *Map) Mermaid() string {
	var buf bytes.Buffer
	_ = m.WriteMermaid(&buf)
	return buf.String()
}

// WriteMermaid writes the current map as a Mermaid flowchart to w.
//
// Active locations are declared in index order. Edges follow in ascending
// (from, to) order; an edge is skipped if either endpoint is removed or the
// pair was already drawn. A bidirectional pair is drawn once, from the lower
// source index, labeled with that direction's weight. The only error
// returned is the first write error from w.
func (m *Map) WriteMermaid(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.line(MermaidHeader)

	for _, n := range m.nodes {
		if n.Removed {
			continue
		}
		ew.line(indent + fmt.Sprintf("%d%s", n.Index, n.Shape.Wrap(n.Name)))
	}

	type pair struct{ from, to int }
	rendered := make(map[pair]bool)
	for from := range m.adj {
		for _, to := range slices.Sorted(maps.Keys(m.adj[from])) {
			if m.nodes[from].Removed || m.nodes[to].Removed || rendered[pair{from, to}] {
				continue
			}
			arrow := arrowOne
			if m.IsBidirectional(from, to) {
				arrow = arrowBoth
				rendered[pair{to, from}] = true
			}
			rendered[pair{from, to}] = true
			ew.line(indent + fmt.Sprintf("%d %s |%d min| %d", from, arrow, m.adj[from][to], to))
		}
	}

	for _, s := range mermaidStyles {
		ew.line(indent + s)
	}
	return ew.err
}

// errWriter remembers the first write error and turns later writes into
// no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) line(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s+"\n")
}
