package worldmap

import (
	"slices"
	"testing"
)

// scenario builds the canonical five-location map used across tests.
func scenario(t *testing.T) (m *Map, town, dungeon, cave, forest, castle int) {
	t.Helper()
	m = New()
	town = m.AddNode("Home Town", Circle)
	dungeon = m.AddNode("Dark Dungeon", Asymmetric)
	cave = m.AddNode("Dragon's Cave", Rhombus)
	forest = m.AddNode("Enchanted Forest", Stadium)
	castle = m.AddNode("Royal Castle", Hexagon)

	m.AddBidirectionalPath(town, forest, 15)
	m.AddBidirectionalPath(town, castle, 25)
	m.AddPath(forest, dungeon, 45)
	m.AddBidirectionalPath(dungeon, cave, 30)
	m.AddBidirectionalPath(castle, dungeon, 10)
	return
}

func TestAddNodeIndices(t *testing.T) {
	m := New()
	for i, name := range []string{"a", "b", "c"} {
		if got := m.AddNode(name, Rectangle); got != i {
			t.Errorf("AddNode(%q) = %d, want %d", name, got, i)
		}
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestIndex(t *testing.T) {
	m := New()
	a := m.AddNode("a", Rectangle)

	if got, ok := m.Index("a"); !ok || got != a {
		t.Errorf("Index(a) = %d, %v; want %d, true", got, ok, a)
	}
	if _, ok := m.Index("missing"); ok {
		t.Error("Index(missing) should report not found")
	}

	m.RemoveNode(a)
	if _, ok := m.Index("a"); ok {
		t.Error("Index should not resolve a removed location")
	}
}

func TestAddNodeNameCollision(t *testing.T) {
	m := New()
	first := m.AddNode("dup", Rectangle)
	other := m.AddNode("other", Rectangle)
	m.AddPath(first, other, 5)
	second := m.AddNode("dup", Circle)

	if got, _ := m.Index("dup"); got != second {
		t.Errorf("Index(dup) = %d, want newest %d", got, second)
	}
	if !m.HasDirectedPath(first, other) {
		t.Error("shadowed location should keep its edges")
	}
	if loc, _ := m.Location(first); loc.Removed {
		t.Error("shadowed location should stay active")
	}

	// Removing the shadowed location must not unmap the newer one.
	m.RemoveNode(first)
	if got, ok := m.Index("dup"); !ok || got != second {
		t.Errorf("Index(dup) after removing shadowed = %d, %v; want %d, true", got, ok, second)
	}
}

func TestAddPathOutOfRange(t *testing.T) {
	m := New()
	a := m.AddNode("a", Rectangle)

	m.AddPath(a, 7, 1)
	m.AddPath(-1, a, 1)
	m.AddBidirectionalPath(a, 3, 1)

	if n := m.Neighbors(a); len(n) != 0 {
		t.Errorf("Neighbors(a) = %v, want empty", n)
	}
	if m.HasDirectedPath(-1, a) || m.HasDirectedPath(a, 7) {
		t.Error("out-of-range paths should not exist")
	}
}

func TestAddPathOverwrites(t *testing.T) {
	m := New()
	a := m.AddNode("a", Rectangle)
	b := m.AddNode("b", Rectangle)

	m.AddPath(a, b, 10)
	m.AddPath(a, b, 20)

	if w, ok := m.Weight(a, b); !ok || w != 20 {
		t.Errorf("Weight(a, b) = %d, %v; want 20, true", w, ok)
	}
	if got := len(m.Paths()); got != 1 {
		t.Errorf("len(Paths()) = %d, want 1", got)
	}
}

func TestBidirectional(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		w    int
	}{
		{"distinct", 0, 1, 5},
		{"reversed", 2, 0, 9},
		{"self loop", 1, 1, 3},
		{"zero weight", 1, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.AddNode("x", Rectangle)
			m.AddNode("y", Rectangle)
			m.AddNode("z", Rectangle)

			m.AddBidirectionalPath(tt.a, tt.b, tt.w)
			if !m.IsBidirectional(tt.a, tt.b) {
				t.Error("IsBidirectional should be true")
			}
			if !m.HasDirectedPath(tt.a, tt.b) || !m.HasDirectedPath(tt.b, tt.a) {
				t.Error("both directions should exist")
			}
		})
	}
}

func TestBidirectionalSymmetryBreaks(t *testing.T) {
	m := New()
	a := m.AddNode("a", Rectangle)
	b := m.AddNode("b", Rectangle)
	m.AddBidirectionalPath(a, b, 10)

	m.AddPath(b, a, 99)
	if w, _ := m.Weight(a, b); w != 10 {
		t.Errorf("forward weight = %d, want 10", w)
	}
	if !m.IsBidirectional(a, b) {
		t.Error("pair should still be bidirectional after reweighting one side")
	}

	if !m.RemoveDirectedPath(b, a) {
		t.Error("RemoveDirectedPath(b, a) should report the edge existed")
	}
	if m.IsBidirectional(a, b) {
		t.Error("pair should no longer be bidirectional")
	}
	if !m.HasDirectedPath(a, b) {
		t.Error("forward edge should survive removal of the reverse edge")
	}
}

func TestRemoveDirectedPath(t *testing.T) {
	m := New()
	a := m.AddNode("a", Rectangle)
	b := m.AddNode("b", Rectangle)
	m.AddPath(a, b, 1)

	if !m.RemoveDirectedPath(a, b) {
		t.Error("first removal should return true")
	}
	if m.RemoveDirectedPath(a, b) {
		t.Error("second removal should return false")
	}
	if m.RemoveDirectedPath(42, b) {
		t.Error("out-of-range removal should return false")
	}
}

func TestRemoveBidirectionalPathPartial(t *testing.T) {
	m := New()
	a := m.AddNode("a", Rectangle)
	b := m.AddNode("b", Rectangle)
	m.AddPath(b, a, 1)

	m.RemoveBidirectionalPath(a, b)
	if m.HasDirectedPath(b, a) || m.HasDirectedPath(a, b) {
		t.Error("both directions should be gone")
	}
}

func TestRemoveNode(t *testing.T) {
	m, town, dungeon, cave, forest, castle := scenario(t)

	m.RemoveNode(dungeon)

	if _, ok := m.Index("Dark Dungeon"); ok {
		t.Error("removed name should not resolve")
	}
	if n := m.Neighbors(dungeon); len(n) != 0 {
		t.Errorf("Neighbors(dungeon) = %v, want empty", n)
	}
	for _, idx := range []int{town, cave, forest, castle} {
		if slices.Contains(m.Neighbors(idx), dungeon) {
			t.Errorf("Neighbors(%d) still contains removed %d", idx, dungeon)
		}
	}
	if !m.IsBidirectional(town, forest) || !m.IsBidirectional(town, castle) {
		t.Error("edges between other locations must be untouched")
	}
	if loc, ok := m.Location(dungeon); !ok || !loc.Removed || loc.Name != "Dark Dungeon" {
		t.Errorf("Location(dungeon) = %+v, %v; want retained tombstone", loc, ok)
	}
}

func TestRemoveNodeIdempotent(t *testing.T) {
	once, _, dungeon, _, _, _ := scenario(t)
	twice, _, _, _, _, _ := scenario(t)

	once.RemoveNode(dungeon)
	twice.RemoveNode(dungeon)
	twice.RemoveNode(dungeon)

	if once.Mermaid() != twice.Mermaid() {
		t.Error("removing twice should match removing once")
	}
	if once.Len() != twice.Len() {
		t.Errorf("Len() = %d vs %d", once.Len(), twice.Len())
	}
}

func TestRemoveNodeOutOfRange(t *testing.T) {
	m, _, _, _, _, _ := scenario(t)
	before := m.Mermaid()

	m.RemoveNode(-1)
	m.RemoveNode(m.Len())

	if m.Mermaid() != before {
		t.Error("out-of-range RemoveNode should be a no-op")
	}
}

func TestIndicesNotReused(t *testing.T) {
	m, _, dungeon, _, _, _ := scenario(t)
	m.RemoveNode(dungeon)

	if got := m.AddNode("River Village", Rounded); got != 5 {
		t.Errorf("AddNode after removal = %d, want 5", got)
	}
}

func TestPathToRemovedUntilSweep(t *testing.T) {
	m := New()
	a := m.AddNode("a", Rectangle)
	b := m.AddNode("b", Rectangle)
	m.RemoveNode(b)

	// Edges may point at a tombstone; they are hidden from Paths.
	m.AddPath(a, b, 3)
	if !m.HasDirectedPath(a, b) {
		t.Error("AddPath should not validate removed endpoints")
	}
	if len(m.Paths()) != 0 {
		t.Errorf("Paths() = %v, want none", m.Paths())
	}
}

func TestNeighborsSorted(t *testing.T) {
	m := New()
	hub := m.AddNode("hub", Rectangle)
	for i := 0; i < 10; i++ {
		m.AddNode(string(rune('a'+i)), Rectangle)
	}
	for _, to := range []int{7, 2, 9, 1, 5} {
		m.AddPath(hub, to, to)
	}

	want := []int{1, 2, 5, 7, 9}
	if got := m.Neighbors(hub); !slices.Equal(got, want) {
		t.Errorf("Neighbors(hub) = %v, want %v", got, want)
	}
}

func TestScenarioQueries(t *testing.T) {
	m, town, dungeon, _, forest, castle := scenario(t)

	if !m.IsBidirectional(town, forest) {
		t.Error("Town<->Forest should be bidirectional")
	}
	if m.IsBidirectional(forest, dungeon) {
		t.Error("Forest->Dungeon should be one-way")
	}

	m.RemoveDirectedPath(forest, dungeon)
	if m.HasDirectedPath(forest, dungeon) {
		t.Error("Forest->Dungeon should be gone")
	}

	m.RemoveNode(dungeon)
	if slices.Contains(m.Neighbors(castle), dungeon) {
		t.Error("Castle should no longer reach Dungeon")
	}
}

func TestLocationsAndPaths(t *testing.T) {
	m, town, dungeon, _, forest, _ := scenario(t)
	m.RemoveNode(dungeon)

	locs := m.Locations()
	if len(locs) != 4 {
		t.Fatalf("len(Locations()) = %d, want 4", len(locs))
	}
	for i := 1; i < len(locs); i++ {
		if locs[i-1].Index >= locs[i].Index {
			t.Errorf("Locations() not in index order: %v", locs)
		}
	}

	paths := m.Paths()
	want := []Path{
		{From: town, To: forest, Minutes: 15},
		{From: town, To: 4, Minutes: 25},
		{From: forest, To: town, Minutes: 15},
		{From: 4, To: town, Minutes: 25},
	}
	if !slices.Equal(paths, want) {
		t.Errorf("Paths() = %v, want %v", paths, want)
	}
}
