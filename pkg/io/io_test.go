package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/xrpg/pkg/errors"
	"github.com/matzehuels/xrpg/pkg/worldmap"
)

const sampleWorld = `
[[location]]
name = "Home Town"
shape = "circle"

[[location]]
name = "Dark Dungeon"
shape = "asymmetric"

[[location]]
name = "Enchanted Forest"
shape = "stadium"

[[location]]
name = "Signpost"

[[path]]
from = "Home Town"
to = "Enchanted Forest"
minutes = 15

[[path]]
from = "Enchanted Forest"
to = "Dark Dungeon"
minutes = 45
oneway = true
`

func TestReadWorld(t *testing.T) {
	m, err := ReadWorld(strings.NewReader(sampleWorld))
	if err != nil {
		t.Fatalf("ReadWorld() error: %v", err)
	}

	if m.Len() != 4 {
		t.Errorf("Len() = %d, want 4", m.Len())
	}

	town, _ := m.Index("Home Town")
	dungeon, _ := m.Index("Dark Dungeon")
	forest, _ := m.Index("Enchanted Forest")
	if town != 0 || dungeon != 1 || forest != 2 {
		t.Errorf("indices = %d, %d, %d; want file order", town, dungeon, forest)
	}

	if !m.IsBidirectional(town, forest) {
		t.Error("paths should default to bidirectional")
	}
	if !m.HasDirectedPath(forest, dungeon) || m.HasDirectedPath(dungeon, forest) {
		t.Error("oneway path should only exist forward")
	}
	if w, _ := m.Weight(forest, dungeon); w != 45 {
		t.Errorf("Weight = %d, want 45", w)
	}

	loc, _ := m.Location(3)
	if loc.Shape != worldmap.Rectangle {
		t.Errorf("default shape = %v, want rectangle", loc.Shape)
	}
}

func TestReadWorldErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{
			name:  "malformed",
			input: `[[location]`,
			code:  errors.ErrCodeInvalidInput,
		},
		{
			name:  "unknown key",
			input: "[[location]]\nname = \"a\"\ncolour = \"red\"\n",
			code:  errors.ErrCodeInvalidInput,
		},
		{
			name:  "unknown shape",
			input: "[[location]]\nname = \"a\"\nshape = \"triangle\"\n",
			code:  errors.ErrCodeInvalidShape,
		},
		{
			name:  "empty name",
			input: "[[location]]\nname = \"\"\n",
			code:  errors.ErrCodeInvalidName,
		},
		{
			name:  "duplicate name",
			input: "[[location]]\nname = \"a\"\n[[location]]\nname = \"a\"\n",
			code:  errors.ErrCodeDuplicateLocation,
		},
		{
			name:  "unknown endpoint",
			input: "[[location]]\nname = \"a\"\n[[path]]\nfrom = \"a\"\nto = \"b\"\nminutes = 1\n",
			code:  errors.ErrCodeUnknownLocation,
		},
		{
			name:  "negative minutes",
			input: "[[location]]\nname = \"a\"\n[[location]]\nname = \"b\"\n[[path]]\nfrom = \"a\"\nto = \"b\"\nminutes = -5\n",
			code:  errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadWorld(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ReadWorld() expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestImportWorld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.toml")
	if err := os.WriteFile(path, []byte(sampleWorld), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := ImportWorld(path)
	if err != nil {
		t.Fatalf("ImportWorld() error: %v", err)
	}
	if len(m.Locations()) != 4 {
		t.Errorf("len(Locations()) = %d, want 4", len(m.Locations()))
	}
}

func TestImportWorldNotFound(t *testing.T) {
	_, err := ImportWorld(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportWorld() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestWriteDiagram(t *testing.T) {
	m, err := ReadWorld(strings.NewReader(sampleWorld))
	if err != nil {
		t.Fatal(err)
	}

	var mermaid bytes.Buffer
	if err := WriteDiagram(m, FormatMermaid, &mermaid); err != nil {
		t.Fatalf("WriteDiagram(mermaid) error: %v", err)
	}
	if mermaid.String() != m.Mermaid() {
		t.Error("WriteDiagram(mermaid) should match Map.Mermaid")
	}

	var dot bytes.Buffer
	if err := WriteDiagram(m, FormatDOT, &dot); err != nil {
		t.Fatalf("WriteDiagram(dot) error: %v", err)
	}
	if !strings.HasPrefix(dot.String(), "digraph world {") {
		t.Errorf("WriteDiagram(dot) = %q", dot.String())
	}

	if err := WriteDiagram(m, "png", &dot); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("WriteDiagram(png) error = %v, want INVALID_FORMAT", err)
	}
}

func TestExportDiagram(t *testing.T) {
	m, err := ReadWorld(strings.NewReader(sampleWorld))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "world.mmd")
	if err := ExportDiagram(m, FormatMermaid, path); err != nil {
		t.Fatalf("ExportDiagram() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != m.Mermaid() {
		t.Error("exported file should contain the Mermaid diagram")
	}
}

func TestImportExampleWorld(t *testing.T) {
	m, err := ImportWorld(filepath.Join("..", "..", "examples", "world.toml"))
	if err != nil {
		t.Fatalf("ImportWorld() error: %v", err)
	}

	got := m.Mermaid()
	for _, line := range []string{
		`    1>"Dark Dungeon"]`,
		`    2{"Dragon's Cave"}`,
		"    0 <--> |15 min| 3\n",
		"    1 <--> |10 min| 4\n",
		"    3 --> |45 min| 1\n",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("Mermaid() missing %q:\n%s", line, got)
		}
	}
}
