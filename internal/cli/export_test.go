package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/xrpg/pkg/errors"
)

const testWorld = `
[[location]]
name = "Home Town"
shape = "circle"

[[location]]
name = "Dark Dungeon"
shape = "asymmetric"

[[location]]
name = "Enchanted Forest"
shape = "stadium"

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

func writeWorld(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.toml")
	if err := os.WriteFile(path, []byte(testWorld), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExportMermaid(t *testing.T) {
	out, err := execute(t, "export", writeWorld(t))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, want := range []string{
		"graph LR\n",
		`    0(("Home Town"))`,
		"    0 <--> |15 min| 2\n",
		"    2 --> |45 min| 1\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExportRemove(t *testing.T) {
	out, err := execute(t, "export", writeWorld(t), "--remove", "Dark Dungeon")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.Contains(out, "Dark Dungeon") || strings.Contains(out, "45 min") {
		t.Errorf("removed location still exported:\n%s", out)
	}

	_, err = execute(t, "export", writeWorld(t), "--remove", "Atlantis")
	if !errors.Is(err, errors.ErrCodeUnknownLocation) {
		t.Errorf("unknown --remove error = %v, want UNKNOWN_LOCATION", err)
	}
}

func TestExportDOT(t *testing.T) {
	out, err := execute(t, "export", writeWorld(t), "-f", "dot", "--detailed")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(out, "digraph") || !strings.Contains(out, "#1 Dark Dungeon") {
		t.Errorf("unexpected DOT output:\n%s", out)
	}
}

func TestExportToFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "world.mmd")
	if _, err := execute(t, "export", writeWorld(t), "-o", target); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "graph LR\n") {
		t.Errorf("file content = %q", data)
	}
}

func TestExportSVG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	out, err := execute(t, "export", writeWorld(t), "-f", "svg")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "<svg") {
		t.Error("output is not SVG")
	}

	again, err := execute(t, "export", writeWorld(t), "-f", "svg")
	if err != nil {
		t.Fatalf("cached export: %v", err)
	}
	if again != out {
		t.Error("cached SVG differs from the first render")
	}
}

func TestExportErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad format", []string{"export", "world.toml", "-f", "png"}, errors.ErrCodeInvalidFormat},
		{"missing file", []string{"export", filepath.Join(t.TempDir(), "nope.toml")}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}
