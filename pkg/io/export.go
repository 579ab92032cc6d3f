package io

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/xrpg/pkg/errors"
	"github.com/matzehuels/xrpg/pkg/render/nodelink"
	"github.com/matzehuels/xrpg/pkg/worldmap"
)

// Text diagram formats understood by [WriteDiagram].
const (
	FormatMermaid = "mermaid"
	FormatDOT     = "dot"
)

// WriteDiagram writes m to w in the given text format.
func WriteDiagram(m *worldmap.Map, format string, w io.Writer) error {
	switch format {
	case FormatMermaid:
		return m.WriteMermaid(w)
	case FormatDOT:
		_, err := io.WriteString(w, nodelink.ToDOT(m, nodelink.Options{}))
		return err
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown diagram format %q", format)
	}
}

// ExportDiagram writes m to a file at path in the given text format.
// This is a convenience wrapper around [WriteDiagram] for file-based output.
func ExportDiagram(m *worldmap.Map, format, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteDiagram(m, format, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
