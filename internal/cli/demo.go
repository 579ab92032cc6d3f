package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/xrpg/pkg/worldmap"
)

// demoCommand creates the demo command, which builds the sample world step
// by step and prints a diagram after each change.
func (c *CLI) demoCommand() *cobra.Command {
	var view bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through building and editing a sample world",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := runDemo(cmd.OutOrStdout())
			if !view {
				return nil
			}
			return runViewer(cmd.Context(), m)
		},
	}

	cmd.Flags().BoolVar(&view, "view", false, "open the final map in the terminal viewer")

	return cmd
}

// runDemo replays the sample session against a fresh map, writing each
// snapshot to w, and returns the final map.
func runDemo(w io.Writer) *worldmap.Map {
	m := worldmap.New()

	town := m.AddNode("Home Town", worldmap.Circle)
	dungeon := m.AddNode("Dark Dungeon", worldmap.Asymmetric)
	cave := m.AddNode("Dragon's Cave", worldmap.Rhombus)
	forest := m.AddNode("Enchanted Forest", worldmap.Stadium)
	castle := m.AddNode("Royal Castle", worldmap.Hexagon)

	m.AddBidirectionalPath(town, forest, 15)
	m.AddBidirectionalPath(town, castle, 25)
	m.AddPath(forest, dungeon, 45)
	m.AddBidirectionalPath(dungeon, cave, 30)
	m.AddBidirectionalPath(castle, dungeon, 10)

	fmt.Fprintln(w, "=== Initial Map ===")
	fmt.Fprintln(w, m.Mermaid())
	fmt.Fprintf(w, "Path from Town to Forest is bidirectional: %t\n", m.IsBidirectional(town, forest))
	fmt.Fprintf(w, "Path from Forest to Dungeon is bidirectional: %t\n", m.IsBidirectional(forest, dungeon))

	m.RemoveDirectedPath(forest, dungeon)
	fmt.Fprintln(w, "\n=== After removing Forest->Dungeon path ===")
	fmt.Fprintln(w, m.Mermaid())

	m.RemoveNode(dungeon)
	fmt.Fprintln(w, "\n=== After removing Dungeon node ===")
	fmt.Fprintln(w, m.Mermaid())

	village := m.AddNode("River Village", worldmap.Rounded)
	m.AddBidirectionalPath(town, village, 20)
	fmt.Fprintln(w, "\n=== After adding River Village ===")
	fmt.Fprintln(w, m.Mermaid())

	return m
}
