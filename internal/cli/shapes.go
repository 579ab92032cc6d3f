package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/xrpg/pkg/worldmap"
)

// shapesCommand creates the shapes command, which lists the shape catalog.
func (c *CLI) shapesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the location shapes and their Mermaid syntax",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), shapesTable())
			return nil
		},
	}
}

func shapesTable() string {
	t := newTable("Shape", "Mermaid")
	for _, s := range worldmap.Shapes() {
		t.Row(s.String(), s.Wrap("label"))
	}
	return t.Render()
}
