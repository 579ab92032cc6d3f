package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/xrpg/pkg/cache"
	"github.com/matzehuels/xrpg/pkg/errors"
	xio "github.com/matzehuels/xrpg/pkg/io"
	"github.com/matzehuels/xrpg/pkg/render/nodelink"
	"github.com/matzehuels/xrpg/pkg/worldmap"
)

const formatSVG = "svg"

// validFormats lists the values accepted by --format.
var validFormats = []string{xio.FormatMermaid, xio.FormatDOT, formatSVG}

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output   string   // output file path; stdout when empty
	format   string   // mermaid, dot or svg
	remove   []string // location names removed before export
	detailed bool     // prefix DOT labels with the location index
	cache    cacheOpts
}

// exportCommand creates the export command for writing a world as a diagram.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{format: xio.FormatMermaid}

	cmd := &cobra.Command{
		Use:   "export <world.toml>",
		Short: "Export a world map as Mermaid, DOT or SVG",
		Example: `  xrpg export world.toml
  xrpg export world.toml -f svg -o world.svg
  xrpg export world.toml --remove "Dark Dungeon"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runExport(cmd.Context(), args[0], cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: mermaid, dot, svg")
	cmd.Flags().StringArrayVar(&opts.remove, "remove", nil, "remove a location by name before exporting (repeatable)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show location indices in DOT and SVG output")
	opts.cache.register(cmd)

	return cmd
}

func validateFormat(format string) error {
	if !slices.Contains(validFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'mermaid', 'dot' or 'svg')", format)
	}
	return nil
}

func runExport(ctx context.Context, path string, stdout io.Writer, opts *exportOpts) error {
	m, err := loadWorld(ctx, path)
	if err != nil {
		return err
	}
	if err := removeLocations(ctx, m, opts.remove); err != nil {
		return err
	}

	data, cached, err := renderDiagram(ctx, m, opts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Exported %s", opts.format)
	printFile(opts.output)
	printStats(len(m.Locations()), len(m.Paths()), cached)
	return nil
}

// renderDiagram produces the requested format. SVG output goes through the
// artifact cache, keyed by the DOT source it was rendered from.
func renderDiagram(ctx context.Context, m *worldmap.Map, opts *exportOpts) ([]byte, bool, error) {
	dot := nodelink.ToDOT(m, nodelink.Options{Detailed: opts.detailed})

	switch opts.format {
	case xio.FormatMermaid:
		return []byte(m.Mermaid()), false, nil
	case xio.FormatDOT:
		return []byte(dot), false, nil
	}

	c, err := newCache(ctx, opts.cache)
	if err != nil {
		return nil, false, err
	}
	defer c.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
	spinner.Start()

	data, cached, err := cache.GetOrCompute(ctx, c, cache.ArtifactKey(dot, formatSVG), cache.DefaultTTL, func() ([]byte, error) {
		return nodelink.RenderSVG(ctx, dot)
	})
	if err != nil {
		spinner.StopWithError("SVG render failed")
		return nil, false, errors.Wrap(errors.ErrCodeRenderFailed, err, "render svg")
	}
	spinner.Stop()
	return data, cached, nil
}

// loadWorld reads a world file and logs its size.
func loadWorld(ctx context.Context, path string) (*worldmap.Map, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	m, err := xio.ImportWorld(path)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d locations, %d paths", len(m.Locations()), len(m.Paths())))
	return m, nil
}

// removeLocations removes each named location in order.
func removeLocations(ctx context.Context, m *worldmap.Map, names []string) error {
	logger := loggerFromContext(ctx)
	for _, name := range names {
		idx, ok := m.Index(name)
		if !ok {
			return errors.New(errors.ErrCodeUnknownLocation, "no location named %q", name)
		}
		m.RemoveNode(idx)
		logger.Debug("removed location", "name", name, "index", idx)
	}
	return nil
}
