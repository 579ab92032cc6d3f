package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/matzehuels/xrpg/internal/server"
)

const defaultAddr = "127.0.0.1:8080"

// serveCommand creates the serve command, which exposes a world over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		copts cacheOpts
	)

	cmd := &cobra.Command{
		Use:   "serve <world.toml>",
		Short: "Serve a world map over HTTP",
		Long: `Serve a world map over HTTP.

Routes:
  GET    /mermaid            Mermaid flowchart
  GET    /dot                Graphviz DOT (?detailed=true for indices)
  GET    /svg                rendered SVG
  GET    /locations          active locations as JSON
  GET    /locations/{name}   one location and its outgoing paths
  DELETE /locations/{name}   remove a location
  GET    /paths              active paths as JSON
  GET    /healthz            liveness check`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := loadWorld(ctx, args[0])
			if err != nil {
				return err
			}
			cache, err := newCache(ctx, copts)
			if err != nil {
				return err
			}
			defer cache.Close()

			srv := server.New(m, server.Options{Cache: cache, Logger: c.Logger})
			printInfo("Serving %s", args[0])
			printKeyValue("Address", "http://"+addr)
			printNextStep("Fetch the diagram", "curl http://"+addr+"/mermaid")

			if err := srv.Run(ctx, addr); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	copts.register(cmd)

	return cmd
}
