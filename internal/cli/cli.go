// Package cli implements the xrpg command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/xrpg/pkg/buildinfo"
	"github.com/matzehuels/xrpg/pkg/cache"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "xrpg"

	// redisAddrEnv names the environment variable holding the default
	// --redis address.
	redisAddrEnv = "XRPG_REDIS_ADDR"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "xrpg draws RPG world maps as Mermaid diagrams",
		Long:         `xrpg builds world maps of locations and travel paths, then exports them as Mermaid flowcharts, Graphviz DOT or SVG, serves them over HTTP or browses them in the terminal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			registerLogHooks(c.Logger)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.demoCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.shapesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// cacheOpts holds the cache flags shared by commands that render SVG.
type cacheOpts struct {
	noCache bool
	redis   string
}

func (o *cacheOpts) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&o.redis, "redis", os.Getenv(redisAddrEnv), "redis address for a shared artifact cache (env "+redisAddrEnv+")")
}

// newCache picks a backend: none with --no-cache, redis when an address is
// set, and the file cache otherwise. An unreachable redis falls back to the
// file cache with a warning.
func newCache(ctx context.Context, opts cacheOpts) (cache.Cache, error) {
	logger := loggerFromContext(ctx)
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redis != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: opts.redis})
		if err == nil {
			logger.Debug("using redis cache", "addr", opts.redis)
			return rc, nil
		}
		logger.Warn("redis cache unavailable, using file cache", "err", err)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/xrpg/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
