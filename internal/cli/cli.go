// Package cli implements the streetplot command-line interface.
//
// This package provides commands for rendering street-network graphs as
// static images (PNG, SVG) and interactive web maps, plus an HTTP server
// that renders graphs on demand with artifact caching. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - plot: Render a graph to a static image
//   - route: Render a graph with a route overlay
//   - figureground: Render a square figure-ground diagram around a point
//   - footprints: Render building footprints from GeoJSON
//   - webmap: Generate an interactive Leaflet map
//   - serve: Serve rendered graphs over HTTP
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/streetplot/pkg/buildinfo"
	"github.com/matzehuels/streetplot/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "streetplot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "streetplot",
		Short:        "Streetplot renders street networks as maps",
		Long:         `Streetplot is a CLI tool for rendering spatial street-network graphs as static images and interactive web maps, with attribute-based edge coloring, route overlays, and figure-ground diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/streetplot/config.toml)")

	// Register all subcommands
	root.AddCommand(c.plotCommand())
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.figuregroundCommand())
	root.AddCommand(c.footprintsCommand())
	root.AddCommand(c.webmapCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache builds the artifact cache the configuration asks for.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Serve.CacheBackend {
	case "redis":
		return cache.NewRedisCache(ctx, c.Config.Serve.RedisAddr, c.Config.Serve.RedisPassword, c.Config.Serve.RedisDB)
	case "none":
		return cache.NewNullCache(), nil
	default:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/streetplot/).
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
