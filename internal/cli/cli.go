// Package cli implements the tangle command-line interface.
//
// This package provides commands for inspecting graph snapshots, checking
// them for cycles, computing topological orders, exporting DOT and
// graphviz renderings, generating synthetic workloads, and running the
// HTTP API. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - stats: Print vertex/edge counts, roots, tips, and the cycle flag
//   - check: Fail with a non-zero exit when the snapshot contains a cycle
//   - sort: Print a topological order, one label per line
//   - export: Write DOT text or a rendered SVG/PNG
//   - generate: Build a random graph through add/remove churn
//   - serve: Run the HTTP API
//   - cache: Manage the snapshot cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and
// --config for a TOML configuration file.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tanglegraph/tangle/pkg/buildinfo"
	"github.com/tanglegraph/tangle/pkg/cache"
	"github.com/tanglegraph/tangle/pkg/config"
)

// appName is the application name used for directories and display.
const appName = "tangle"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
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
		Short:        "Tangle stores and inspects directed graphs",
		Long:         `Tangle is a CLI tool for working with directed graph snapshots: statistics, cycle checks, topological sorting, DOT export, and an HTTP API for sharing graphs by content hash.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML configuration file")

	root.AddCommand(c.statsCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.sortCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration file named by --config, or defaults.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openCache constructs the configured cache backend.
func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, config.Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	if noCache {
		return cache.NewNullCache(), cfg, nil
	}

	store, err := cfg.OpenCache(ctx)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("open cache: %w", err)
	}
	return store, cfg, nil
}
