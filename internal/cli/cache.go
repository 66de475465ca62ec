package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanglegraph/tangle/pkg/cache"
	"github.com/tanglegraph/tangle/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the snapshot and render cache",
	}

	cmd.AddCommand(c.cacheInfoCommand())
	cmd.AddCommand(c.cacheClearCommand())

	return cmd
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the configured cache backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			printKeyValue("backend", cfg.Cache.Backend)
			printKeyValue("ttl", cfg.Cache.TTL.Duration.String())
			switch cfg.Cache.Backend {
			case config.BackendFile:
				printKeyValue("dir", cfg.Cache.Dir)
			case config.BackendRedis:
				printKeyValue("addr", cfg.Cache.Redis.Addr)
			case config.BackendMongo:
				printKeyValue("uri", cfg.Cache.Mongo.URI)
				printKeyValue("database", cfg.Cache.Mongo.Database)
			}
			return nil
		},
	}
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Cache.Backend != config.BackendFile {
				printWarning("clear supports only the file backend (configured: %s)", cfg.Cache.Backend)
				return fmt.Errorf("cannot clear %s cache", cfg.Cache.Backend)
			}

			store, err := cache.NewFileCache(cfg.Cache.Dir)
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}

			printSuccess("Cache cleared")
			printDetail("Directory: %s", cfg.Cache.Dir)
			return nil
		},
	}
}
