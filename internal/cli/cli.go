package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkchart/pkg/buildinfo"
	"github.com/matzehuels/linkchart/pkg/cache"
	"github.com/matzehuels/linkchart/pkg/config"
	"github.com/matzehuels/linkchart/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "linkchart"

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

	configPath string
	verbose    bool
	config     *config.Config
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
		Use:   appName,
		Short: "Linkchart lays out link-analysis charts",
		Long: `Linkchart computes node positions for link-analysis charts: items such as
people, accounts or vehicles connected by directed links. It reads a graph
file, applies one of several layout strategies, removes overlaps and writes
the positions, optionally with a zoom and pan that fit them in a viewport.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $"+config.EnvPath+" or ~/.config/linkchart/config.toml)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.fitCommand())
	root.AddCommand(c.layoutsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// loadConfig reads the config file once per CLI.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	c.config = cfg
	return cfg, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, cfg *config.Config, noCache bool) (*pipeline.Runner, error) {
	store, keyer, err := c.newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	runner.TTL = cfg.Cache.TTL
	return runner, nil
}

// newCache opens the configured backend. A file cache that cannot be
// created degrades to no caching; an unreachable Redis is an error.
func (c *CLI) newCache(ctx context.Context, cfg *config.Config, noCache bool) (cache.Cache, cache.Keyer, error) {
	if noCache {
		return cache.NewNullCache(), nil, nil
	}
	switch cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil, nil
	case config.BackendRedis:
		store, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		c.Logger.Debug("using redis cache", "addr", cfg.Cache.RedisAddr, "prefix", cfg.Cache.Prefix)
		return store, cache.NewScopedKeyer(cache.NewDefaultKeyer(), cfg.Cache.Prefix), nil
	default:
		store, err := cache.NewFileCache(cfg.CacheDir())
		if err != nil {
			c.Logger.Warn("file cache unavailable, caching disabled", "dir", cfg.CacheDir(), "err", err)
			return cache.NewNullCache(), nil, nil
		}
		return store, nil, nil
	}
}

// =============================================================================
// Options Helpers
// =============================================================================

// layoutOptions returns pipeline options seeded from the config file.
func layoutOptions(cfg *config.Config) pipeline.Options {
	return pipeline.Options{
		Layout: cfg.Layout.Name,
		Seed:   cfg.Layout.Seed,
		Config: cfg.Layout.Config,
	}
}
