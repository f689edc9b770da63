// Package cmd provides the CLI commands for polisearch.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tsim-imai/polisearch/internal/backend"
	"github.com/tsim-imai/polisearch/internal/cache"
	"github.com/tsim-imai/polisearch/internal/config"
	"github.com/tsim-imai/polisearch/internal/logging"
	"github.com/tsim-imai/polisearch/internal/political"
	"github.com/tsim-imai/polisearch/pkg/version"
)

// Persistent flags shared by all subcommands.
var (
	configPath string
	logLevel   string
	engineName string
)

// NewRootCmd creates the root command for the polisearch CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "polisearch",
		Short: "Politics-focused web search with relevance ranking",
		Long: `Polisearch layers political-content relevance scoring, filtering and
intent-aware ranking on top of a generic web search engine.

Queries are expanded into intent-tailored variants, searched concurrently,
deduplicated and ranked against hand-authored trust and keyword tables.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("polisearch version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&engineName, "engine", "", "Search engine: bing, duckduckgo")

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newGovernmentCmd())
	cmd.AddCommand(newMediaCmd())
	cmd.AddCommand(newSuggestCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig resolves the effective configuration from file, environment
// and flags, and installs the logger.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if engineName != "" {
		cfg.Search.Engine = engineName
	}
	logging.Setup(cfg.Log.Level, os.Stderr)
	return cfg, nil
}

// newEngine wires the political search engine from configuration.
func newEngine(cfg config.Config) *political.Engine {
	be := backend.New(cfg.Search.Engine, cfg.TransportConfig())
	return political.NewEngine(be,
		political.WithCache(cache.New[[]political.Result](cfg.Search.CacheSize, cfg.Search.CacheTTL)))
}
