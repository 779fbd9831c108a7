// Package cli implements the labelpress command-line interface.
//
// This package provides commands for assembling label documents from the
// back-office API, rendering them at the supported media sizes, exporting
// print-ready PDFs, and serving previews over HTTP. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - assemble: Fetch product data and print the assembled label document
//   - render: Render a label in one or more formats
//   - export: Write a print-ready PDF with a deterministic file name
//   - preview: Interactive terminal preview with a media size selector
//   - serve: Run the HTTP preview server
//   - media: List the supported media sizes
//   - seals: List the warning-seal catalog
//   - cache: Manage the local cache
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
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/labelpress/labelpress/pkg/backoffice"
	"github.com/labelpress/labelpress/pkg/buildinfo"
	"github.com/labelpress/labelpress/pkg/cache"
	"github.com/labelpress/labelpress/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "labelpress"

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

// New creates a new CLI instance with a default logger and loaded config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: LoadConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Labelpress renders product labels for thermal and sheet media",
		Long:         `Labelpress assembles product, nutrition, and warning seal data into label documents and renders them as print-ready artifacts at fixed physical media sizes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.assembleCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.mediaCommand())
	root.AddCommand(c.sealsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(c.newPipelineCache(ctx, noCache), nil, c.Logger)
}

func (c *CLI) newPipelineCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	if c.Config.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, c.Config.RedisAddr)
		if err == nil {
			return rc
		}
		c.Logger.Warn("redis unavailable, falling back to file cache", "addr", c.Config.RedisAddr, "err", err)
	}
	dir, err := cacheDir(c.Config.CacheDir)
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// newSource creates the back-office API client from config. HTTP responses
// are cached separately from pipeline results, under the same cache root.
func (c *CLI) newSource(refresh bool) *backoffice.API {
	var headers map[string]string
	if c.Config.Token != "" {
		headers = map[string]string{"Authorization": "Bearer " + c.Config.Token}
	}
	httpCache, err := backoffice.NewCache(cache.TTLDocument)
	if err != nil {
		c.Logger.Debug("http cache unavailable", "err", err)
		httpCache = nil
	}
	client := backoffice.NewClient(httpCache, headers)
	return backoffice.NewAPI(client, c.Config.BackendURL, refresh)
}

// cacheDir returns the cache directory, preferring the configured path and
// falling back to the XDG standard (~/.cache/labelpress/).
func cacheDir(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultFormat}
	}
	return strings.Split(s, ",")
}
