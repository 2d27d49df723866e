// Package cli implements the lottiedoc command-line interface.
//
// The commands convert Lottie scene graphs into documents, compare documents
// against golden snapshots, serve the conversion over HTTP and manage the
// artifact cache. The CLI is built with cobra and logs through
// charmbracelet/log; --verbose (-v) switches to debug level.
//
// Settings come from the TOML config file (see package config) and are
// overridden by command-line flags.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lottiedoc/pkg/buildinfo"
	"github.com/matzehuels/lottiedoc/pkg/cache"
	"github.com/matzehuels/lottiedoc/pkg/config"
	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/pipeline"
	"github.com/matzehuels/lottiedoc/pkg/render"
	"github.com/matzehuels/lottiedoc/pkg/snapshot"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

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
	cfg        config.Config
}

// New creates a new CLI instance with a default logger and the built-in
// configuration. The config file is loaded when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped by
// version so artifacts rendered by another release are never reused.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, buildinfo.Version)
	return pipeline.NewRunner(ch, keyer, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || !c.cfg.Cache.Enabled {
		return cache.NewNullCache(), nil
	}
	if url := c.cfg.Cache.RedisURL; url != "" {
		rc, err := cache.OpenRedis(ctx, url, cache.WithKeyPrefix(appName+":"))
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "error", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	}
	dir := c.cfg.Cache.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Snapshot Store Factory
// =============================================================================

// openStore opens the snapshot store. backend overrides the configured one
// when non-empty.
func (c *CLI) openStore(ctx context.Context, backend string) (snapshot.Store, error) {
	sc := c.cfg.Snapshot
	if backend == "" {
		backend = sc.Backend
	}
	switch backend {
	case config.BackendFile:
		dir := sc.Dir
		if dir == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "snapshot.dir is not set and no data directory is available")
		}
		return snapshot.NewFileStore(dir)
	case config.BackendMongo:
		if sc.MongoURI == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "snapshot.mongo_uri is required for the mongo backend")
		}
		return snapshot.OpenMongo(ctx, sc.MongoURI, sc.MongoDatabase, sc.MongoCollection)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown snapshot store %q (want %s or %s)", backend, config.BackendFile, config.BackendMongo)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/lottiedoc/).
func cacheDir() (string, error) {
	return config.CacheDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// convertFlags are the conversion flags shared by build, diff, snapshot and
// browse.
type convertFlags struct {
	formats    string
	indent     int
	compact    bool
	detailed   bool
	noValidate bool
	noCache    bool
	refresh    bool
}

func (f *convertFlags) register(cmd *cobra.Command, withFormats bool) {
	if withFormats {
		cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): xml, json, yaml, dot, svg (comma-separated)")
		cmd.Flags().IntVar(&f.indent, "indent", 0, "indentation width (default from config)")
		cmd.Flags().BoolVar(&f.compact, "compact", false, "single-line xml and json")
		cmd.Flags().BoolVar(&f.detailed, "detailed", false, "show attributes in dot and svg output")
	}
	cmd.Flags().BoolVar(&f.noValidate, "no-validate", false, "skip composition validation")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached artifacts")
}

// options merges flags over the configured output settings.
func (c *CLI) options(f convertFlags) (pipeline.Options, error) {
	opts := pipeline.Options{
		Indent:         c.cfg.Output.Indent,
		Compact:        f.compact,
		Detailed:       f.detailed,
		SkipValidation: f.noValidate,
		Refresh:        f.refresh,
		TTL:            c.cfg.Cache.TTL.Duration,
		Logger:         c.Logger,
	}
	if f.indent != 0 {
		opts.Indent = f.indent
	}

	var err error
	if f.formats != "" {
		opts.Formats, err = render.ParseFormats(f.formats)
	} else {
		opts.Formats, err = c.cfg.Output.RenderFormats()
	}
	if err != nil {
		return opts, err
	}
	return opts, opts.ValidateAndSetDefaults()
}

// xmlOptions returns options rendering only xml, as snapshots and diffs need.
func (c *CLI) xmlOptions(f convertFlags) (pipeline.Options, error) {
	f.formats = string(render.FormatXML)
	return c.options(f)
}
