// Package config loads lottiedoc settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/lottiedoc/config.toml, falling back to
// ~/.config/lottiedoc/config.toml. A missing file is not an error: every
// field has a default, and command-line flags override whatever is loaded.
//
// Example:
//
//	[output]
//	formats = ["xml", "json"]
//	indent = 4
//
//	[cache]
//	ttl = "24h"
//	redis_url = "redis://localhost:6379/0"
//
//	[snapshot]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/pipeline"
	"github.com/matzehuels/lottiedoc/pkg/render"
	"github.com/matzehuels/lottiedoc/pkg/snapshot"
)

// AppName names the config, cache and data directories.
const AppName = "lottiedoc"

// Snapshot backends.
const (
	BackendFile  = "file"
	BackendMongo = "mongo"
)

// Config is the effective configuration.
type Config struct {
	Output   Output   `toml:"output"`
	Cache    Cache    `toml:"cache"`
	Snapshot Snapshot `toml:"snapshot"`
	Server   Server   `toml:"server"`
}

// Output controls rendering.
type Output struct {
	Formats []string `toml:"formats"`
	Indent  int      `toml:"indent"`
}

// Cache controls the artifact cache. RedisURL, when set, replaces the file
// cache in Dir.
type Cache struct {
	Enabled  bool     `toml:"enabled"`
	Dir      string   `toml:"dir"`
	TTL      Duration `toml:"ttl"`
	RedisURL string   `toml:"redis_url"`
}

// Snapshot selects and configures the golden store.
type Snapshot struct {
	Backend         string `toml:"backend"`
	Dir             string `toml:"dir"`
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// Server configures `lottiedoc serve`.
type Server struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// Duration is a time.Duration written as a string such as "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration. Directory fields are resolved
// against the XDG base directories; they are empty if the home directory is
// unknown.
func Default() Config {
	cacheDir, _ := CacheDir()
	dataDir, _ := DataDir()
	snapDir := ""
	if dataDir != "" {
		snapDir = filepath.Join(dataDir, "snapshots")
	}
	return Config{
		Output: Output{
			Formats: []string{string(render.FormatXML)},
			Indent:  pipeline.DefaultIndent,
		},
		Cache: Cache{
			Enabled: true,
			Dir:     cacheDir,
			TTL:     Duration{pipeline.DefaultTTL},
		},
		Snapshot: Snapshot{
			Backend:         BackendFile,
			Dir:             snapDir,
			MongoDatabase:   snapshot.DefaultMongoDatabase,
			MongoCollection: snapshot.DefaultMongoCollection,
		},
		Server: Server{
			Addr:         ":8080",
			MaxBodyBytes: 8 << 20,
		},
	}
}

// Load reads the file at path over the defaults. An empty path selects
// [Path]; a missing default file yields the defaults, while a missing
// explicit path is NOT_FOUND.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return cfg, errors.Wrap(errors.ErrCodeNotFound, err, "config %s", path)
			}
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := c.Output.RenderFormats(); err != nil {
		return err
	}
	if c.Output.Indent < 0 || c.Output.Indent > pipeline.MaxIndent {
		return errors.New(errors.ErrCodeInvalidInput, "output.indent must be between 0 and %d", pipeline.MaxIndent)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl must not be negative")
	}
	switch c.Snapshot.Backend {
	case BackendFile:
	case BackendMongo:
		if c.Snapshot.MongoURI == "" {
			return errors.New(errors.ErrCodeInvalidInput, "snapshot.mongo_uri is required for the mongo backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "snapshot.backend must be %q or %q, got %q", BackendFile, BackendMongo, c.Snapshot.Backend)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.max_body_bytes must be positive")
	}
	return nil
}

// RenderFormats parses Formats.
func (o Output) RenderFormats() ([]render.Format, error) {
	out := make([]render.Format, 0, len(o.Formats))
	for _, s := range o.Formats {
		f, err := render.ParseFormat(s)
		if err != nil {
			return nil, fmt.Errorf("output.formats: %w", err)
		}
		out = append(out, f)
	}
	return out, nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := baseDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, "config.toml"), nil
}

// CacheDir returns the default cache directory.
func CacheDir() (string, error) {
	dir, err := baseDir("XDG_CACHE_HOME", ".cache")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// DataDir returns the default data directory.
func DataDir() (string, error) {
	dir, err := baseDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

func baseDir(env, fallback string) (string, error) {
	if dir := os.Getenv(env); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, fallback), nil
}
