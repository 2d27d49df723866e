package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/lottiedoc/pkg/cache"
	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/observability"
	"github.com/matzehuels/lottiedoc/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store conversion results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Convert runs the complete parse → build → render pipeline with caching.
//
// Cached artifacts are looked up per format. Parse and build only run when at
// least one format is missing, and only the missing formats are rendered and
// stored. A failing cache never fails the conversion.
func (r *Runner) Convert(ctx context.Context, scene []byte, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		SceneHash: sceneHash(scene),
		Artifacts: make(map[render.Format][]byte, len(opts.Formats)),
	}

	missing := r.lookup(ctx, result, opts)
	if len(missing) == 0 {
		result.CacheInfo.RenderHit = true
		opts.Logger.Debug("all artifacts cached", "scene", short(result.SceneHash), "formats", opts.FormatNames())
		return result, nil
	}

	// Stage 1: Parse
	parseStart := time.Now()
	c, err := Parse(ctx, scene, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Composition = c
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.LayerCount = c.Layers.Len()

	opts.Logger.Debug("parsed scene",
		"name", c.Name,
		"layers", result.Stats.LayerCount,
		"duration", result.Stats.ParseTime)

	// Stage 2: Build
	buildStart := time.Now()
	d, err := Build(ctx, c, result.SceneHash)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Document = d
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.ElementCount = d.Root.Count()

	opts.Logger.Debug("built document",
		"elements", result.Stats.ElementCount,
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	rendered, err := renderFormats(ctx, d, missing, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Stats.RenderTime = time.Since(renderStart)

	for f, data := range rendered {
		result.Artifacts[f] = data
		r.store(ctx, result.SceneHash, f, data, opts)
	}

	opts.Logger.Debug("rendered outputs",
		"formats", missing,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// lookup fills result with cached artifacts and returns the formats that
// still need rendering.
func (r *Runner) lookup(ctx context.Context, result *Result, opts Options) []render.Format {
	if opts.Refresh {
		return opts.Formats
	}
	hooks := observability.Cache()
	var missing []render.Format
	for _, f := range opts.Formats {
		key := r.Keyer.DocumentKey(result.SceneHash, opts.DocumentKeyOpts(f))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("cache read failed", "format", f, "err", err)
		}
		if err != nil || !hit {
			hooks.OnCacheMiss(ctx, string(f))
			missing = append(missing, f)
			continue
		}
		hooks.OnCacheHit(ctx, string(f))
		result.Artifacts[f] = data
		result.CacheInfo.Hits = append(result.CacheInfo.Hits, f)
	}
	return missing
}

func (r *Runner) store(ctx context.Context, hash string, f render.Format, data []byte, opts Options) {
	key := r.Keyer.DocumentKey(hash, opts.DocumentKeyOpts(f))
	if err := r.Cache.Set(ctx, key, data, opts.TTL); err != nil {
		opts.Logger.Warn("cache write failed", "format", f, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, string(f), len(data))
}

// ConvertFile reads the scene at path and converts it.
func (r *Runner) ConvertFile(ctx context.Context, path string, opts Options) (*Result, error) {
	scene, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return r.Convert(ctx, scene, opts)
}

// FileResult is the outcome of converting one file in [Runner.ConvertFiles].
type FileResult struct {
	Path   string
	Result *Result
	Err    error
}

// ConvertFiles converts paths concurrently, at most limit at a time (limit
// <= 0 selects DefaultConcurrency). Results are returned in input order.
// A failing file does not stop the others; its error is recorded in the
// FileResult. The returned error is non-nil only when ctx is cancelled.
func (r *Runner) ConvertFiles(ctx context.Context, paths []string, opts Options, limit int) ([]FileResult, error) {
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	results := make([]FileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.ConvertFile(gctx, path, opts)
			results[i] = FileResult{Path: path, Result: res, Err: err}
			if err != nil {
				r.Logger.Debug("conversion failed", "path", path, "err", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func sceneHash(scene []byte) string { return cache.Hash(scene) }

// short abbreviates a hash for log output.
func short(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
