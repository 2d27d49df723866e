// Package pipeline provides the scene → document → artifact pipeline for
// lottiedoc.
//
// This package implements the complete parse → build → render pipeline used
// by the CLI and the API server. Keeping it in one place means both entry
// points cache, validate and log the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Decode scene JSON into a [lottie.Composition] and validate it
//  2. Build: Turn the composition into a [doc.Document]
//  3. Render: Serialize the document in each requested format
//
// Rendered artifacts are cached per format, keyed by the scene's content
// hash and the render options. When every requested format is cached, the
// parse and build stages are skipped entirely.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Convert(ctx, sceneJSON, pipeline.Options{
//	    Formats: []render.Format{render.FormatXML},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	xml := result.Artifacts[render.FormatXML]
package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lottiedoc/pkg/cache"
	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/lottie"
	"github.com/matzehuels/lottiedoc/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultIndent is the indentation width of xml, json and yaml output.
	DefaultIndent = 2

	// MaxIndent bounds the indentation width accepted from callers.
	MaxIndent = 16

	// DefaultTTL is how long rendered artifacts stay in the cache. Artifacts
	// are keyed by content hash, so a long TTL never serves stale output.
	DefaultTTL = 7 * 24 * time.Hour

	// DefaultConcurrency is the number of files ConvertFiles processes at once.
	DefaultConcurrency = 4
)

// DefaultFormats is used when Options.Formats is empty.
var DefaultFormats = []render.Format{render.FormatXML}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a conversion.
// This struct supports JSON serialization for API requests.
type Options struct {
	Formats  []render.Format `json:"formats,omitempty"`
	Indent   int             `json:"indent,omitempty"`   // 0 selects DefaultIndent
	Compact  bool            `json:"compact,omitempty"`  // Single-line xml and json; overrides Indent
	Detailed bool            `json:"detailed,omitempty"` // Attributes in dot and svg labels

	SkipValidation bool          `json:"skip_validation,omitempty"`
	Refresh        bool          `json:"refresh,omitempty"` // Ignore cached artifacts
	TTL            time.Duration `json:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = DefaultFormats
	}
	formats := make([]render.Format, 0, len(o.Formats))
	seen := make(map[render.Format]bool, len(o.Formats))
	for _, f := range o.Formats {
		f, err := render.ParseFormat(string(f))
		if err != nil {
			return err
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	o.Formats = formats
	if o.Indent < 0 || o.Indent > MaxIndent {
		return errors.New(errors.ErrCodeInvalidInput, "indent must be between 0 and %d, got %d", MaxIndent, o.Indent)
	}
	if o.Indent == 0 {
		o.Indent = DefaultIndent
	}
	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// EffectiveIndent returns the indentation passed to the renderers.
func (o *Options) EffectiveIndent() int {
	if o.Compact {
		return 0
	}
	return o.Indent
}

// RenderOptions returns the render options for every format.
func (o *Options) RenderOptions() []render.Option {
	opts := []render.Option{render.WithIndent(o.EffectiveIndent())}
	if o.Detailed {
		opts = append(opts, render.WithDetailed())
	}
	return opts
}

// DocumentKeyOpts returns cache key options for one format.
func (o *Options) DocumentKeyOpts(f render.Format) cache.DocumentKeyOpts {
	return cache.DocumentKeyOpts{
		Format:      string(f),
		Indent:      o.EffectiveIndent(),
		Detailed:    o.Detailed,
		Unvalidated: o.SkipValidation,
	}
}

// FormatNames returns the requested formats as strings, for logging and hooks.
func (o *Options) FormatNames() []string {
	names := make([]string, len(o.Formats))
	for i, f := range o.Formats {
		names[i] = string(f)
	}
	return names
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a conversion.
type Result struct {
	// Composition is the decoded scene. It is nil when every artifact came
	// from the cache.
	Composition *lottie.Composition

	// Document is the built document. It is nil when every artifact came
	// from the cache; use [Result.XMLDocument] to recover it.
	Document *doc.Document

	// SceneHash is the content hash of the scene JSON.
	SceneHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[render.Format][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// XMLDocument returns the built document, parsing it back from the xml
// artifact when the build stage was skipped.
func (r *Result) XMLDocument() (*doc.Document, error) {
	if r.Document != nil {
		return r.Document, nil
	}
	data, ok := r.Artifacts[render.FormatXML]
	if !ok {
		return nil, errors.New(errors.ErrCodeInternal, "result has neither a document nor an xml artifact")
	}
	d, err := render.ParseXML(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse cached xml: %w", err)
	}
	return d, nil
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LayerCount   int
	ElementCount int
	ParseTime    time.Duration
	BuildTime    time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for a conversion.
type CacheInfo struct {
	Hits      []render.Format // Formats served from the cache
	RenderHit bool            // Whether all artifacts came from cache
}
