package render

import (
	"strings"

	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/errors"
)

// Format names an output format.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatDOT  Format = "dot"
	FormatSVG  Format = "svg"
)

// Formats lists every supported format in preference order.
var Formats = []Format{FormatXML, FormatJSON, FormatYAML, FormatDOT, FormatSVG}

// ParseFormat validates a format name. Matching is case-insensitive and
// accepts "yml" for YAML.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = FormatYAML
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want one of xml, json, yaml, dot, svg)", s)
}

// ParseFormats parses a comma-separated list of formats, dropping duplicates.
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	seen := map[Format]bool{}
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no output format given")
	}
	return out, nil
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string { return "." + string(f) }

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatXML:
		return "application/xml"
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatDOT:
		return "text/vnd.graphviz"
	case FormatSVG:
		return "image/svg+xml"
	}
	return "application/octet-stream"
}

// Option configures rendering.
type Option func(*options)

type options struct {
	indent   int
	detailed bool
}

// WithIndent sets the indentation width for xml, json and yaml. Zero renders
// xml and json on a single line.
func WithIndent(n int) Option { return func(o *options) { o.indent = n } }

// WithDetailed includes attributes and text in dot and svg node labels.
func WithDetailed() Option { return func(o *options) { o.detailed = true } }

func buildOptions(opts []Option) options {
	o := options{indent: 2}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Render serializes d in format f.
func Render(d *doc.Document, f Format, opts ...Option) ([]byte, error) {
	if d == nil || d.Root == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "render: empty document")
	}
	switch f {
	case FormatXML:
		return RenderXML(d, opts...)
	case FormatJSON:
		return RenderJSON(d, opts...)
	case FormatYAML:
		return RenderYAML(d, opts...)
	case FormatDOT:
		return []byte(ToDOT(d, opts...)), nil
	case FormatSVG:
		return RenderSVG(ToDOT(d, opts...))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", f)
}
