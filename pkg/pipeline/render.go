package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/observability"
	"github.com/matzehuels/lottiedoc/pkg/render"
)

// Render serializes d in each format of opts.Formats.
func Render(ctx context.Context, d *doc.Document, opts Options) (map[render.Format][]byte, error) {
	return renderFormats(ctx, d, opts.Formats, opts)
}

func renderFormats(ctx context.Context, d *doc.Document, formats []render.Format, opts Options) (map[render.Format][]byte, error) {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	hooks := observability.Build()
	hooks.OnRenderStart(ctx, names)

	start := time.Now()
	artifacts, err := renderAll(d, formats, opts.RenderOptions())
	hooks.OnRenderComplete(ctx, names, time.Since(start), err)
	return artifacts, err
}

func renderAll(d *doc.Document, formats []render.Format, opts []render.Option) (map[render.Format][]byte, error) {
	artifacts := make(map[render.Format][]byte, len(formats))
	for _, f := range formats {
		data, err := render.Render(d, f, opts...)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f, err)
		}
		artifacts[f] = data
	}
	return artifacts, nil
}
