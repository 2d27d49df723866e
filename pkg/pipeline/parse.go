package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/lottiedoc/pkg/io"
	"github.com/matzehuels/lottiedoc/pkg/lottie"
	"github.com/matzehuels/lottiedoc/pkg/observability"
)

// Parse decodes scene JSON and, unless opts.SkipValidation is set, validates
// the composition.
func Parse(ctx context.Context, scene []byte, opts Options) (*lottie.Composition, error) {
	hooks := observability.Build()
	hash := sceneHash(scene)
	hooks.OnDecodeStart(ctx, hash)

	start := time.Now()
	c, err := io.ReadJSON(bytes.NewReader(scene), io.ReadOptions{SkipValidation: opts.SkipValidation})

	layers := 0
	if c != nil {
		layers = c.Layers.Len()
	}
	hooks.OnDecodeComplete(ctx, hash, layers, time.Since(start), err)
	return c, err
}
