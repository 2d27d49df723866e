package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/lottiedoc/pkg/builder"
	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/lottie"
	"github.com/matzehuels/lottiedoc/pkg/observability"
)

// Build turns a composition into its document. hash identifies the scene in
// hook events.
func Build(ctx context.Context, c *lottie.Composition, hash string) (*doc.Document, error) {
	hooks := observability.Build()
	hooks.OnBuildStart(ctx, hash)

	start := time.Now()
	d, err := builder.Build(c)

	elements := 0
	if d != nil && d.Root != nil {
		elements = d.Root.Count()
	}
	hooks.OnBuildComplete(ctx, hash, elements, time.Since(start), err)
	return d, err
}
