// Package pkg provides the core libraries for lottiedoc.
//
// # Overview
//
// lottiedoc turns the in-memory scene graph of a Lottie animation into a
// structured document: a tree of named elements with ordered attributes and
// text. Static properties become attributes; animated ones become child
// elements listing their keyframes. The pkg directory is organized into
// three areas:
//
//  1. Domain: [lottie] (scene-graph model), [doc] (document model), [builder]
//  2. Serialization: [io] (scene-graph JSON), [render] (xml, json, yaml, dot, svg)
//  3. Services: [pipeline], [cache], [snapshot], [server], [config]
//
// # Architecture
//
// The typical data flow:
//
//	scene.json
//	     ↓
//	[io] package (decode + validate)
//	     ↓
//	[lottie] Composition
//	     ↓
//	[builder] package (scene graph → document)
//	     ↓
//	[doc] Document
//	     ↓
//	[render] package (xml, json, yaml, dot, svg)
//
// [pipeline] runs these stages with a per-format artifact [cache]. [snapshot]
// stores golden XML documents and diffs new builds against them.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/lottiedoc/pkg/builder"
//	    "github.com/matzehuels/lottiedoc/pkg/io"
//	    "github.com/matzehuels/lottiedoc/pkg/render"
//	)
//
//	c, _ := io.ImportJSON("spinner.json", io.ReadOptions{})
//	d, _ := builder.Build(c)
//	xml, _ := render.RenderXML(d)
//
// # Testing
//
// Run tests:
//
//	go test ./...                        # All tests
//	go test -tags integration ./pkg/...  # Include redis and mongo tests
//
// [lottie]: https://pkg.go.dev/github.com/matzehuels/lottiedoc/pkg/lottie
// [doc]: https://pkg.go.dev/github.com/matzehuels/lottiedoc/pkg/doc
// [builder]: https://pkg.go.dev/github.com/matzehuels/lottiedoc/pkg/builder
// [io]: https://pkg.go.dev/github.com/matzehuels/lottiedoc/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/lottiedoc/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/lottiedoc/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/lottiedoc/pkg/cache
// [snapshot]: https://pkg.go.dev/github.com/matzehuels/lottiedoc/pkg/snapshot
// [server]: https://pkg.go.dev/github.com/matzehuels/lottiedoc/pkg/server
// [config]: https://pkg.go.dev/github.com/matzehuels/lottiedoc/pkg/config
package pkg
