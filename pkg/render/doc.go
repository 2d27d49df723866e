// Package render serializes a [doc.Document] to bytes.
//
// # Formats
//
//   - xml: the canonical form, used for golden files and snapshots
//   - json: an ordered element/attribute/children tree
//   - yaml: the same tree as YAML, for reading
//   - dot: a Graphviz digraph of the element hierarchy
//   - svg: the dot graph laid out by Graphviz
//
// [Render] dispatches on a [Format]. The XML and JSON forms can be read back
// with [ParseXML] and [ParseJSON]; a parsed document is [doc.Equal] to the one
// that was rendered.
//
//	d, _ := builder.Build(c)
//	out, err := render.Render(d, render.FormatXML, render.WithIndent(2))
//
// # Graphviz
//
// SVG rendering uses the WebAssembly build of Graphviz bundled with
// github.com/goccy/go-graphviz, so no system installation is required.
package render
