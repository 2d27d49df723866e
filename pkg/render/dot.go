package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/errors"
)

// maxLabelText bounds the keyframe text shown in a detailed label.
const maxLabelText = 48

// ToDOT converts d to a Graphviz digraph with one box per element and an edge
// from each element to its children. With [WithDetailed], labels list the
// attributes and text of the element.
func ToDOT(d *doc.Document, opts ...Option) string {
	o := buildOptions(opts)
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	if d != nil && d.Root != nil {
		var edges []string
		next := 0
		var walk func(e *doc.Element) string
		walk = func(e *doc.Element) string {
			id := "n" + strconv.Itoa(next)
			next++
			fmt.Fprintf(&buf, "  %s [%s];\n", id, strings.Join(fmtAttrs(e, o.detailed), ", "))
			for _, c := range e.Elements() {
				edges = append(edges, fmt.Sprintf("  %s -> %s;\n", id, walk(c)))
			}
			return id
		}
		walk(d.Root)

		buf.WriteString("\n")
		for _, e := range edges {
			buf.WriteString(e)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(e *doc.Element, detailed bool) string {
	if !detailed {
		return e.Name
	}
	parts := []string{e.Name}
	for _, a := range e.Attrs {
		parts = append(parts, a.Name+": "+a.Value)
	}
	if t := e.Text(); t != "" {
		if len(t) > maxLabelText {
			t = t[:maxLabelText] + "..."
		}
		parts = append(parts, t)
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(e *doc.Element, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(e, detailed))}
	if e.Text() != "" {
		// Animated properties.
		attrs = append(attrs, "fillcolor=lightyellow")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the drawing scales with its
// container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
