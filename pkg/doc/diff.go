package doc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind classifies a [Difference].
type Kind string

const (
	KindName      Kind = "name"
	KindAttribute Kind = "attribute"
	KindText      Kind = "text"
	KindMissing   Kind = "missing"
	KindExtra     Kind = "extra"
)

// Difference is one mismatch between two documents.
//
// Path locates the node in XPath-like syntax, with 1-based positions among
// same-named siblings: /LottieComposition/Layers/Shape[2]@Name. Want and Got
// hold the compared values; one of them is empty for missing and extra nodes.
type Difference struct {
	Path string
	Kind Kind
	Want string
	Got  string
}

func (d Difference) String() string {
	switch d.Kind {
	case KindMissing:
		return fmt.Sprintf("%s: missing %s", d.Path, d.Want)
	case KindExtra:
		return fmt.Sprintf("%s: unexpected %s", d.Path, d.Got)
	}
	return fmt.Sprintf("%s: %s differs: want %q, got %q", d.Path, d.Kind, d.Want, d.Got)
}

// Equal reports whether a and b are identical: same names, attributes and
// children in the same order. A nil document equals one with a nil root.
func Equal(a, b *Document) bool {
	return equalElement(a.root(), b.root())
}

func (d *Document) root() *Element {
	if d == nil {
		return nil
	}
	return d.Root
}

func equalElement(a, b *Element) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || len(a.Attrs) != len(b.Attrs) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Attrs {
		if a.Attrs[i] != b.Attrs[i] {
			return false
		}
	}
	for i := range a.Children {
		switch x := a.Children[i].(type) {
		case Text:
			if y, ok := b.Children[i].(Text); !ok || x != y {
				return false
			}
		case *Element:
			y, ok := b.Children[i].(*Element)
			if !ok || !equalElement(x, y) {
				return false
			}
		}
	}
	return true
}

// Diff returns the differences between want and got in document order. It
// returns nil exactly when [Equal] reports true.
func Diff(want, got *Document) []Difference {
	var ds diffs
	w, g := want.root(), got.root()
	switch {
	case w == nil && g == nil:
	case w == nil:
		ds.add("/", KindExtra, "", describe(g))
	case g == nil:
		ds.add("/", KindMissing, describe(w), "")
	default:
		ds.element("/"+w.Name, w, g)
	}
	return ds
}

type diffs []Difference

func (ds *diffs) add(path string, kind Kind, want, got string) {
	*ds = append(*ds, Difference{Path: path, Kind: kind, Want: want, Got: got})
}

func (ds *diffs) element(path string, want, got *Element) {
	if want.Name != got.Name {
		ds.add(path, KindName, want.Name, got.Name)
		return
	}

	n := max(len(want.Attrs), len(got.Attrs))
	for i := range n {
		switch {
		case i >= len(got.Attrs):
			w := want.Attrs[i]
			ds.add(path+"@"+w.Name, KindMissing, attrString(w), "")
		case i >= len(want.Attrs):
			g := got.Attrs[i]
			ds.add(path+"@"+g.Name, KindExtra, "", attrString(g))
		case want.Attrs[i].Name != got.Attrs[i].Name:
			ds.add(path+"@"+want.Attrs[i].Name, KindAttribute, attrString(want.Attrs[i]), attrString(got.Attrs[i]))
		case want.Attrs[i].Value != got.Attrs[i].Value:
			ds.add(path+"@"+want.Attrs[i].Name, KindAttribute, want.Attrs[i].Value, got.Attrs[i].Value)
		}
	}

	wantPaths := childPaths(path, want.Children)
	gotPaths := childPaths(path, got.Children)
	n = max(len(want.Children), len(got.Children))
	for i := range n {
		switch {
		case i >= len(got.Children):
			ds.add(wantPaths[i], KindMissing, describe(want.Children[i]), "")
		case i >= len(want.Children):
			ds.add(gotPaths[i], KindExtra, "", describe(got.Children[i]))
		default:
			ds.node(wantPaths[i], want.Children[i], got.Children[i])
		}
	}
}

func (ds *diffs) node(path string, want, got Node) {
	we, wok := want.(*Element)
	ge, gok := got.(*Element)
	switch {
	case wok && gok:
		ds.element(path, we, ge)
	case wok != gok:
		ds.add(path, KindName, describe(want), describe(got))
	case want != got:
		ds.add(path, KindText, string(want.(Text)), string(got.(Text)))
	}
}

// childPaths numbers children among same-named siblings.
func childPaths(parent string, children []Node) []string {
	counts := map[string]int{}
	for _, c := range children {
		counts[nodeName(c)]++
	}
	seen := map[string]int{}
	out := make([]string, len(children))
	for i, c := range children {
		name := nodeName(c)
		seen[name]++
		if counts[name] > 1 {
			out[i] = fmt.Sprintf("%s/%s[%d]", parent, name, seen[name])
		} else {
			out[i] = parent + "/" + name
		}
	}
	return out
}

func nodeName(n Node) string {
	if e, ok := n.(*Element); ok {
		return e.Name
	}
	return "text()"
}

func attrString(a Attr) string { return a.Name + "=" + a.Value }

func describe(n Node) string {
	switch n := n.(type) {
	case *Element:
		return "<" + n.Name + ">"
	case Text:
		return fmt.Sprintf("text %q", truncate(string(n), 40))
	}
	return ""
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + "..."
}
