// Package doc is the in-memory document tree produced by the builder.
//
// A document is a tree of named elements. Each element carries an ordered
// list of attributes and an ordered list of children, where a child is either
// another element or a text run. The model only covers what the builder
// emits; it has no namespaces, comments or processing instructions.
//
// Documents are built once and then read. Nothing in this package mutates an
// element after [NewElement] returns it, so a finished document can be shared
// between goroutines.
package doc

import "strings"

// Item is anything that can be passed to [NewElement]: an [Attr], an
// [*Element] or a [Text].
type Item interface {
	sealedItem()
}

// Node is a child of an element: an [*Element] or a [Text].
type Node interface {
	Item
	sealedNode()
}

// Attr is a name/value pair on an element.
type Attr struct {
	Name  string
	Value string
}

// Text is a run of character data.
type Text string

// Element is a named node with attributes and children.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

func (Attr) sealedItem()     {}
func (Text) sealedItem()     {}
func (*Element) sealedItem() {}
func (Text) sealedNode()     {}
func (*Element) sealedNode() {}

// NewElement returns an element named name. Attributes and children are
// appended in argument order; nil items are skipped.
func NewElement(name string, items ...Item) *Element {
	e := &Element{Name: name}
	for _, it := range items {
		switch it := it.(type) {
		case Attr:
			e.Attrs = append(e.Attrs, it)
		case *Element:
			if it != nil {
				e.Children = append(e.Children, it)
			}
		case Text:
			e.Children = append(e.Children, it)
		}
	}
	return e
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Elements returns the element children in order.
func (e *Element) Elements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Element returns the first child element named name, or nil.
func (e *Element) Element(name string) *Element {
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && el.Name == name {
			return el
		}
	}
	return nil
}

// ElementsNamed returns every child element named name.
func (e *Element) ElementsNamed(name string) []*Element {
	var out []*Element
	for _, el := range e.Elements() {
		if el.Name == name {
			out = append(out, el)
		}
	}
	return out
}

// Text returns the concatenated text children.
func (e *Element) Text() string {
	var b strings.Builder
	for _, c := range e.Children {
		if t, ok := c.(Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

// Count returns the number of elements in the subtree rooted at e, e included.
func (e *Element) Count() int {
	n := 1
	for _, el := range e.Elements() {
		n += el.Count()
	}
	return n
}

// Document is a complete document with a single root element.
type Document struct {
	Root *Element
}

// New returns a document rooted at root.
func New(root *Element) *Document {
	return &Document{Root: root}
}
