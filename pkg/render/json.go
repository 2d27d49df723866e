package render

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/errors"
)

type jsonAttr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// jsonNode is an element when Name is set and a text run otherwise.
type jsonNode struct {
	Name       string     `json:"name,omitempty"`
	Attributes []jsonAttr `json:"attributes,omitempty"`
	Children   []jsonNode `json:"children,omitempty"`
	Text       *string    `json:"text,omitempty"`
}

// RenderJSON serializes d as an ordered JSON tree:
//
//	{"name": "Transform", "attributes": [{"name": "Rotation", "value": "0"}],
//	 "children": [{"name": "Opacity", "children": [{"text": "0@0(Linear), ..."}]}]}
func RenderJSON(d *doc.Document, opts ...Option) ([]byte, error) {
	o := buildOptions(opts)
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if o.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", o.indent))
	}
	if err := enc.Encode(toJSONNode(d.Root)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return buf.Bytes(), nil
}

func toJSONNode(e *doc.Element) jsonNode {
	n := jsonNode{Name: e.Name}
	for _, a := range e.Attrs {
		n.Attributes = append(n.Attributes, jsonAttr(a))
	}
	for _, c := range e.Children {
		switch c := c.(type) {
		case *doc.Element:
			n.Children = append(n.Children, toJSONNode(c))
		case doc.Text:
			s := string(c)
			n.Children = append(n.Children, jsonNode{Text: &s})
		}
	}
	return n
}

// ParseJSON reads a document written by [RenderJSON].
func ParseJSON(r io.Reader) (*doc.Document, error) {
	var n jsonNode
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse json")
	}
	root, err := fromJSONNode(n)
	if err != nil {
		return nil, err
	}
	return doc.New(root), nil
}

func fromJSONNode(n jsonNode) (*doc.Element, error) {
	if n.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "parse json: element without name")
	}
	e := &doc.Element{Name: n.Name}
	for _, a := range n.Attributes {
		e.Attrs = append(e.Attrs, doc.Attr(a))
	}
	for _, c := range n.Children {
		if c.Text != nil {
			e.Children = append(e.Children, doc.Text(*c.Text))
			continue
		}
		child, err := fromJSONNode(c)
		if err != nil {
			return nil, err
		}
		e.Children = append(e.Children, child)
	}
	return e, nil
}
