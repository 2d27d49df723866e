package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/errors"
)

// Header is the declaration written before every XML document.
const Header = `<?xml version="1.0" encoding="utf-8"?>`

// RenderXML serializes d as XML.
func RenderXML(d *doc.Document, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteXML(&buf, d, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteXML writes d as XML to w. The output ends with a newline.
func WriteXML(w io.Writer, d *doc.Document, opts ...Option) error {
	o := buildOptions(opts)
	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if o.indent > 0 {
		enc.Indent("", strings.Repeat(" ", o.indent))
	}
	if err := encodeElement(enc, d.Root); err != nil {
		return fmt.Errorf("encode xml: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("encode xml: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func encodeElement(enc *xml.Encoder, e *doc.Element) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range e.Children {
		switch c := c.(type) {
		case *doc.Element:
			if err := encodeElement(enc, c); err != nil {
				return err
			}
		case doc.Text:
			if err := enc.EncodeToken(xml.CharData(c)); err != nil {
				return err
			}
		}
	}
	return enc.EncodeToken(start.End())
}

// ParseXML reads a document written by [WriteXML]. Whitespace-only text
// between elements is dropped; comments and processing instructions are
// ignored.
func ParseXML(r io.Reader) (*doc.Document, error) {
	dec := xml.NewDecoder(r)
	var (
		stack []*doc.Element
		root  *doc.Element
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse xml")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			e := &doc.Element{Name: t.Name.Local}
			for _, a := range t.Attr {
				e.Attrs = append(e.Attrs, doc.Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New(errors.ErrCodeInvalidFormat, "parse xml: multiple root elements")
				}
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 || len(bytes.TrimSpace(t)) == 0 {
				continue
			}
			appendText(stack[len(stack)-1], string(t))
		}
	}
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "parse xml: no root element")
	}
	return doc.New(root), nil
}

// appendText merges adjacent character data into one text node.
func appendText(e *doc.Element, s string) {
	if n := len(e.Children); n > 0 {
		if prev, ok := e.Children[n-1].(doc.Text); ok {
			e.Children[n-1] = prev + doc.Text(s)
			return
		}
	}
	e.Children = append(e.Children, doc.Text(s))
}
