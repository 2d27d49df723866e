package render

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/errors"
)

// RenderYAML serializes d as YAML. Each element is a single-key mapping from
// its name to its attributes, in order, followed by a "children" sequence
// when it has children. Text runs appear in the sequence as plain strings.
//
//	Transform:
//	  Rotation: "0"
//	  children:
//	    - Opacity:
//	        children:
//	          - 0@0(Linear), 100@30(Linear)
func RenderYAML(d *doc.Document, opts ...Option) ([]byte, error) {
	o := buildOptions(opts)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if o.indent > 0 {
		enc.SetIndent(o.indent)
	}
	if err := enc.Encode(yamlElement(d.Root)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
	}
	return buf.Bytes(), nil
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlElement(e *doc.Element) *yaml.Node {
	body := &yaml.Node{Kind: yaml.MappingNode}
	for _, a := range e.Attrs {
		body.Content = append(body.Content, yamlString(a.Name), yamlString(a.Value))
	}
	if len(e.Children) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, c := range e.Children {
			switch c := c.(type) {
			case *doc.Element:
				seq.Content = append(seq.Content, yamlElement(c))
			case doc.Text:
				seq.Content = append(seq.Content, yamlString(string(c)))
			}
		}
		body.Content = append(body.Content, yamlString("children"), seq)
	}
	return &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{yamlString(e.Name), body}}
}
