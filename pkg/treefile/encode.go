package treefile

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aurochs-dev/aurochs/pkg/dom"
)

// Encode writes node as a tree document. Leaf nodes are written in flow
// style on a single line.
func Encode(w io.Writer, node *dom.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(encodeNode(node)); err != nil {
		return err
	}
	return enc.Close()
}

// Marshal returns node as a tree document.
func Marshal(node *dom.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeNode(n *dom.Node) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *yaml.Node) {
		m.Content = append(m.Content, str(key), value)
	}

	add(keyTag, str(n.Tag()))

	if n.Attributes().Len() > 0 {
		attrs := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
		for k, v := range n.Attributes().All() {
			attrs.Content = append(attrs.Content, str(k), str(v))
		}
		add(keyAttrs, attrs)
	}

	switch c := n.Content().(type) {
	case dom.Text:
		add(keyText, str(string(c)))
		m.Style = yaml.FlowStyle
	case dom.Children:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, child := range c {
			seq.Content = append(seq.Content, encodeNode(child))
		}
		add(keyChildren, seq)
	default:
		m.Style = yaml.FlowStyle
	}

	return m
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
