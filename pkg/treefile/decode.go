package treefile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aurochs-dev/aurochs/internal/errors"
	"github.com/aurochs-dev/aurochs/pkg/dom"
)

// Node mapping keys.
const (
	keyTag      = "tag"
	keyAttrs    = "attrs"
	keyText     = "text"
	keyChildren = "children"
	keyRef      = "ref"
	keyClone    = "clone"
)

// MaxNodes caps the number of elements one document may produce,
// counting alias expansions and cloned subtrees.
const MaxNodes = 100_000

// Load reads and decodes the tree document at path. A missing file is
// reported with code E500 and still matches os.ErrNotExist.
func Load(path string) (*dom.Node, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FromError(err, errors.CodeNotFound).WithDetail("%s", path)
		}
		return nil, err
	}
	return decode(path, src)
}

// Decode reads a tree document from r.
func Decode(r io.Reader) (*dom.Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decode("", src)
}

// DecodeBytes decodes a tree document held in memory.
func DecodeBytes(src []byte) (*dom.Node, error) {
	return decode("", src)
}

// decoder holds per-document state.
type decoder struct {
	file string
	src  []byte
	refs map[string]*dom.Node

	// nodes counts elements produced so far.
	nodes int
}

func decode(file string, src []byte) (*dom.Node, error) {
	d := &decoder{file: file, src: src, refs: make(map[string]*dom.Node)}

	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(src)).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, d.syntaxError("document is empty")
		}
		return nil, d.syntaxError("").Wrap(err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, d.syntaxError("document is empty")
	}
	return d.node(doc.Content[0])
}

func (d *decoder) syntaxError(detail string) *errors.Error {
	err := errors.New(errors.CodeTreeSyntax).WithDetail("%s", detail)
	if d.file != "" {
		err.Location = &errors.Location{File: d.file}
	}
	return err
}

// errorAt builds an error positioned at n.
func (d *decoder) errorAt(code string, n *yaml.Node, format string, args ...any) *errors.Error {
	return errors.New(code).
		WithDetail("%s", fmt.Sprintf(format, args...)).
		WithSource(d.file, d.src, n.Line, n.Column)
}

// node decodes one node mapping, recursively.
func (d *decoder) node(n *yaml.Node) (*dom.Node, error) {
	n = resolveAlias(n)
	if n.Kind != yaml.MappingNode {
		return nil, d.errorAt(errors.CodeTreeNode, n, "expected a node mapping, found %s", kindName(n))
	}

	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		switch key.Value {
		case keyTag, keyAttrs, keyText, keyChildren, keyRef, keyClone:
		default:
			return nil, d.errorAt(errors.CodeTreeNode, key, "unknown field %q", key.Value)
		}
		if _, dup := fields[key.Value]; dup {
			return nil, d.errorAt(errors.CodeTreeNode, key, "field %q given twice", key.Value)
		}
		fields[key.Value] = value
	}

	tagNode, hasTag := fields[keyTag]
	cloneNode, hasClone := fields[keyClone]
	if hasTag == hasClone {
		return nil, d.errorAt(errors.CodeTreeNode, n, "node needs exactly one of %q or %q", keyTag, keyClone)
	}
	if _, hasText := fields[keyText]; hasText {
		if _, hasChildren := fields[keyChildren]; hasChildren {
			return nil, d.errorAt(errors.CodeTreeNode, n, "node has both %q and %q", keyText, keyChildren)
		}
	}

	if err := d.spend(n, 1); err != nil {
		return nil, err
	}

	var out *dom.Node
	if hasTag {
		name, err := d.scalar(tagNode, keyTag)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(name) == "" {
			return nil, d.errorAt(errors.CodeTreeNode, tagNode, "tag must not be empty")
		}
		out = dom.New(name)
	} else {
		ref, err := d.scalar(cloneNode, keyClone)
		if err != nil {
			return nil, err
		}
		src, ok := d.refs[ref]
		if !ok {
			return nil, d.errorAt(errors.CodeTreeRef, cloneNode, "no completed node with ref %q", ref)
		}
		if err := d.spend(cloneNode, subtreeSize(src)-1); err != nil {
			return nil, err
		}
		out = src.CloneNode()
	}

	if attrs, ok := fields[keyAttrs]; ok {
		if err := d.attrs(out, attrs); err != nil {
			return nil, err
		}
	}

	if text, ok := fields[keyText]; ok {
		s, err := d.scalar(text, keyText)
		if err != nil {
			return nil, err
		}
		out.InnerText(s)
	}

	if children, ok := fields[keyChildren]; ok {
		children = resolveAlias(children)
		if children.Kind != yaml.SequenceNode {
			return nil, d.errorAt(errors.CodeTreeNode, children, "%q must be a list, found %s", keyChildren, kindName(children))
		}
		for _, c := range children.Content {
			child, err := d.node(c)
			if err != nil {
				return nil, err
			}
			out.AppendChild(child)
		}
	}

	if refNode, ok := fields[keyRef]; ok {
		ref, err := d.scalar(refNode, keyRef)
		if err != nil {
			return nil, err
		}
		if _, dup := d.refs[ref]; dup {
			return nil, d.errorAt(errors.CodeTreeNode, refNode, "ref %q already declared", ref)
		}
		// Keep a private copy so later mutation of out cannot leak into clones.
		d.refs[ref] = out.CloneNode()
	}

	return out, nil
}

// spend charges n elements against MaxNodes.
func (d *decoder) spend(at *yaml.Node, n int) error {
	d.nodes += n
	if d.nodes > MaxNodes {
		return d.errorAt(errors.CodeTreeNode, at, "document expands to more than %d nodes", MaxNodes)
	}
	return nil
}

func subtreeSize(n *dom.Node) int {
	size := 0
	dom.Walk(n, func(*dom.Node, int) bool {
		size++
		return true
	})
	return size
}

// attrs applies an attribute mapping in document order.
func (d *decoder) attrs(out *dom.Node, n *yaml.Node) error {
	n = resolveAlias(n)
	if n.Kind != yaml.MappingNode {
		return d.errorAt(errors.CodeTreeNode, n, "%q must be a mapping, found %s", keyAttrs, kindName(n))
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, err := d.scalar(n.Content[i], "attribute name")
		if err != nil {
			return err
		}
		value, err := d.scalar(n.Content[i+1], "attribute "+key)
		if err != nil {
			return err
		}
		out.SetAttribute(key, value)
	}
	return nil
}

// scalar returns the string form of a scalar node. Null becomes "".
func (d *decoder) scalar(n *yaml.Node, what string) (string, error) {
	n = resolveAlias(n)
	if n.Kind != yaml.ScalarNode {
		return "", d.errorAt(errors.CodeTreeNode, n, "%s must be a scalar, found %s", what, kindName(n))
	}
	if n.Tag == "!!null" {
		return "", nil
	}
	return n.Value, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
