package dom

// Node is one element in the tree.
type Node struct {
	tag     string
	attrs   *Attributes
	content Content

	// owned is set while the node sits in a parent's child list.
	owned bool
}

// New creates a node with the given tag, no attributes and Empty content.
func New(tag string) *Node {
	return &Node{
		tag:     tag,
		attrs:   NewAttributes(),
		content: Empty{},
	}
}

// CreateElement is an alias for New.
func CreateElement(tag string) *Node {
	return New(tag)
}

// Tag returns the element's tag identifier.
func (n *Node) Tag() string {
	return n.tag
}

// Attributes returns the node's attribute table.
func (n *Node) Attributes() *Attributes {
	return n.attrs
}

// Content returns the node's current payload.
func (n *Node) Content() Content {
	return n.content
}

// Text returns the text content and true if the content is Text.
func (n *Node) Text() (string, bool) {
	t, ok := n.content.(Text)
	return string(t), ok
}

// Children returns the child list, or nil if the content is not Children.
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	c, _ := n.content.(Children)
	return c
}

// SetAttribute sets an attribute on the node. Setting an existing key
// overwrites the value without changing its position.
func (n *Node) SetAttribute(key, value string) {
	n.attrs.Set(key, value)
}

// SetAttributeList sets each key/value pair in order.
func (n *Node) SetAttributeList(pairs ...[2]string) {
	for _, p := range pairs {
		n.attrs.Set(p[0], p[1])
	}
}

// InnerText replaces the node's content with text. Any children are
// discarded.
func (n *Node) InnerText(text string) {
	n.setContent(Text(text))
}

// AppendChild moves child to the end of the node's child list. Text
// content is discarded when the first child is appended.
//
// If child already has a parent, is n itself, or contains n, a deep clone
// of child is appended instead. A nil child is ignored.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	if child.owned || child == n || child.contains(n) {
		child = child.CloneNode()
	}
	child.owned = true

	if list, ok := n.content.(Children); ok {
		n.content = append(list, child)
		return
	}
	n.content = Children{child}
}

// AppendChildList appends each child in order.
func (n *Node) AppendChildList(children ...*Node) {
	for _, c := range children {
		n.AppendChild(c)
	}
}

// CloneNode returns a deep copy of the node. The copy shares no state with
// the original and has no parent.
func (n *Node) CloneNode() *Node {
	c := &Node{
		tag:   n.tag,
		attrs: n.attrs.Clone(),
	}
	switch v := n.content.(type) {
	case Text:
		c.content = v
	case Children:
		list := make(Children, len(v))
		for i, child := range v {
			cc := child.CloneNode()
			cc.owned = true
			list[i] = cc
		}
		c.content = list
	default:
		c.content = Empty{}
	}
	return c
}

// With sets an attribute and returns the node, for chaining.
func (n *Node) With(key, value string) *Node {
	n.attrs.Set(key, value)
	return n
}

// setContent installs c and releases any children it replaces.
func (n *Node) setContent(c Content) {
	if old, ok := n.content.(Children); ok {
		for _, child := range old {
			child.owned = false
		}
	}
	n.content = c
}

// contains reports whether target is a strict descendant of n.
func (n *Node) contains(target *Node) bool {
	for _, child := range n.Children() {
		if child == target || child.contains(target) {
			return true
		}
	}
	return false
}
