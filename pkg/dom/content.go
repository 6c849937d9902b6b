package dom

// Content is a node's payload: Empty, Text or Children.
// The interface is sealed; no other implementations exist.
type Content interface {
	content()
}

// Empty is the content of a freshly created node.
type Empty struct{}

// Text is plain text content.
type Text string

// Children is an ordered list of child nodes.
type Children []*Node

func (Empty) content()    {}
func (Text) content()     {}
func (Children) content() {}
