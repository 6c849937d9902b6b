package dom

// El creates a node with the given children.
//
//	dom.El(tag.Ul, dom.TextEl(tag.Li, "one"), dom.TextEl(tag.Li, "two"))
func El(tag string, children ...*Node) *Node {
	n := New(tag)
	n.AppendChildList(children...)
	return n
}

// TextEl creates a node whose content is text.
func TextEl(tag, text string) *Node {
	n := New(tag)
	n.InnerText(text)
	return n
}

// Walk calls fn for n and every descendant in depth-first pre-order,
// passing each node's depth (n is at depth 0). Returning false from fn
// skips that node's subtree.
func Walk(n *Node, fn func(node *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children() {
		walk(c, depth+1, fn)
	}
}
