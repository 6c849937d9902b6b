// Package dom provides the element tree that Aurochs renders.
//
// A Node is one HTML element: an immutable tag, an ordered attribute table
// and a content payload. Content is exactly one of Empty, Text or Children;
// assigning one discards whichever was set before.
//
// # Building
//
//	html := dom.New(tag.HTML)
//	html.SetAttribute("lang", "en")
//
//	title := dom.New(tag.Title)
//	title.InnerText("Aurochs")
//
//	head := dom.New(tag.Head)
//	head.AppendChild(title)
//	html.AppendChild(head)
//
// # Ownership
//
// A node belongs to at most one parent. AppendChild moves the child into
// the receiver; callers should not keep mutating a node after handing it
// over. When a node that already has a parent (or that would create a
// cycle) is appended, a deep clone is appended instead, so two parents
// never share a subtree.
//
// CloneNode is the only way to duplicate a subtree and always copies
// deeply.
//
// Nodes are not safe for concurrent mutation. Independent trees may be
// built on separate goroutines.
package dom
