// Package treefile reads and writes element trees described in YAML.
//
// A tree document is one node mapping. Each node has a tag, optional
// attributes (in the order written), and either text or children:
//
//	tag: html
//	attrs: {lang: en}
//	children:
//	  - tag: head
//	    children:
//	      - {tag: title, text: Aurochs}
//	  - tag: body
//	    children:
//	      - {tag: p, text: Hello World!}
//	      - {tag: br, attrs: {class: breaking}, ref: brk}
//	      - {clone: brk, attrs: {id: still_breaking}}
//
// A node may name itself with ref. A later node can then use clone
// instead of tag to start from a deep copy of it and add its own
// attributes, text or children. Only nodes that are complete when the
// clone is reached can be referenced, so a node can never clone one of its
// ancestors.
//
// Documents are decoded with the dom builder API; the package does not
// parse HTML.
package treefile
