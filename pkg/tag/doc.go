// Package tag classifies HTML element identifiers.
//
// Tags are plain strings. The constants in this package cover the common
// HTML elements so callers can write dom.New(tag.Body), but any string is
// a valid identifier: custom elements such as "my-widget" are accepted
// everywhere a constant is.
//
// The only classification the renderer needs is void-ness. A void element
// never has content and is rendered as a lone opening tag:
//
//	tag.IsVoid("br")        // true
//	tag.IsVoid("IMG")       // true
//	tag.IsVoid("div")       // false
//	tag.IsVoid("my-widget") // false
package tag
