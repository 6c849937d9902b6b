// Package render serializes dom trees into HTML text.
//
// Output is block-indented with inline leaves: an element with children
// puts its opening tag, each child and its closing tag on separate lines,
// while empty and text elements fit on a single line. Void elements
// (br, img, input, ...) are written as a lone opening tag.
//
// # Basic Usage
//
//	html := render.Render(root)
//
// produces, for the canonical page:
//
//	<html lang="en">
//	    <head>
//	        <title>Aurochs</title>
//	    </head>
//	    <body>
//	        <p>Hello World!</p>
//	    </body>
//	</html>
//
// # Configuration
//
// NewRenderer accepts a Config controlling indentation width, escaping,
// strict void-element checks and minification:
//
//	r := render.NewRenderer(render.Config{IndentWidth: 2, Strict: true})
//	html, err := r.RenderToString(root)
//
// # Escaping
//
// Text and attribute values are HTML-escaped by default. EscapeMinimal
// writes text verbatim and only escapes double quotes inside attribute
// values; it must only be used with trusted content.
//
// # Void elements
//
// Content assigned to a void element is not rendered. In strict mode the
// renderer returns an error matching ErrVoidContent instead.
package render
