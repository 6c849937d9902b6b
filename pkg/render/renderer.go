package render

import (
	"io"
	"strings"

	"github.com/aurochs-dev/aurochs/internal/errors"
	"github.com/aurochs-dev/aurochs/pkg/dom"
	"github.com/aurochs-dev/aurochs/pkg/tag"
)

// Doctype is the line written before the root element when
// Config.Doctype is set.
const Doctype = "<!DOCTYPE html>"

// Error is the structured error returned by rendering. Use errors.As with
// a *Error to read its Code and Detail.
type Error = errors.Error

// ErrVoidContent matches, via errors.Is, the error returned in strict mode
// when a void element carries text or children.
var ErrVoidContent error = errors.New(errors.CodeVoidContent)

// Renderer serializes dom trees. A Renderer only holds its configuration
// and is safe for concurrent use.
type Renderer struct {
	config Config
	indent string
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	return &Renderer{
		config: config,
		indent: config.indentUnit(),
	}
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config {
	return r.config
}

var defaultRenderer = NewRenderer(Config{})

// Render renders node with the default configuration. It never fails;
// a nil node renders as the empty string.
func Render(node *dom.Node) string {
	s, _ := defaultRenderer.RenderToString(node)
	return s
}

// Document renders node with the default configuration, preceded by the
// HTML5 doctype line.
func Document(node *dom.Node) string {
	s, _ := NewRenderer(Config{Doctype: true}).RenderToString(node)
	return s
}

// RenderToString renders a tree to a string.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	if node == nil {
		return "", nil
	}

	var b strings.Builder
	if r.config.Doctype {
		b.WriteString(Doctype)
		b.WriteByte('\n')
	}
	if err := r.renderNode(&b, node, 0); err != nil {
		return "", err
	}

	out := b.String()
	if r.config.Minify {
		minified, err := Minify(out)
		if err != nil {
			return "", err
		}
		out = minified
	}
	return out, nil
}

// RenderToWriter renders a tree and writes it to w. Nothing is written if
// rendering fails.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	s, err := r.RenderToString(node)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// renderNode writes node and its subtree, one line per element except for
// elements with children, which span an opening line, their children and
// a closing line.
func (r *Renderer) renderNode(b *strings.Builder, node *dom.Node, depth int) error {
	name := node.Tag()

	r.writeIndent(b, depth)
	b.WriteByte('<')
	b.WriteString(name)
	r.renderAttributes(b, node.Attributes())
	b.WriteByte('>')

	if tag.IsVoid(name) {
		if r.config.Strict {
			if err := checkVoid(node); err != nil {
				return err
			}
		}
		b.WriteByte('\n')
		return nil
	}

	switch c := node.Content().(type) {
	case dom.Text:
		b.WriteString(r.escapeText(string(c)))
	case dom.Children:
		b.WriteByte('\n')
		for _, child := range c {
			if err := r.renderNode(b, child, depth+1); err != nil {
				return err
			}
		}
		r.writeIndent(b, depth)
	}

	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">\n")
	return nil
}

// renderAttributes writes ` key="value"` for each attribute in insertion
// order.
func (r *Renderer) renderAttributes(b *strings.Builder, attrs *dom.Attributes) {
	for key, value := range attrs.All() {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(r.escapeAttr(value))
		b.WriteByte('"')
	}
}

func (r *Renderer) escapeText(s string) string {
	if r.config.Escape == EscapeMinimal {
		return s
	}
	return escapeHTML(s)
}

func (r *Renderer) escapeAttr(s string) string {
	if r.config.Escape == EscapeMinimal {
		return escapeQuotes(s)
	}
	return escapeAttr(s)
}

// writeIndent writes indentation for the given depth.
func (r *Renderer) writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(r.indent)
	}
}

// checkVoid returns an error if a void node carries content.
func checkVoid(node *dom.Node) error {
	switch c := node.Content().(type) {
	case dom.Text:
		return errors.New(errors.CodeVoidContent).
			WithDetail("<%s> has text content %q", node.Tag(), string(c))
	case dom.Children:
		return errors.New(errors.CodeVoidContent).
			WithDetail("<%s> has %d children", node.Tag(), len(c))
	}
	return nil
}
