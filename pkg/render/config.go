package render

import (
	"fmt"
	"strings"
)

// DefaultIndentWidth is the number of spaces per depth level.
const DefaultIndentWidth = 4

// EscapeMode selects how text and attribute values are escaped.
type EscapeMode uint8

const (
	// EscapeHTML escapes text and attribute values as HTML.
	EscapeHTML EscapeMode = iota

	// EscapeMinimal writes text verbatim and escapes only double quotes
	// in attribute values.
	EscapeMinimal
)

// String returns the configuration name of the mode.
func (m EscapeMode) String() string {
	switch m {
	case EscapeHTML:
		return "html"
	case EscapeMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// ParseEscapeMode parses "html" or "minimal" (case-insensitive).
func ParseEscapeMode(s string) (EscapeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return EscapeHTML, nil
	case "minimal", "none":
		return EscapeMinimal, nil
	default:
		return 0, fmt.Errorf("unknown escape mode %q (want html or minimal)", s)
	}
}

// Config configures the HTML renderer. The zero value renders with
// four-space indentation and HTML escaping.
type Config struct {
	// IndentWidth is the number of spaces per depth level.
	// Zero means DefaultIndentWidth; a negative value disables indentation.
	IndentWidth int

	// Escape selects the escaping mode. Defaults to EscapeHTML.
	Escape EscapeMode

	// Strict makes rendering fail when a void element carries content,
	// instead of silently dropping it.
	Strict bool

	// Minify collapses the rendered output with an HTML minifier.
	Minify bool

	// Doctype prefixes the output with an HTML5 doctype line.
	Doctype bool
}

// indentUnit returns the string written once per depth level.
func (c Config) indentUnit() string {
	switch {
	case c.IndentWidth == 0:
		return strings.Repeat(" ", DefaultIndentWidth)
	case c.IndentWidth < 0:
		return ""
	default:
		return strings.Repeat(" ", c.IndentWidth)
	}
}
