package render

import "strings"

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	return escape(s, textEntity)
}

// escapeAttr escapes an attribute value. Besides the text entities it
// escapes whitespace that attribute normalization would otherwise fold.
func escapeAttr(s string) string {
	return escape(s, attrEntity)
}

// escapeQuotes escapes only double quotes, enough to keep an attribute
// value inside its delimiters.
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}

func textEntity(c byte) string {
	switch c {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '"':
		return "&quot;"
	case '\'':
		return "&#39;"
	}
	return ""
}

func attrEntity(c byte) string {
	switch c {
	case '\n':
		return "&#10;"
	case '\r':
		return "&#13;"
	case '\t':
		return "&#9;"
	}
	return textEntity(c)
}

// escape replaces each byte that entity maps to a non-empty string. Every
// escaped character is ASCII, so scanning bytes leaves other bytes,
// including invalid UTF-8, untouched. s is returned as-is when nothing
// needs escaping.
func escape(s string, entity func(byte) string) string {
	var b strings.Builder
	last := 0
	for i := 0; i < len(s); i++ {
		e := entity(s[i])
		if e == "" {
			continue
		}
		if b.Cap() == 0 {
			b.Grow(len(s) + 8)
		}
		b.WriteString(s[last:i])
		b.WriteString(e)
		last = i + 1
	}
	if b.Cap() == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}
