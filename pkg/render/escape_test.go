package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"plain text", "Hello, World!", "Hello, World!"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"less than", "a < b", "a &lt; b"},
		{"greater than", "a > b", "a &gt; b"},
		{"double quote", `say "hello"`, "say &quot;hello&quot;"},
		{"single quote", "it's fine", "it&#39;s fine"},
		{"script tag", "<script>alert('xss')</script>", "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;"},
		{"unicode", "héllo → wörld", "héllo → wörld"},
		{"newline kept", "a\nb", "a\nb"},
		{"escape at start", "&x", "&amp;x"},
		{"invalid utf-8 kept", "x\xff", "x\xff"},
		{"invalid utf-8 with escape", "x\xff&", "x\xff&amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeHTML(tt.input); got != tt.expected {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "breaking", "breaking"},
		{"quotes", `a "b"`, "a &quot;b&quot;"},
		{"newline", "a\nb", "a&#10;b"},
		{"carriage return", "a\rb", "a&#13;b"},
		{"tab", "a\tb", "a&#9;b"},
		{"injection", `x" onclick="evil()`, "x&quot; onclick=&quot;evil()"},
		{"invalid utf-8 with escape", "\xfe<", "\xfe&lt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeAttr(tt.input); got != tt.expected {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEscapeQuotes(t *testing.T) {
	if got := escapeQuotes(`a "b" & <c>`); got != "a &quot;b&quot; & <c>" {
		t.Errorf("escapeQuotes = %q", got)
	}
}
