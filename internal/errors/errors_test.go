package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "void content",
			code:    CodeVoidContent,
			wantMsg: "Content assigned to a void element",
			wantCat: CategoryValidation,
		},
		{
			name:    "tree node",
			code:    CodeTreeNode,
			wantMsg: "Malformed tree node",
			wantCat: CategoryTreefile,
		},
		{
			name:    "config",
			code:    CodeConfig,
			wantMsg: "Invalid configuration",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := New(CodeTreeNode).WithDetail("unknown field %q", "txt")
	err.Location = &Location{File: "index.yaml", Line: 3, Column: 5}

	want := `index.yaml:3:5: E201: Malformed tree node: unknown field "txt"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsByCode(t *testing.T) {
	err := fmt.Errorf("render: %w", New(CodeVoidContent).WithDetail("<br> has text"))

	if !stderrors.Is(err, New(CodeVoidContent)) {
		t.Error("errors.Is should match on code")
	}
	if stderrors.Is(err, New(CodeConfig)) {
		t.Error("errors.Is should not match a different code")
	}
	if stderrors.Is(err, Newf(CategoryCLI, "no code")) {
		t.Error("errors without a code never match")
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("access denied")
	err := New(CodePublish).Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause should be reachable")
	}
	if !strings.Contains(err.Error(), "access denied") {
		t.Errorf("Error() = %q, missing cause", err.Error())
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, CodeConfig) != nil {
		t.Error("FromError(nil) should be nil")
	}

	orig := New(CodeTreeSyntax)
	if FromError(orig, CodeConfig) != orig {
		t.Error("existing *Error should be returned unchanged")
	}

	wrapped := FromError(stderrors.New("boom"), CodeConfig)
	if wrapped.Code != CodeConfig || wrapped.Wrapped == nil {
		t.Errorf("FromError = %+v", wrapped)
	}
}

func TestWithLocationReadsContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.yaml")
	src := "tag: html\nchildren:\n  - tag: p\n    txt: hi\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	err := New(CodeTreeNode).WithLocation(path, 3, 5)
	if len(err.Context) != 3 {
		t.Fatalf("len(Context) = %d, want 3: %q", len(err.Context), err.Context)
	}
	if err.Context[1] != "  - tag: p" || err.Context[2] != "    txt: hi" {
		t.Errorf("Context = %q", err.Context)
	}
}

func TestWithSourceAtFirstLine(t *testing.T) {
	err := New(CodeTreeSyntax).WithSource("", []byte("a: [\nb: c\n"), 1, 4)
	if len(err.Context) != 2 {
		t.Fatalf("len(Context) = %d, want 2", len(err.Context))
	}
	if err.Location.String() != "<input>:1:4" {
		t.Errorf("Location = %q", err.Location.String())
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New(CodeTreeNode).
		WithDetail(`node has both "text" and "children"`).
		WithSource("index.yaml", []byte("tag: p\ntext: hi\nchildren: []\n"), 2, 1)

	out := err.Format()
	for _, want := range []string{
		"ERROR E201: Malformed tree node",
		"index.yaml:2:1",
		"→    2 │ text: hi",
		"│ ^",
		`node has both "text" and "children"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}

	if got := Format(fmt.Errorf("ctx: %w", err)); got != out {
		t.Error("package Format should unwrap to *Error")
	}
	if got := Format(stderrors.New("plain")); got != "ERROR: plain\n" {
		t.Errorf("Format(plain) = %q", got)
	}
	if Format(nil) != "" {
		t.Error("Format(nil) should be empty")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New(CodeConfig)
	err.Location = &Location{File: "aurochs.yaml", Line: 2}
	if got := err.FormatCompact(); got != "aurochs.yaml:2: E300: Invalid configuration" {
		t.Errorf("FormatCompact() = %q", got)
	}

	err.WithDetail("render.indent must be at most 16")
	if got := err.FormatCompact(); got != "aurochs.yaml:2: E300: Invalid configuration: render.indent must be at most 16" {
		t.Errorf("FormatCompact() with detail = %q", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if len(lines) != len(want) {
		t.Fatalf("wrapText = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if wrapText("", 10) != nil {
		t.Error("empty text should produce no lines")
	}
}

func TestGetAllCodesSorted(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 || codes[0] != CodeVoidContent {
		t.Errorf("GetAllCodes() = %v", codes)
	}
	for _, c := range codes {
		if _, ok := GetTemplate(c); !ok {
			t.Errorf("no template for %s", c)
		}
	}
}
