package main

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aurochs-dev/aurochs/internal/config"
	"github.com/aurochs-dev/aurochs/internal/errors"
	"github.com/aurochs-dev/aurochs/pkg/render"
	"github.com/aurochs-dev/aurochs/pkg/treefile"
)

const examplePageHTML = `<html lang="en">
    <head>
        <title>Aurochs</title>
    </head>
    <body>
        <p>Hello World!</p>
        <br class="breaking">
        <br class="breaking" id="still_breaking">
    </body>
</html>
`

// run executes the CLI with args and an isolated configuration path.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), config.ConfigFileName)
	return runWithConfig(t, cfgPath, stdin, args...)
}

func runWithConfig(t *testing.T, cfgPath, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExample(t *testing.T) {
	out, err := run(t, "", "example")
	if err != nil {
		t.Fatal(err)
	}
	if out != examplePageHTML {
		t.Errorf("example output:\n%s\nwant:\n%s", out, examplePageHTML)
	}
}

func TestExampleYAMLRendersSamePage(t *testing.T) {
	out, err := run(t, "", "example", "--yaml")
	if err != nil {
		t.Fatal(err)
	}
	root, err := treefile.DecodeBytes([]byte(out))
	if err != nil {
		t.Fatalf("decoding example yaml: %v\n%s", err, out)
	}
	if got := render.Render(root); got != examplePageHTML {
		t.Errorf("rendered yaml:\n%s\nwant:\n%s", got, examplePageHTML)
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "page.yaml", "tag: div\nchildren:\n  - {tag: p, text: a & b}\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"defaults", []string{"render", doc}, "<div>\n    <p>a &amp; b</p>\n</div>\n"},
		{"indent", []string{"render", "--indent=2", doc}, "<div>\n  <p>a &amp; b</p>\n</div>\n"},
		{"no indent", []string{"render", "--indent=0", doc}, "<div>\n<p>a &amp; b</p>\n</div>\n"},
		{"minimal escape", []string{"render", "--escape=minimal", doc}, "<div>\n    <p>a & b</p>\n</div>\n"},
		{"doctype", []string{"render", "--doctype", doc}, "<!DOCTYPE html>\n<div>\n    <p>a &amp; b</p>\n</div>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRenderStdinAndOutputFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.html")

	out, err := run(t, "tag: br\n", "render", "-", "-o", outPath)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<br>\n" {
		t.Errorf("file = %q", data)
	}
}

func TestRenderUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, config.ConfigFileName, "render:\n  indent: 1\n  doctype: true\n")
	doc := writeFile(t, dir, "page.yaml", "tag: ul\nchildren:\n  - {tag: li}\n")

	out, err := runWithConfig(t, cfgPath, "", "render", doc)
	if err != nil {
		t.Fatal(err)
	}
	if want := "<!DOCTYPE html>\n<ul>\n <li></li>\n</ul>\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	out, err = runWithConfig(t, cfgPath, "", "render", "--indent=3", "--doctype=false", doc)
	if err != nil {
		t.Fatal(err)
	}
	if want := "<ul>\n   <li></li>\n</ul>\n"; out != want {
		t.Errorf("output with flags = %q, want %q", out, want)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	voidDoc := writeFile(t, dir, "void.yaml", "tag: br\ntext: nope\n")
	badDoc := writeFile(t, dir, "bad.yaml", "tag: [\n")

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"bad escape flag", []string{"render", "--escape=xml", voidDoc}, errors.CodeConfig},
		{"indent too large", []string{"render", "--indent=40", voidDoc}, errors.CodeConfig},
		{"strict void content", []string{"render", "--strict", voidDoc}, errors.CodeVoidContent},
		{"invalid yaml", []string{"render", badDoc}, errors.CodeTreeSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			if !stderrors.Is(err, errors.New(tt.code)) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}

	t.Run("void content dropped without strict", func(t *testing.T) {
		out, err := run(t, "", "render", voidDoc)
		if err != nil {
			t.Fatal(err)
		}
		if out != "<br>\n" {
			t.Errorf("output = %q", out)
		}
	})
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, "", "init", dir); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("loading written config: %v", err)
	}
	if cfg.Serve.Addr != config.DefaultAddr {
		t.Errorf("Serve.Addr = %q", cfg.Serve.Addr)
	}

	index, err := treefile.Load(filepath.Join(dir, config.DefaultRoot, "index.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if got := render.Render(index); got != examplePageHTML {
		t.Errorf("index page:\n%s", got)
	}

	if _, err := run(t, "", "init", dir); err == nil {
		t.Error("second init without --force should fail")
	}
	if _, err := run(t, "", "init", "--force", dir); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestVersionShort(t *testing.T) {
	out, err := run(t, "", "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if out != version+"\n" {
		t.Errorf("version --short = %q", out)
	}
}

func TestPublishRequiresArgs(t *testing.T) {
	if _, err := run(t, "", "publish"); err == nil {
		t.Error("publish without documents should fail")
	}
}

func TestExplain(t *testing.T) {
	out, err := run(t, "", "explain")
	if err != nil {
		t.Fatal(err)
	}
	for _, code := range errors.GetAllCodes() {
		if !strings.Contains(out, code) {
			t.Errorf("explain output missing %s", code)
		}
	}

	out, err = run(t, "", "explain", "e100")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "E100: Content assigned to a void element\n") {
		t.Errorf("explain e100 = %q", out)
	}

	if _, err := run(t, "", "explain", "E999"); err == nil {
		t.Error("unknown code should fail")
	}
}
