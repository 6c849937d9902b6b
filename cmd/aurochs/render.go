package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aurochs-dev/aurochs/internal/config"
	"github.com/aurochs-dev/aurochs/pkg/dom"
	"github.com/aurochs-dev/aurochs/pkg/render"
	"github.com/aurochs-dev/aurochs/pkg/treefile"
)

type renderFlags struct {
	indent  int
	escape  string
	strict  bool
	minify  bool
	doctype bool
	output  string
}

func renderCmd(global *globalFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render <file.yaml>",
		Short: "Render a tree document to HTML",
		Long: `Render a tree document to HTML.

Settings come from aurochs.yaml and can be overridden with flags.
Use "-" to read the document from standard input.

Examples:
  aurochs render pages/index.yaml
  aurochs render pages/index.yaml -o dist/index.html
  aurochs render --indent=2 --doctype page.yaml
  cat page.yaml | aurochs render -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}
			rc, err := renderConfig(cmd, cfg, flags)
			if err != nil {
				return err
			}
			return runRender(cmd.InOrStdin(), cmd.OutOrStdout(), args[0], flags.output, rc)
		},
	}

	cmd.Flags().IntVar(&flags.indent, "indent", render.DefaultIndentWidth, "Spaces per depth level (0 disables indentation)")
	cmd.Flags().StringVar(&flags.escape, "escape", render.EscapeHTML.String(), "Escaping mode: html or minimal")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail when a void element carries content")
	cmd.Flags().BoolVar(&flags.minify, "minify", false, "Minify the output")
	cmd.Flags().BoolVar(&flags.doctype, "doctype", false, "Prefix the output with <!DOCTYPE html>")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

// renderConfig applies the flags the user set over the file settings and
// validates the result.
func renderConfig(cmd *cobra.Command, cfg *config.Config, flags *renderFlags) (render.Config, error) {
	set := cmd.Flags().Changed
	if set("indent") {
		cfg.Render.Indent = flags.indent
	}
	if set("escape") {
		cfg.Render.Escape = flags.escape
	}
	if set("strict") {
		cfg.Render.Strict = flags.strict
	}
	if set("minify") {
		cfg.Render.Minify = flags.minify
	}
	if set("doctype") {
		cfg.Render.Doctype = flags.doctype
	}
	if err := cfg.Validate(); err != nil {
		return render.Config{}, err
	}
	return cfg.RenderConfig(), nil
}

func runRender(stdin io.Reader, stdout io.Writer, source, output string, rc render.Config) error {
	var (
		root *dom.Node
		err  error
	)
	if source == "-" {
		root, err = treefile.Decode(stdin)
	} else {
		root, err = treefile.Load(source)
	}
	if err != nil {
		return err
	}

	html, err := render.NewRenderer(rc).RenderToString(root)
	if err != nil {
		return err
	}
	if err := writeOutput(stdout, output, html); err != nil {
		return err
	}
	if output != "" {
		slog.Debug("rendered", "source", source, "output", output, "bytes", len(html))
	}
	return nil
}

func writeOutput(stdout io.Writer, output string, data string) error {
	if output == "" {
		_, err := io.WriteString(stdout, data)
		return err
	}
	return os.WriteFile(output, []byte(data), 0o644)
}
