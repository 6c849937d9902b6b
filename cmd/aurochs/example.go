package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/aurochs-dev/aurochs/pkg/dom"
	"github.com/aurochs-dev/aurochs/pkg/render"
	"github.com/aurochs-dev/aurochs/pkg/tag"
	"github.com/aurochs-dev/aurochs/pkg/treefile"
)

func exampleCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print the example page",
		Long: `Print the example page built with the dom API.

The page shows attributes, text, nesting, void elements and a cloned
node. With --yaml the same tree is printed as a tree document, which is
a starting point for your own pages.

Examples:
  aurochs example
  aurochs example --yaml > pages/index.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExample(cmd.OutOrStdout(), asYAML)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the tree document instead of HTML")

	return cmd
}

func runExample(w io.Writer, asYAML bool) error {
	page := examplePage()
	if asYAML {
		return treefile.Encode(w, page)
	}
	_, err := io.WriteString(w, render.Render(page))
	return err
}

// examplePage builds the example page one element at a time.
func examplePage() *dom.Node {
	html := dom.CreateElement(tag.HTML)
	html.SetAttribute("lang", "en")

	title := dom.CreateElement(tag.Title)
	title.InnerText("Aurochs")

	head := dom.CreateElement(tag.Head)
	head.AppendChild(title)

	paragraph := dom.CreateElement(tag.P)
	paragraph.InnerText("Hello World!")

	br := dom.CreateElement(tag.Br)
	br.SetAttribute("class", "breaking")

	br2 := br.CloneNode()
	br2.SetAttribute("id", "still_breaking")

	body := dom.CreateElement(tag.Body)
	body.AppendChildList(paragraph, br, br2)

	html.AppendChildList(head, body)
	return html
}
