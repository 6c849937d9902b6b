package render

import (
	"strings"
	"testing"

	"github.com/aurochs-dev/aurochs/pkg/dom"
	"github.com/aurochs-dev/aurochs/pkg/tag"
	"golang.org/x/net/html"
)

// canonicalPage builds html[lang=en] > (head > title, body > p).
func canonicalPage() *dom.Node {
	root := dom.New(tag.HTML)
	root.SetAttribute("lang", "en")

	title := dom.New(tag.Title)
	title.InnerText("Aurochs")

	head := dom.New(tag.Head)
	head.AppendChild(title)

	paragraph := dom.New(tag.P)
	paragraph.InnerText("Hello World!")

	body := dom.New(tag.Body)
	body.AppendChild(paragraph)

	root.AppendChildList(head, body)
	return root
}

// parsedTags parses markup with the HTML5 parser and returns the element
// tag names in document order.
func parsedTags(t *testing.T, markup string) []string {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}

	var tags []string
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			tags = append(tags, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	return tags
}

// treeTags returns the tag names of a dom tree in pre-order.
func treeTags(root *dom.Node) []string {
	var tags []string
	dom.Walk(root, func(n *dom.Node, _ int) bool {
		tags = append(tags, n.Tag())
		return true
	})
	return tags
}
