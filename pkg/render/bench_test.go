package render

import (
	"fmt"
	"testing"

	"github.com/aurochs-dev/aurochs/pkg/dom"
)

func BenchmarkRenderSimple(b *testing.B) {
	node := canonicalPage()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Render(node)
	}
}

func BenchmarkRenderLargeTree(b *testing.B) {
	list := dom.New("ul")
	for i := 0; i < 1000; i++ {
		list.AppendChild(dom.TextEl("li", fmt.Sprintf("Item %d", i)).With("class", "item"))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Render(list)
	}
}

func BenchmarkRenderDeepTree(b *testing.B) {
	root := dom.New("div")
	cur := root
	for i := 0; i < 100; i++ {
		next := dom.New("div")
		cur.AppendChild(next)
		cur = next
	}
	cur.InnerText("leaf")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Render(root)
	}
}

func BenchmarkCloneNode(b *testing.B) {
	node := canonicalPage()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		node.CloneNode()
	}
}
