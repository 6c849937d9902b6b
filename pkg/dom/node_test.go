package dom

import "testing"

func TestNew(t *testing.T) {
	n := New("section")

	if n.Tag() != "section" {
		t.Errorf("Tag() = %q, want section", n.Tag())
	}
	if n.Attributes().Len() != 0 {
		t.Errorf("new node has %d attributes", n.Attributes().Len())
	}
	if _, ok := n.Content().(Empty); !ok {
		t.Errorf("new node content = %T, want Empty", n.Content())
	}
	if CreateElement("p").Tag() != "p" {
		t.Error("CreateElement should behave like New")
	}
}

func TestInnerTextReplacesChildren(t *testing.T) {
	n := New("div")
	child := New("span")
	n.AppendChild(child)

	n.InnerText("hello")

	text, ok := n.Text()
	if !ok || text != "hello" {
		t.Fatalf("Text() = %q, %v", text, ok)
	}
	if n.Children() != nil {
		t.Error("children should be discarded")
	}
	if child.owned {
		t.Error("discarded child should be released")
	}
}

func TestAppendChildReplacesText(t *testing.T) {
	n := New("p")
	n.InnerText("discard me")
	n.AppendChild(New("b"))

	if _, ok := n.Text(); ok {
		t.Error("text should be discarded after AppendChild")
	}
	if len(n.Children()) != 1 {
		t.Errorf("len(Children()) = %d, want 1", len(n.Children()))
	}
}

func TestAppendChildListOrder(t *testing.T) {
	a, b, c := New("h1"), New("h2"), New("h3")

	viaList := New("body")
	viaList.AppendChildList(a, b, c)

	one := New("body")
	one.AppendChild(New("h1"))
	one.AppendChild(New("h2"))
	one.AppendChild(New("h3"))

	got := viaList.Children()
	want := one.Children()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Tag() != want[i].Tag() {
			t.Errorf("child %d = %q, want %q", i, got[i].Tag(), want[i].Tag())
		}
	}
	if got[0] != a || got[1] != b || got[2] != c {
		t.Error("unowned children should be moved, not cloned")
	}
}

func TestAppendChildIgnoresNil(t *testing.T) {
	n := New("div")
	n.AppendChild(nil)
	if _, ok := n.Content().(Empty); !ok {
		t.Errorf("content = %T, want Empty", n.Content())
	}
}

func TestAppendOwnedChildClones(t *testing.T) {
	child := New("li")
	child.InnerText("item")

	first := New("ul")
	first.AppendChild(child)
	second := New("ol")
	second.AppendChild(child)

	if second.Children()[0] == child {
		t.Fatal("second parent must not share the child instance")
	}
	second.Children()[0].SetAttribute("class", "copy")
	if child.Attributes().Has("class") {
		t.Error("mutating the copy changed the original")
	}
}

func TestAppendSelfDoesNotCycle(t *testing.T) {
	n := New("div")
	n.SetAttribute("id", "root")
	n.AppendChild(n)

	kids := n.Children()
	if len(kids) != 1 || kids[0] == n {
		t.Fatal("appending a node to itself must append a clone")
	}

	// Appending an ancestor into its descendant clones the ancestor.
	parent := New("section")
	inner := New("article")
	parent.AppendChild(inner)
	inner.AppendChild(parent)
	if inner.Children()[0] == parent {
		t.Error("appending an ancestor must append a clone")
	}

	count := 0
	Walk(parent, func(*Node, int) bool {
		count++
		return count < 100
	})
	if count >= 100 {
		t.Error("tree contains a cycle")
	}
}

func TestCloneNodeIsDeep(t *testing.T) {
	root := New("body")
	root.SetAttribute("class", "page")
	p := New("p")
	p.InnerText("Hello")
	root.AppendChild(p)

	clone := root.CloneNode()
	if clone == root || clone.Attributes() == root.Attributes() {
		t.Fatal("clone shares state with original")
	}
	if clone.Children()[0] == p {
		t.Fatal("clone shares children with original")
	}

	clone.SetAttribute("id", "copy")
	clone.Children()[0].InnerText("Changed")
	clone.AppendChild(New("hr"))

	if root.Attributes().Has("id") {
		t.Error("original gained clone's attribute")
	}
	if text, _ := p.Text(); text != "Hello" {
		t.Errorf("original child text = %q, want Hello", text)
	}
	if len(root.Children()) != 1 {
		t.Errorf("original has %d children, want 1", len(root.Children()))
	}

	root.SetAttribute("class", "mutated")
	if v, _ := clone.Attributes().Get("class"); v != "page" {
		t.Errorf("clone class = %q, want page", v)
	}
}

func TestCloneNodeIsUnowned(t *testing.T) {
	parent := New("body")
	child := New("p")
	parent.AppendChild(child)

	clone := child.CloneNode()
	other := New("main")
	other.AppendChild(clone)
	if other.Children()[0] != clone {
		t.Error("a fresh clone should be moved, not cloned again")
	}
}

func TestHelpers(t *testing.T) {
	list := El("ul", TextEl("li", "one"), TextEl("li", "two")).With("class", "items")

	if list.Tag() != "ul" || len(list.Children()) != 2 {
		t.Fatalf("unexpected list: %q with %d children", list.Tag(), len(list.Children()))
	}
	if v, _ := list.Attributes().Get("class"); v != "items" {
		t.Errorf("class = %q", v)
	}

	var tags []string
	var depths []int
	Walk(list, func(n *Node, depth int) bool {
		tags = append(tags, n.Tag())
		depths = append(depths, depth)
		return true
	})
	if len(tags) != 3 || tags[0] != "ul" || depths[1] != 1 {
		t.Errorf("Walk visited %v at %v", tags, depths)
	}
}

func TestSetAttributeList(t *testing.T) {
	n := New("script")
	n.SetAttributeList([2]string{"src", "./main.js"}, [2]string{"defer", ""}, [2]string{"src", "./app.js"})

	got := collect(n.Attributes())
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != (Attr{"src", "./app.js"}) || got[1] != (Attr{"defer", ""}) {
		t.Errorf("attributes = %+v", got)
	}
}
