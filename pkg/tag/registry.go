package tag

import (
	"slices"
	"strings"

	"golang.org/x/net/html/atom"
)

// voidElements are elements that cannot have children and have no closing tag.
var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// knownElements lists the standard HTML element names. The atom table
// also holds attribute and event names, so it cannot answer this alone.
var knownElements = func() map[string]bool {
	names := strings.Fields(`
		a abbr address area article aside audio b base bdi bdo blockquote
		body br button canvas caption cite code col colgroup data datalist
		dd del details dfn dialog div dl dt em embed fieldset figcaption
		figure footer form h1 h2 h3 h4 h5 h6 head header hgroup hr html i
		iframe img input ins kbd label legend li link main map mark math
		menu meta meter nav noscript object ol optgroup option output p
		param picture pre progress q rp rt ruby s samp script search
		section select slot small source span strong style sub summary sup
		svg table tbody td template textarea tfoot th thead time title tr
		track u ul var video wbr`)
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}()

// lookup resolves a tag identifier to its atom. Matching is ASCII
// case-insensitive; unknown identifiers resolve to 0.
func lookup(name string) atom.Atom {
	if name == "" {
		return 0
	}
	return atom.Lookup([]byte(strings.ToLower(name)))
}

// IsVoid reports whether tag is an HTML void element.
// Unknown and custom identifiers are never void.
func IsVoid(tag string) bool {
	return voidElements[lookup(tag)]
}

// IsKnown reports whether tag names a standard HTML element, ignoring
// ASCII case. It is informational only; the builder accepts any
// identifier.
func IsKnown(tag string) bool {
	return knownElements[strings.ToLower(tag)]
}

// VoidElements returns the void element names in alphabetical order.
func VoidElements() []string {
	names := make([]string, 0, len(voidElements))
	for a := range voidElements {
		names = append(names, a.String())
	}
	slices.Sort(names)
	return names
}
