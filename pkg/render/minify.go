package render

import (
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

const mimeHTML = "text/html"

var (
	minifier     *minify.M
	minifierOnce sync.Once
)

// getMinifier returns the shared HTML minifier. Document and end tags are
// kept so minified output has the same element structure as the input.
func getMinifier() *minify.M {
	minifierOnce.Do(func() {
		minifier = minify.New()
		minifier.Add(mimeHTML, &html.Minifier{
			KeepDocumentTags:    true,
			KeepEndTags:         true,
			KeepQuotes:          true,
			KeepDefaultAttrVals: true,
		})
	})
	return minifier
}

// Minify removes insignificant whitespace from rendered markup.
func Minify(markup string) (string, error) {
	return getMinifier().String(mimeHTML, markup)
}
