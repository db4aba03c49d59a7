package feed

import "github.com/microcosm-cc/bluemonday"

// newSanitizer returns the policy applied to feed item content. Presentation
// attributes (class, style) are dropped along with scripts, styles and links
// to stylesheets.
func newSanitizer() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.RequireNoFollowOnLinks(false)

	p.AllowElements(
		"p", "br", "hr", "div", "span",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"blockquote", "pre", "code", "kbd",
		"em", "strong", "del", "sup", "sub",
		"ul", "ol", "li", "dl", "dt", "dd",
		"table", "thead", "tbody", "tfoot", "tr", "th", "td",
		"figure", "figcaption",
	)
	p.AllowAttrs("href", "title").OnElements("a")
	p.AllowAttrs("src", "alt", "title", "width", "height").OnElements("img")
	p.AllowAttrs("align").OnElements("th", "td")
	p.AllowAttrs("id").Globally()
	return p
}
