package payments

import "github.com/microcosm-cc/bluemonday"

// bangoTerms keeps the headings and breaks Bango terms are written with.
var bangoTerms = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("h3", "h4", "br", "p", "hr")
	return p
}()

// referenceTerms is the short inline allowlist used for reference terms.
var referenceTerms = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.RequireParseableURLs(true)
	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowAttrs("href", "title").OnElements("a")
	p.AllowAttrs("title").OnElements("abbr", "acronym")
	p.AllowElements("a", "abbr", "acronym", "b", "blockquote", "code", "em", "i", "li", "ol", "strong", "ul")
	return p
}()
