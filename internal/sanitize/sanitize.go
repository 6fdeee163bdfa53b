// Package sanitize restricts rendered markup to the renderer's own element
// vocabulary.
package sanitize

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Elements is the full output vocabulary of the renderer.
var Elements = []string{
	"h1", "h2", "h3",
	"p", "br", "hr",
	"strong", "em", "code",
	"table", "thead", "tbody", "tr", "th", "td",
	"ul", "ol", "li",
	"blockquote",
}

var classValueRe = regexp.MustCompile(`^[A-Za-z0-9_\- ]*$`)

// policies caches one policy per table class; a built policy is safe for
// concurrent use.
var policies sync.Map

// Policy returns the allow-list policy for the given table class.
func Policy(tableClass string) *bluemonday.Policy {
	if p, ok := policies.Load(tableClass); ok {
		return p.(*bluemonday.Policy)
	}

	p := bluemonday.NewPolicy()
	p.AllowElements(Elements...)
	if tableClass != "" {
		p.AllowAttrs("class").Matching(classValueRe).OnElements("table")
	}

	actual, _ := policies.LoadOrStore(tableClass, p)
	return actual.(*bluemonday.Policy)
}

// HTML sanitizes markup with the policy for tableClass.
func HTML(markup string, tableClass string) string {
	return Policy(tableClass).Sanitize(markup)
}
