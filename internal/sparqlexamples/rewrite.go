// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sparqlexamples

import (
	"fmt"
	"regexp"
	"strings"
)

// anchorTagPattern matches an HTML anchor element, capturing its inner
// text. Endpoint publishers occasionally leave links inside stored query
// text.
var anchorTagPattern = regexp.MustCompile(`(?is)<a\b[^>]*>(.*?)</a>`)

// StripAnchors removes HTML anchor elements from query text, keeping the
// inner text.
func StripAnchors(query string) string {
	return anchorTagPattern.ReplaceAllString(query, "$1")
}

// Prefixes is the prefix catalog of one endpoint, in the order the catalog
// query returned the names. Re-declaring a name overwrites its namespace.
type Prefixes struct {
	names      []string
	namespaces map[string]string
}

// Add records one prefix declaration.
func (p *Prefixes) Add(name, namespace string) {
	if p.namespaces == nil {
		p.namespaces = make(map[string]string)
	}
	if _, seen := p.namespaces[name]; !seen {
		p.names = append(p.names, name)
	}
	p.namespaces[name] = namespace
}

// Len returns the number of distinct prefix names.
func (p *Prefixes) Len() int {
	return len(p.names)
}

// Inject prepends a PREFIX declaration for every cataloged prefix that the
// query references without declaring. Declarations already present in the
// text are left alone. Each injection goes on top of the previous one, so
// later catalog entries end up closer to the top.
func (p *Prefixes) Inject(query string) string {
	for _, name := range p.names {
		decl := fmt.Sprintf("PREFIX %s: <%s>", name, p.namespaces[name])
		if strings.Contains(query, decl) {
			continue
		}
		if !referencesPrefix(query, name) {
			continue
		}
		query = decl + "\n" + query
	}
	return query
}

// referencesPrefix reports whether query uses name as a prefix: the name
// followed by ':' and preceded by the start of the text, whitespace, a
// non-breaking space, '(' or '/'.
func referencesPrefix(query, name string) bool {
	re := regexp.MustCompile(`(?:^|[\s(/\x{00A0}])` + regexp.QuoteMeta(name) + `:`)
	return re.MatchString(query)
}
