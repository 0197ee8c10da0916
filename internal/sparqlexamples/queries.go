// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sparqlexamples

import (
	"strings"

	"github.com/knakk/sparql"
)

// The fixed queries, keyed by bank tag. The probe confirms the endpoint
// answers at all; the other two walk the SHACL declarations endpoint
// publishers use to document their services.
const queryBank = `
# tag: probe
ASK { ?s ?p ?o }

# tag: prefixes
PREFIX sh: <http://www.w3.org/ns/shacl#>
SELECT DISTINCT ?prefix ?namespace
WHERE {
    [] sh:namespace ?namespace ;
        sh:prefix ?prefix .
}
ORDER BY ?prefix

# tag: examples
PREFIX sh: <http://www.w3.org/ns/shacl#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
SELECT DISTINCT ?comment ?query
WHERE {
    ?sq a sh:SPARQLExecutable ;
        rdfs:label|rdfs:comment ?comment ;
        sh:select|sh:ask|sh:construct|sh:describe ?query .
}
`

const (
	tagProbe    = "probe"
	tagPrefixes = "prefixes"
	tagExamples = "examples"
)

var bank = sparql.LoadBank(strings.NewReader(queryBank))
