// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ontology

// The two fixed harvest queries. Their WHERE shape is the compatibility
// contract with published ontologies and must stay in lockstep with the
// structured IRI sets below, which drive the in-memory evaluator.
// queries_test.go pins the two representations together.

// ClassQuery selects every owl:Class subject together with each recognized
// label-bearing predicate and its value.
const ClassQuery = `PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX dc: <http://purl.org/dc/elements/1.1/>
PREFIX dcterms: <http://purl.org/dc/terms/>

SELECT ?uri ?pred ?label ?type
WHERE {
    ?uri a ?type ;
        ?pred ?label .
    FILTER ( ?type = owl:Class )
    FILTER (
        ?pred = rdfs:label || ?pred = skos:prefLabel || ?pred = skos:altLabel ||
        ?pred = skos:definition || ?pred = rdfs:comment ||
        ?pred = dcterms:description || ?pred = dc:title
    )
}`

// PropertyQuery is the same shape for datatype and object properties.
const PropertyQuery = `PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX dc: <http://purl.org/dc/elements/1.1/>
PREFIX dcterms: <http://purl.org/dc/terms/>

SELECT ?uri ?pred ?label ?type
WHERE {
    ?uri a ?type ;
        ?pred ?label .
    FILTER ( ?type = owl:DatatypeProperty || ?type = owl:ObjectProperty )
    FILTER (
        ?pred = rdfs:label || ?pred = skos:prefLabel || ?pred = skos:altLabel ||
        ?pred = skos:definition || ?pred = rdfs:comment ||
        ?pred = dcterms:description || ?pred = dc:title
    )
}`

// Namespaces referenced by the fixed queries.
const (
	owlNS     = "http://www.w3.org/2002/07/owl#"
	rdfsNS    = "http://www.w3.org/2000/01/rdf-schema#"
	skosNS    = "http://www.w3.org/2004/02/skos/core#"
	dcNS      = "http://purl.org/dc/elements/1.1/"
	dctermsNS = "http://purl.org/dc/terms/"
)

// ClassTypes and PropertyTypes are the rdf:type filter sets of the two
// queries, as absolute IRIs.
var (
	ClassTypes    = []string{owlNS + "Class"}
	PropertyTypes = []string{owlNS + "DatatypeProperty", owlNS + "ObjectProperty"}
)

// LabelPredicates is the fixed set of label-bearing predicates both queries
// recognize, in query order.
var LabelPredicates = []string{
	rdfsNS + "label",
	skosNS + "prefLabel",
	skosNS + "altLabel",
	skosNS + "definition",
	rdfsNS + "comment",
	dctermsNS + "description",
	dcNS + "title",
}
