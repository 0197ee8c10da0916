// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document is one text fragment harvested from an RDF source, in the shape
// retrieval pipelines ingest: a primary text field plus flat string metadata.
// A Document is built once per query-result row and not mutated afterwards.
type Document struct {
	// PageContent is the primary text: an ontology label value or an
	// example query's descriptive comment.
	PageContent string `json:"page_content" yaml:"page_content"`

	// Metadata carries provenance as string key/value pairs. The key set
	// is fixed per source kind; see the Meta* constants.
	Metadata map[string]string `json:"metadata" yaml:"metadata"`
}

// Metadata keys on documents harvested from ontologies.
const (
	MetaLabel     = "label"     // matched label literal
	MetaURI       = "uri"       // subject term
	MetaType      = "type"      // rdf:type of the subject
	MetaPredicate = "predicate" // label-bearing predicate
	MetaOntology  = "ontology"  // ontology location as given at construction
)

// Metadata keys on documents harvested from SPARQL example catalogs.
const (
	MetaComment     = "comment"      // human-readable description
	MetaQuery       = "query"        // rewritten, validated query text
	MetaEndpointURL = "endpoint_url" // source endpoint
	MetaQueryType   = "query_type"   // SelectQuery, AskQuery, ConstructQuery or DescribeQuery
)
