// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rdfgraph

import (
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/knakk/rdf"
)

// ParseFormat maps a user-supplied serialization hint to a decoder format.
// Accepted hints: "xml", "rdfxml", "rdf/xml", "owl" (RDF/XML); "ttl",
// "turtle", "n3" (Turtle); "nt", "ntriples", "n-triples" (N-Triples).
func ParseFormat(hint string) (rdf.Format, error) {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "xml", "rdfxml", "rdf/xml", "owl":
		return rdf.RDFXML, nil
	case "ttl", "turtle", "n3":
		return rdf.Turtle, nil
	case "nt", "ntriples", "n-triples":
		return rdf.NTriples, nil
	}
	var f rdf.Format
	return f, fmt.Errorf("unsupported RDF format %q (supported: xml, ttl, nt)", hint)
}

// DetectFormat guesses the serialization format from an HTTP Content-Type
// header and the location's file extension. A recognized content type wins
// over the extension.
func DetectFormat(location, contentType string) (rdf.Format, error) {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case "application/rdf+xml", "application/owl+xml":
			return rdf.RDFXML, nil
		case "text/turtle", "application/x-turtle":
			return rdf.Turtle, nil
		case "application/n-triples":
			return rdf.NTriples, nil
		}
	}

	switch strings.ToLower(path.Ext(trimLocation(location))) {
	case ".owl", ".rdf", ".xml":
		return rdf.RDFXML, nil
	case ".ttl", ".n3":
		return rdf.Turtle, nil
	case ".nt":
		return rdf.NTriples, nil
	}

	var f rdf.Format
	return f, fmt.Errorf("cannot detect RDF format of %s: pass an explicit format (xml, ttl, nt)", location)
}

// trimLocation strips URL query and fragment parts so the path extension
// is visible to path.Ext.
func trimLocation(location string) string {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		return location[:i]
	}
	return location
}
