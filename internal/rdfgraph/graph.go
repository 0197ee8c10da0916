// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rdfgraph parses RDF serializations into an in-memory triple set
// and answers the fixed typed-label lookup the ontology harvester runs.
package rdfgraph

import (
	"io"

	"github.com/knakk/rdf"
)

// RDFType is the predicate connecting a subject to its class.
const RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// Graph holds a fully parsed RDF graph. It is populated once by Decode and
// read-only afterwards; triples are deduplicated so the graph behaves as a
// set, matching store semantics.
type Graph struct {
	triples []rdf.Triple

	// types maps a subject (N-Triples form) to its rdf:type IRIs in
	// declaration order.
	types map[string][]string
}

// Decode reads every triple from r in the given format. Decoding stops at
// the first syntax error, which is returned as-is from the decoder.
func Decode(r io.Reader, format rdf.Format) (*Graph, error) {
	g := &Graph{types: make(map[string][]string)}
	seen := make(map[string]struct{})

	dec := rdf.NewTripleDecoder(r, format)
	for {
		t, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		key := t.Serialize(rdf.NTriples)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		g.triples = append(g.triples, t)

		if t.Pred.String() == RDFType && t.Obj.Type() == rdf.TermIRI {
			subj := t.Subj.Serialize(rdf.NTriples)
			g.types[subj] = append(g.types[subj], t.Obj.String())
		}
	}

	return g, nil
}

// Size returns the number of distinct triples in the graph.
func (g *Graph) Size() int {
	return len(g.triples)
}

// LabelRow is one solution row of the typed-label lookup: a subject whose
// rdf:type matched, carrying one of the requested predicates.
type LabelRow struct {
	Subject   string // subject IRI or blank node label
	Predicate string // matched predicate IRI
	Value     string // object in plain string form (usually a literal)
	Type      string // matched rdf:type IRI
}

// TypedLabels evaluates the basic graph pattern `?uri a ?type ; ?pred ?label`
// with equality filters restricting ?type to typeIRIs and ?pred to predIRIs.
// One row is produced per (subject, predicate, value, type) combination, in
// triple order then type declaration order. No deduplication beyond the
// graph's own set semantics.
func (g *Graph) TypedLabels(typeIRIs, predIRIs []string) []LabelRow {
	typeSet := stringSet(typeIRIs)
	predSet := stringSet(predIRIs)

	var rows []LabelRow
	for _, t := range g.triples {
		pred := t.Pred.String()
		if !predSet[pred] {
			continue
		}
		for _, typ := range g.types[t.Subj.Serialize(rdf.NTriples)] {
			if !typeSet[typ] {
				continue
			}
			rows = append(rows, LabelRow{
				Subject:   t.Subj.String(),
				Predicate: pred,
				Value:     t.Obj.String(),
				Type:      typ,
			})
		}
	}
	return rows
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
