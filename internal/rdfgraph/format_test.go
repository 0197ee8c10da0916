// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rdfgraph

import (
	"testing"

	"github.com/knakk/rdf"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		hint    string
		want    rdf.Format
		wantErr bool
	}{
		{hint: "xml", want: rdf.RDFXML},
		{hint: "rdfxml", want: rdf.RDFXML},
		{hint: "rdf/xml", want: rdf.RDFXML},
		{hint: "owl", want: rdf.RDFXML},
		{hint: "XML", want: rdf.RDFXML},
		{hint: "ttl", want: rdf.Turtle},
		{hint: "turtle", want: rdf.Turtle},
		{hint: "n3", want: rdf.Turtle},
		{hint: " ttl ", want: rdf.Turtle},
		{hint: "nt", want: rdf.NTriples},
		{hint: "ntriples", want: rdf.NTriples},
		{hint: "n-triples", want: rdf.NTriples},
		{hint: "json-ld", wantErr: true},
		{hint: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			got, err := ParseFormat(tt.hint)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) accepted unknown hint", tt.hint)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q): %v", tt.hint, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.hint, got, tt.want)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name        string
		location    string
		contentType string
		want        rdf.Format
		wantErr     bool
	}{
		{name: "owl extension", location: "https://semanticscience.org/ontology/sio.owl", want: rdf.RDFXML},
		{name: "rdf extension", location: "vocab/schema.rdf", want: rdf.RDFXML},
		{name: "ttl extension", location: "vocab/schema.ttl", want: rdf.Turtle},
		{name: "nt extension", location: "dump.nt", want: rdf.NTriples},
		{name: "extension behind query", location: "https://example.org/onto.ttl?raw=1", want: rdf.Turtle},
		{name: "content type wins", location: "download", contentType: "text/turtle; charset=utf-8", want: rdf.Turtle},
		{name: "rdf+xml content type", location: "download", contentType: "application/rdf+xml", want: rdf.RDFXML},
		{name: "n-triples content type", location: "download", contentType: "application/n-triples", want: rdf.NTriples},
		{name: "content type over extension", location: "onto.owl", contentType: "text/turtle", want: rdf.Turtle},
		{name: "unknown content type falls back", location: "onto.owl", contentType: "application/octet-stream", want: rdf.RDFXML},
		{name: "undetectable", location: "https://example.org/ontology", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.location, tt.contentType)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DetectFormat(%q, %q) did not fail", tt.location, tt.contentType)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectFormat(%q, %q): %v", tt.location, tt.contentType, err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat(%q, %q) = %v, want %v", tt.location, tt.contentType, got, tt.want)
			}
		})
	}
}
