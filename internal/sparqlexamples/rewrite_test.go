// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sparqlexamples

import (
	"strings"
	"testing"
)

func TestStripAnchors(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  string
	}{
		{
			"basic anchor",
			`Find <a href="http://x">something</a> here`,
			"Find something here",
		},
		{
			"uppercase tag",
			`See <A HREF="http://docs.example.org">the docs</A> first`,
			"See the docs first",
		},
		{
			"anchor without attributes",
			"<a>inner</a>",
			"inner",
		},
		{
			"multiple anchors",
			`<a href="x">one</a> and <a href="y">two</a>`,
			"one and two",
		},
		{
			"anchor spanning lines",
			"start <a\nhref=\"http://x\">linked\ntext</a> end",
			"start linked\ntext end",
		},
		{
			"no anchor untouched",
			"SELECT ?s WHERE { ?s ?p ?o }",
			"SELECT ?s WHERE { ?s ?p ?o }",
		},
		{
			"bare less-than untouched",
			"FILTER(?a < ?b)",
			"FILTER(?a < ?b)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripAnchors(tc.query); got != tc.want {
				t.Errorf("StripAnchors(%q) = %q, want %q", tc.query, got, tc.want)
			}
		})
	}
}

func TestInjectAddsMissingPrefix(t *testing.T) {
	var p Prefixes
	p.Add("foaf", "http://xmlns.com/foaf/0.1/")

	got := p.Inject("SELECT ?name WHERE { ?person foaf:name ?name }")
	want := "PREFIX foaf: <http://xmlns.com/foaf/0.1/>\nSELECT ?name WHERE { ?person foaf:name ?name }"
	if got != want {
		t.Errorf("Inject = %q, want %q", got, want)
	}
}

func TestInjectSkipsUnreferencedPrefix(t *testing.T) {
	var p Prefixes
	p.Add("foaf", "http://xmlns.com/foaf/0.1/")
	p.Add("up", "http://purl.uniprot.org/core/")

	query := "SELECT ?taxon WHERE { ?taxon a up:Taxon }"
	got := p.Inject(query)
	if strings.Contains(got, "foaf") {
		t.Errorf("unreferenced prefix injected: %q", got)
	}
	if !strings.HasPrefix(got, "PREFIX up: <http://purl.uniprot.org/core/>\n") {
		t.Errorf("referenced prefix not injected: %q", got)
	}
}

func TestInjectSkipsDeclaredPrefix(t *testing.T) {
	var p Prefixes
	p.Add("up", "http://purl.uniprot.org/core/")

	query := "PREFIX up: <http://purl.uniprot.org/core/>\nSELECT ?taxon WHERE { ?taxon a up:Taxon }"
	got := p.Inject(query)
	if got != query {
		t.Errorf("declared prefix re-injected: %q", got)
	}
	if strings.Count(got, "PREFIX up:") != 1 {
		t.Errorf("duplicate declaration in %q", got)
	}
}

func TestInjectReferenceContexts(t *testing.T) {
	cases := []struct {
		name   string
		query  string
		inject bool
	}{
		{"after whitespace", "SELECT * WHERE { ?s a up:Taxon }", true},
		{"at start of text", "up:Taxon a ?c", true},
		{"after open paren", "SELECT * WHERE { FILTER(up:score(?s) > 1) }", true},
		{"in property path", "SELECT * WHERE { ?s rdfs:seeAlso/up:name ?n }", true},
		{"after non-breaking space", "SELECT * WHERE { ?s a up:Taxon }", true},
		{"inside a longer name", "SELECT * WHERE { ?s a cleanup:Task }", false},
		{"absent entirely", "SELECT * WHERE { ?s ?p ?o }", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Prefixes
			p.Add("up", "http://purl.uniprot.org/core/")
			got := p.Inject(tc.query)
			injected := strings.HasPrefix(got, "PREFIX up:")
			if injected != tc.inject {
				t.Errorf("Inject(%q) injected=%v, want %v", tc.query, injected, tc.inject)
			}
		})
	}
}

func TestInjectOrder(t *testing.T) {
	var p Prefixes
	p.Add("alpha", "http://example.org/a#")
	p.Add("beta", "http://example.org/b#")

	got := p.Inject("SELECT * WHERE { ?s alpha:p ?o ; beta:q ?v }")
	lines := strings.SplitN(got, "\n", 3)
	if len(lines) < 3 {
		t.Fatalf("expected two injected declarations, got %q", got)
	}
	if lines[0] != "PREFIX beta: <http://example.org/b#>" {
		t.Errorf("top line = %q, want later catalog entry on top", lines[0])
	}
	if lines[1] != "PREFIX alpha: <http://example.org/a#>" {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestAddLastDeclarationWins(t *testing.T) {
	var p Prefixes
	p.Add("ex", "http://example.org/old#")
	p.Add("ex", "http://example.org/new#")

	if p.Len() != 1 {
		t.Fatalf("Len = %d, want 1", p.Len())
	}
	got := p.Inject("SELECT * WHERE { ?s ex:p ?o }")
	if !strings.HasPrefix(got, "PREFIX ex: <http://example.org/new#>") {
		t.Errorf("Inject used stale namespace: %q", got)
	}
}
