// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/rdf-harvest/pkg/types"
)

func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

type fakeLoader struct {
	name string
	docs []types.Document
	err  error
}

func (f *fakeLoader) Name() string { return f.name }

func (f *fakeLoader) Load(ctx context.Context) ([]types.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

func doc(content string) types.Document {
	return types.Document{
		PageContent: content,
		Metadata:    map[string]string{types.MetaLabel: content},
	}
}

func TestRunCollectsBatchesInOrder(t *testing.T) {
	loaders := []Loader{
		&fakeLoader{name: "ontology:first", docs: []types.Document{doc("a"), doc("b")}},
		&fakeLoader{name: "examples:second", docs: []types.Document{doc("c")}},
	}

	var out bytes.Buffer
	result, err := Run(context.Background(), loaders, &out)
	require.NoError(t, err)

	require.Len(t, result.Batches, 2)
	assert.Equal(t, "ontology:first", result.Batches[0].Name)
	assert.Equal(t, "examples:second", result.Batches[1].Name)
	assert.Equal(t, 3, result.DocumentCount())
	assert.Equal(t, 0, result.Failed)
	assert.False(t, result.HasFailures())
	assert.Contains(t, out.String(), "harvested ontology:first (2 documents)")
	assert.Contains(t, out.String(), "Batch summary: 2 harvested, 0 failed (3 documents)")
}

func TestRunContinuesAfterFailure(t *testing.T) {
	loaders := []Loader{
		&fakeLoader{name: "ontology:broken", err: errors.New("no such file")},
		&fakeLoader{name: "ontology:ok", docs: []types.Document{doc("a")}},
	}

	var out bytes.Buffer
	result, err := Run(context.Background(), loaders, &out)
	require.NoError(t, err)

	require.Len(t, result.Batches, 1)
	assert.Equal(t, "ontology:ok", result.Batches[0].Name)
	assert.Equal(t, 1, result.Failed)
	assert.True(t, result.HasFailures())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "ontology:broken")
	assert.Contains(t, result.Errors[0], "no such file")
	assert.Contains(t, out.String(), "failed    ontology:broken")
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loaders := []Loader{
		&fakeLoader{name: "ontology:never", docs: []types.Document{doc("a")}},
	}

	var out bytes.Buffer
	result, err := Run(ctx, loaders, &out)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Batches)
}

func TestSlug(t *testing.T) {
	cases := []struct {
		location string
		want     string
	}{
		{"https://sparql.uniprot.org/sparql/", "sparql-uniprot-org-sparql"},
		{"http://www.w3.org/2004/02/skos/core#", "www-w3-org-2004-02-skos-core"},
		{"vocab/schema.ttl", "vocab-schema-ttl"},
		{"./local.owl", "local-owl"},
		{"Upper_Case File.TTL", "upper-case-file-ttl"},
	}
	for _, tc := range cases {
		if got := Slug(tc.location); got != tc.want {
			t.Errorf("Slug(%q) = %q, want %q", tc.location, got, tc.want)
		}
	}
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sources.yaml")

	content := `ontologies:
  - location: vocab/schema.ttl
  - location: https://example.org/onto.owl
    format: xml
  - location: https://sparql.example.org/sparql
    endpoint: true
examples:
  - endpoint: https://sparql.uniprot.org/sparql/
`
	require.NoError(t, writeTestFile(path, content))

	m, err := ReadManifest(path)
	require.NoError(t, err)
	assert.False(t, m.IsEmpty())
	require.Len(t, m.Ontologies, 3)
	assert.Equal(t, "vocab/schema.ttl", m.Ontologies[0].Location)
	assert.Equal(t, "xml", m.Ontologies[1].Format)
	assert.True(t, m.Ontologies[2].Endpoint)
	require.Len(t, m.Examples, 1)
	assert.Equal(t, "https://sparql.uniprot.org/sparql/", m.Examples[0].Endpoint)
}

func TestReadManifestMissing(t *testing.T) {
	_, err := ReadManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestEmptyManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	require.NoError(t, writeTestFile(path, "ontologies: []\n"))

	m, err := ReadManifest(path)
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())
}

func TestHarvestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "harvest.yaml")

	docs := []types.Document{
		{
			PageContent: "Cat",
			Metadata: map[string]string{
				types.MetaLabel: "Cat",
				types.MetaURI:   "http://example.org/Cat",
			},
		},
		{
			PageContent: "Dog",
			Metadata:    map[string]string{types.MetaLabel: "Dog"},
		},
	}

	require.NoError(t, WriteHarvestFile(path, "vocab/schema.ttl", "ontology", docs))

	hf, err := ReadHarvestFile(path)
	require.NoError(t, err)
	assert.Equal(t, "vocab/schema.ttl", hf.Source)
	assert.Equal(t, "ontology", hf.Kind)
	assert.Equal(t, 2, hf.Summary.Documents)
	assert.False(t, hf.Summary.Harvested.IsZero())
	require.Len(t, hf.Documents, 2)
	assert.Equal(t, docs[0], hf.Documents[0])
	assert.Equal(t, docs[1], hf.Documents[1])
}
