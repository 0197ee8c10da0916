// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/rdf-harvest/pkg/types"
)

// Manifest lists the sources of a batch harvest.
type Manifest struct {
	Ontologies []OntologySource `yaml:"ontologies,omitempty"`
	Examples   []ExampleSource  `yaml:"examples,omitempty"`
}

// OntologySource describes one ontology to harvest.
type OntologySource struct {
	// Location is a local file path or an http(s) URL.
	Location string `yaml:"location"`

	// Format optionally forces the RDF serialization (xml, ttl, nt).
	// When empty the format is detected from the location.
	Format string `yaml:"format,omitempty"`

	// Endpoint marks Location as a SPARQL endpoint to query for terms
	// instead of a document to parse.
	Endpoint bool `yaml:"endpoint,omitempty"`
}

// ExampleSource describes one SPARQL endpoint hosting example queries.
type ExampleSource struct {
	Endpoint string `yaml:"endpoint"`
}

// IsEmpty reports whether the manifest names no sources at all.
func (m *Manifest) IsEmpty() bool {
	return len(m.Ontologies) == 0 && len(m.Examples) == 0
}

// ReadManifest loads a manifest from a YAML file.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// HarvestFile is the on-disk record of one harvested source: where the
// documents came from, when, and the documents themselves. Saved harvests
// can be re-indexed or inspected without touching the source again.
type HarvestFile struct {
	Source    string           `yaml:"source"`
	Kind      string           `yaml:"kind"`
	Summary   HarvestSummary   `yaml:"summary"`
	Documents []types.Document `yaml:"documents"`
}

// HarvestSummary carries the counts and timestamp of a harvest file.
type HarvestSummary struct {
	Documents int       `yaml:"documents"`
	Harvested time.Time `yaml:"harvested"`
}

// WriteHarvestFile saves harvested documents to a YAML file.
func WriteHarvestFile(path, source, kind string, docs []types.Document) error {
	hf := HarvestFile{
		Source: source,
		Kind:   kind,
		Summary: HarvestSummary{
			Documents: len(docs),
			Harvested: time.Now().UTC(),
		},
		Documents: docs,
	}
	data, err := yaml.Marshal(&hf)
	if err != nil {
		return fmt.Errorf("marshaling harvest file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing harvest file: %w", err)
	}
	return nil
}

// ReadHarvestFile loads a previously saved harvest file.
func ReadHarvestFile(path string) (*HarvestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading harvest file: %w", err)
	}
	var hf HarvestFile
	if err := yaml.Unmarshal(data, &hf); err != nil {
		return nil, fmt.Errorf("parsing harvest file %s: %w", path, err)
	}
	return &hf, nil
}
