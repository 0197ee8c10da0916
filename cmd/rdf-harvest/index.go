// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rdf-harvest/internal/docindex"
	"github.com/pdiddy/rdf-harvest/internal/harvest"
	"github.com/pdiddy/rdf-harvest/internal/ontology"
	"github.com/pdiddy/rdf-harvest/internal/sparqlexamples"
	"github.com/pdiddy/rdf-harvest/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Harvest sources and index the documents for search",
	Long: `Index runs a batch harvest and ingests the documents into the local
SQLite index. Sources come from repeated --ontology and --examples flags or
from a YAML manifest. Each source replaces its own previous documents;
failing sources are reported and skipped.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringArray("ontology", nil, "ontology location to harvest (repeatable)")
	indexCmd.Flags().StringArray("examples", nil, "SPARQL endpoint to harvest example queries from (repeatable)")
	indexCmd.Flags().String("manifest", "", "YAML manifest listing sources")
	indexCmd.Flags().String("format", "", "RDF serialization hint for --ontology files: xml, ttl, nt")
	indexCmd.Flags().String("index-dir", "index", "directory for the search index")
	indexCmd.Flags().Int("max-results", 20, "maximum number of query results")
	indexCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	indexCmd.Flags().String("username", "", "endpoint username for digest auth (default: endpoint-username secret)")
	indexCmd.Flags().String("password", "", "endpoint password for digest auth (default: endpoint-password secret)")

	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	m, err := indexManifest(cmd)
	if err != nil {
		return err
	}
	if m.IsEmpty() {
		return fmt.Errorf("no sources: provide --ontology, --examples, or --manifest")
	}

	ctx := context.Background()
	ontoCfg := ontologyConfig(cmd)
	epCfg := endpointConfig(cmd)

	var (
		loaders          []harvest.Loader
		sources          = make(map[string]docindex.Source)
		failedConstructs int
	)

	for _, src := range m.Ontologies {
		var (
			loader *ontology.Loader
			err    error
		)
		if src.Endpoint {
			loader, err = ontology.NewEndpointLoader(src.Location, epCfg)
		} else {
			loader, err = ontology.NewLoader(ctx, src.Location, src.Format, ontoCfg)
		}
		if err != nil {
			fmt.Fprintf(os.Stdout, "failed    %s: %v\n", src.Location, err)
			failedConstructs++
			continue
		}
		loaders = append(loaders, loader)
		sources[loader.Name()] = docindex.Source{
			ID:       loader.Name(),
			Kind:     "ontology",
			Location: src.Location,
		}
	}

	for _, src := range m.Examples {
		loader, err := sparqlexamples.NewLoader(src.Endpoint, epCfg)
		if err != nil {
			fmt.Fprintf(os.Stdout, "failed    %s: %v\n", src.Endpoint, err)
			failedConstructs++
			continue
		}
		loaders = append(loaders, loader)
		sources[loader.Name()] = docindex.Source{
			ID:       loader.Name(),
			Kind:     "examples",
			Location: src.Endpoint,
		}
	}

	result, err := harvest.Run(ctx, loaders, os.Stdout)
	if err != nil {
		return err
	}

	store, err := docindex.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	for _, batch := range result.Batches {
		n, err := store.Ingest(ctx, sources[batch.Name], batch.Documents)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "indexed   %s (%d documents)\n", batch.Name, n)
	}

	if failed := failedConstructs + result.Failed; failed > 0 {
		return fmt.Errorf("%d source(s) failed harvesting", failed)
	}
	return nil
}

// indexManifest merges sources given on the command line into the manifest
// file, when one was provided.
func indexManifest(cmd *cobra.Command) (*harvest.Manifest, error) {
	manifestPath, _ := cmd.Flags().GetString("manifest")

	m := &harvest.Manifest{}
	if manifestPath != "" {
		loaded, err := harvest.ReadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		m = loaded
	}

	format, _ := cmd.Flags().GetString("format")
	ontologies, _ := cmd.Flags().GetStringArray("ontology")
	for _, loc := range ontologies {
		m.Ontologies = append(m.Ontologies, harvest.OntologySource{Location: loc, Format: format})
	}
	endpoints, _ := cmd.Flags().GetStringArray("examples")
	for _, ep := range endpoints {
		m.Examples = append(m.Examples, harvest.ExampleSource{Endpoint: ep})
	}
	return m, nil
}

func indexConfig(cmd *cobra.Command) types.IndexConfig {
	indexDir, _ := cmd.Flags().GetString("index-dir")
	if indexDir == "" {
		indexDir = "index"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.IndexConfig{
		IndexDir:   indexDir,
		MaxResults: maxResults,
	}
}
