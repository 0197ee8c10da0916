// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rdf-harvest/internal/harvest"
	"github.com/pdiddy/rdf-harvest/internal/ontology"
	"github.com/pdiddy/rdf-harvest/internal/secrets"
	"github.com/pdiddy/rdf-harvest/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "rdf-harvest/0.1"
)

var ontologyCmd = &cobra.Command{
	Use:   "ontology [location]",
	Short: "Harvest class and property documents from an ontology",
	Long: `Ontology parses an OWL/RDF vocabulary from a local file or URL, or
queries a SPARQL endpoint with --endpoint, and emits one document per
class or property label. Supported serializations: RDF/XML, Turtle,
N-Triples.`,
	Args: cobra.ExactArgs(1),
	RunE: runOntology,
}

func init() {
	ontologyCmd.Flags().String("format", "", "RDF serialization hint: xml, ttl, or nt (default: detect)")
	ontologyCmd.Flags().Bool("endpoint", false, "treat location as a SPARQL endpoint")
	ontologyCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	ontologyCmd.Flags().String("username", "", "endpoint username for digest auth (default: endpoint-username secret)")
	ontologyCmd.Flags().String("password", "", "endpoint password for digest auth (default: endpoint-password secret)")
	ontologyCmd.Flags().Bool("json", false, "output documents as JSON")
	ontologyCmd.Flags().String("out", "", "write documents to a harvest YAML file")

	rootCmd.AddCommand(ontologyCmd)
}

func runOntology(cmd *cobra.Command, args []string) error {
	location := args[0]
	isEndpoint, _ := cmd.Flags().GetBool("endpoint")
	format, _ := cmd.Flags().GetString("format")

	var (
		loader *ontology.Loader
		err    error
	)
	if isEndpoint {
		loader, err = ontology.NewEndpointLoader(location, endpointConfig(cmd))
	} else {
		loader, err = ontology.NewLoader(context.Background(), location, format, ontologyConfig(cmd))
	}
	if err != nil {
		return err
	}

	docs, err := loader.Load(context.Background())
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out != "" {
		if err := harvest.WriteHarvestFile(out, location, "ontology", docs); err != nil {
			return err
		}
		fmt.Printf("Wrote %d documents to %s\n", len(docs), out)
		return nil
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatDocuments(docs, jsonOutput)
}

// --- shared helpers ---

func ontologyConfig(cmd *cobra.Command) types.OntologyConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return types.OntologyConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
	}
}

func endpointConfig(cmd *cobra.Command) types.EndpointConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	return types.EndpointConfig{
		Timeout:  timeout,
		Username: secretDefault(secrets.KeyEndpointUsername, username),
		Password: secretDefault(secrets.KeyEndpointPassword, password),
	}
}

func formatDocuments(docs []types.Document, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	}

	if len(docs) == 0 {
		fmt.Println("No documents harvested.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-50s  %s\n", "#", "Content", "Detail")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for i, d := range docs {
		content := d.PageContent
		if len(content) > 50 {
			content = content[:47] + "..."
		}
		// Ontology documents carry a term URI; example documents a query type.
		detail := d.Metadata[types.MetaURI]
		if detail == "" {
			detail = d.Metadata[types.MetaQueryType]
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-50s  %s\n", i+1, content, detail)
	}

	fmt.Fprintf(os.Stdout, "\n%d documents\n", len(docs))
	return nil
}
