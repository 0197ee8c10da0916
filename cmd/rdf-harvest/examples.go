package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rdf-harvest/internal/harvest"
	"github.com/pdiddy/rdf-harvest/internal/sparqlexamples"
)

var examplesCmd = &cobra.Command{
	Use:   "examples [endpoint-url]",
	Short: "Harvest example SPARQL queries from an endpoint",
	Long: `Examples connects to a SPARQL endpoint, probes it, and harvests the
example queries it publishes as SHACL sh:SPARQLExecutable declarations.
Query text is cleaned of HTML anchors, missing prefixes are added from the
endpoint's prefix catalog, and every query is validated before becoming a
document.`,
	Args: cobra.ExactArgs(1),
	RunE: runExamples,
}

func init() {
	examplesCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	examplesCmd.Flags().String("username", "", "endpoint username for digest auth (default: endpoint-username secret)")
	examplesCmd.Flags().String("password", "", "endpoint password for digest auth (default: endpoint-password secret)")
	examplesCmd.Flags().Bool("json", false, "output documents as JSON")
	examplesCmd.Flags().String("out", "", "write documents to a harvest YAML file")

	rootCmd.AddCommand(examplesCmd)
}

func runExamples(cmd *cobra.Command, args []string) error {
	endpointURL := args[0]

	loader, err := sparqlexamples.NewLoader(endpointURL, endpointConfig(cmd))
	if err != nil {
		return err
	}

	docs, err := loader.Load(context.Background())
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out != "" {
		if err := harvest.WriteHarvestFile(out, endpointURL, "examples", docs); err != nil {
			return err
		}
		fmt.Printf("Wrote %d documents to %s\n", len(docs), out)
		return nil
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatDocuments(docs, jsonOutput)
}
