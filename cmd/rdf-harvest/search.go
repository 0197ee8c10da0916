// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rdf-harvest/internal/docindex"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Query the harvested document index",
	Long: `Search runs FTS5 full-text search and structured filters over the
document index built by the index command. Filter by source, kind, or any
metadata field, and export matches to YAML or JSON.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("query", "", "full-text search query")
	searchCmd.Flags().String("source", "", "filter by source ID, e.g. ontology:vocab-schema-ttl")
	searchCmd.Flags().String("kind", "", "filter by source kind: ontology or examples")
	searchCmd.Flags().StringArray("meta", nil, "filter by metadata field, key=value (repeatable)")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	searchCmd.Flags().Int("max-results", 20, "maximum number of query results")
	searchCmd.Flags().String("index-dir", "index", "directory for the search index")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("export", "", "export matches instead of printing: yaml or json")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	opts, err := searchOptsFromFlags(cmd, args)
	if err != nil {
		return err
	}

	store, err := docindex.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	export, _ := cmd.Flags().GetString("export")
	if export != "" {
		indexDir, _ := cmd.Flags().GetString("index-dir")
		switch export {
		case "yaml":
			if err := store.ExportYAML(context.Background(), opts); err != nil {
				return err
			}
			fmt.Printf("Exported to %s\n", filepath.Join(indexDir, "export.yaml"))
		case "json":
			if err := store.ExportJSON(context.Background(), opts); err != nil {
				return err
			}
			fmt.Printf("Exported to %s\n", filepath.Join(indexDir, "export.json"))
		default:
			return fmt.Errorf("unsupported export format %q: use yaml or json", export)
		}
		return nil
	}

	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --source, --kind, or --meta")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func searchOptsFromFlags(cmd *cobra.Command, args []string) (docindex.QueryOptions, error) {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	source, _ := cmd.Flags().GetString("source")
	kind, _ := cmd.Flags().GetString("kind")
	limit, _ := cmd.Flags().GetInt("limit")
	metaPairs, _ := cmd.Flags().GetStringArray("meta")

	opts := docindex.QueryOptions{
		Query:      queryText,
		Source:     source,
		Kind:       kind,
		MaxResults: limit,
	}
	for _, pair := range metaPairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return opts, fmt.Errorf("invalid --meta %q: use key=value", pair)
		}
		if opts.Meta == nil {
			opts.Meta = make(map[string]string)
		}
		opts.Meta[key] = value
	}
	return opts, nil
}

func formatSearchOutput(results []docindex.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-50s  %-32s  %s\n", "Rank", "Content", "Source", "Kind")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for i, r := range results {
		content := r.Content
		if len(content) > 50 {
			content = content[:47] + "..."
		}
		source := r.Source
		if len(source) > 32 {
			source = source[:29] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-50s  %-32s  %s\n", i+1, content, source, r.Kind)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}
