// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sparqlexamples harvests the example queries that SPARQL endpoint
// publishers expose as SHACL sh:SPARQLExecutable declarations.
package sparqlexamples

import (
	"context"
	"fmt"

	"github.com/knakk/rdf"
	"github.com/knakk/sparql"

	"github.com/pdiddy/rdf-harvest/internal/harvest"
	"github.com/pdiddy/rdf-harvest/internal/sparqlparse"
	"github.com/pdiddy/rdf-harvest/pkg/types"
)

// Loader harvests example queries from one SPARQL endpoint.
type Loader struct {
	endpointURL string
	repo        *sparql.Repo
}

// NewLoader connects to the endpoint and probes it with a trivial ASK
// before any harvesting. An endpoint that cannot answer the probe fails
// construction.
func NewLoader(endpointURL string, cfg types.EndpointConfig) (*Loader, error) {
	repo, err := newRepo(endpointURL, cfg)
	if err != nil {
		return nil, probeError(endpointURL, err)
	}
	l := &Loader{endpointURL: endpointURL, repo: repo}
	if err := l.probe(); err != nil {
		return nil, probeError(endpointURL, err)
	}
	return l, nil
}

// probeError is the one place a transport failure gets rewrapped.
func probeError(endpointURL string, err error) error {
	return fmt.Errorf("Could not query the provided endpoint at %s: %w", endpointURL, err)
}

func (l *Loader) probe() error {
	q, err := bank.Prepare(tagProbe)
	if err != nil {
		return err
	}
	_, err = l.repo.Query(q)
	return err
}

// Name identifies the loader in progress output and the document index.
func (l *Loader) Name() string {
	return "examples:" + harvest.Slug(l.endpointURL)
}

// Load harvests the endpoint's prefix catalog and then its example queries.
// Each example becomes one document whose content is the human comment and
// whose metadata carries the rewritten, validated query text. A query that
// fails validation aborts the whole load.
func (l *Loader) Load(ctx context.Context) ([]types.Document, error) {
	prefixes, err := l.loadPrefixes(ctx)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	q, err := bank.Prepare(tagExamples)
	if err != nil {
		return nil, err
	}
	res, err := l.repo.Query(q)
	if err != nil {
		return nil, err
	}

	var docs []types.Document
	for _, sol := range res.Solutions() {
		comment := binding(sol, "comment")
		query := StripAnchors(binding(sol, "query"))
		query = prefixes.Inject(query)

		parsed, err := sparqlparse.Parse(query)
		if err != nil {
			return nil, err
		}

		docs = append(docs, types.Document{
			PageContent: comment,
			Metadata: map[string]string{
				types.MetaComment:     comment,
				types.MetaQuery:       query,
				types.MetaEndpointURL: l.endpointURL,
				types.MetaQueryType:   parsed.Form.String(),
			},
		})
	}
	return docs, nil
}

func (l *Loader) loadPrefixes(ctx context.Context) (*Prefixes, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	q, err := bank.Prepare(tagPrefixes)
	if err != nil {
		return nil, err
	}
	res, err := l.repo.Query(q)
	if err != nil {
		return nil, err
	}

	var p Prefixes
	for _, sol := range res.Solutions() {
		name := binding(sol, "prefix")
		namespace := binding(sol, "namespace")
		if name == "" || namespace == "" {
			continue
		}
		p.Add(name, namespace)
	}
	return &p, nil
}

func newRepo(endpointURL string, cfg types.EndpointConfig) (*sparql.Repo, error) {
	var opts []func(*sparql.Repo) error
	if cfg.Timeout > 0 {
		opts = append(opts, sparql.Timeout(cfg.Timeout))
	}
	if cfg.Username != "" && cfg.Password != "" {
		opts = append(opts, sparql.DigestAuth(cfg.Username, cfg.Password))
	}
	return sparql.NewRepo(endpointURL, opts...)
}

// binding returns the bound term's string form, or "" when the variable is
// unbound in this solution.
func binding(sol map[string]rdf.Term, name string) string {
	if term, ok := sol[name]; ok {
		return term.String()
	}
	return ""
}
