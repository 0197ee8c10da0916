// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ontology harvests class and property documents from OWL/RDF
// vocabularies. A vocabulary is either parsed from a local file or URL, or
// queried live from a SPARQL endpoint.
package ontology

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/knakk/rdf"
	"github.com/knakk/sparql"

	"github.com/pdiddy/rdf-harvest/internal/harvest"
	"github.com/pdiddy/rdf-harvest/internal/httputil"
	"github.com/pdiddy/rdf-harvest/internal/rdfgraph"
	"github.com/pdiddy/rdf-harvest/pkg/types"
)

// acceptRDF covers the serializations the graph decoder understands.
const acceptRDF = "application/rdf+xml, text/turtle, application/n-triples;q=0.9, */*;q=0.8"

// Loader harvests one ontology. In file mode the graph is parsed eagerly at
// construction; in endpoint mode each Load queries the remote store.
type Loader struct {
	location string
	graph    *rdfgraph.Graph
	repo     *sparql.Repo
}

// NewLoader reads and parses the ontology at location, a local path or an
// http(s) URL. format is an optional serialization hint (xml, ttl, nt);
// when empty the format is detected from the location and, for URLs, the
// response Content-Type. Unreachable locations and malformed content fail
// here rather than at Load time.
func NewLoader(ctx context.Context, location, format string, cfg types.OntologyConfig) (*Loader, error) {
	var (
		body        io.ReadCloser
		contentType string
		err         error
	)
	if IsRemote(location) {
		client := &http.Client{Timeout: cfg.Timeout}
		body, contentType, err = httputil.Fetch(ctx, client, location, acceptRDF, cfg.UserAgent)
	} else {
		body, err = os.Open(location)
	}
	if err != nil {
		return nil, err
	}
	defer body.Close()

	f, err := resolveFormat(location, format, contentType)
	if err != nil {
		return nil, err
	}

	graph, err := rdfgraph.Decode(body, f)
	if err != nil {
		return nil, err
	}
	return &Loader{location: location, graph: graph}, nil
}

// NewEndpointLoader harvests the same class and property terms from a
// SPARQL endpoint instead of a parsed document. Construction only builds
// the client; connectivity problems surface from Load.
func NewEndpointLoader(endpointURL string, cfg types.EndpointConfig) (*Loader, error) {
	repo, err := newRepo(endpointURL, cfg)
	if err != nil {
		return nil, err
	}
	return &Loader{location: endpointURL, repo: repo}, nil
}

// Name identifies the loader in progress output and the document index.
func (l *Loader) Name() string {
	return "ontology:" + harvest.Slug(l.location)
}

// Load runs the fixed class query followed by the fixed property query and
// returns one document per result row. Results are fully materialized; a
// failure discards everything from this call.
func (l *Loader) Load(ctx context.Context) ([]types.Document, error) {
	if l.repo != nil {
		return l.loadEndpoint(ctx)
	}

	var docs []types.Document
	for _, typeSet := range [][]string{ClassTypes, PropertyTypes} {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		for _, row := range l.graph.TypedLabels(typeSet, LabelPredicates) {
			docs = append(docs, l.rowDocument(row.Subject, row.Predicate, row.Value, row.Type))
		}
	}
	return docs, nil
}

func (l *Loader) loadEndpoint(ctx context.Context) ([]types.Document, error) {
	var docs []types.Document
	for _, query := range []string{ClassQuery, PropertyQuery} {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		res, err := l.repo.Query(query)
		if err != nil {
			return nil, err
		}
		for _, sol := range res.Solutions() {
			docs = append(docs, l.rowDocument(
				binding(sol, "uri"),
				binding(sol, "pred"),
				binding(sol, "label"),
				binding(sol, "type"),
			))
		}
	}
	return docs, nil
}

// rowDocument turns one (uri, pred, label, type) result row into a document.
// The label value doubles as the page content.
func (l *Loader) rowDocument(uri, pred, label, typ string) types.Document {
	return types.Document{
		PageContent: label,
		Metadata: map[string]string{
			types.MetaLabel:     label,
			types.MetaURI:       uri,
			types.MetaType:      typ,
			types.MetaPredicate: pred,
			types.MetaOntology:  l.location,
		},
	}
}

// IsRemote reports whether location is an http(s) URL rather than a local
// file path.
func IsRemote(location string) bool {
	u, err := url.Parse(location)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

func resolveFormat(location, format, contentType string) (rdf.Format, error) {
	if format != "" {
		return rdfgraph.ParseFormat(format)
	}
	return rdfgraph.DetectFormat(location, contentType)
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
