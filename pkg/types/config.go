package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "rdf-harvest/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// OntologyConfig holds settings for harvesting terms from ontology files.
type OntologyConfig struct {
	HTTPConfig `yaml:",inline"`
}

// EndpointConfig holds settings for talking to a SPARQL endpoint.
type EndpointConfig struct {
	// Timeout is the per-query timeout for endpoint requests. Zero means
	// no client-side timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Username and Password enable HTTP digest authentication when both
	// are set. They default to the endpoint-username and endpoint-password
	// secrets.
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
}

// IndexConfig holds settings for the document index.
type IndexConfig struct {
	// IndexDir is the directory holding the SQLite database and export files.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// HarvestConfig groups all stage configurations.
type HarvestConfig struct {
	Ontology OntologyConfig `json:"ontology" yaml:"ontology"`
	Endpoint EndpointConfig `json:"endpoint" yaml:"endpoint"`
	Index    IndexConfig    `json:"index" yaml:"index"`
}
