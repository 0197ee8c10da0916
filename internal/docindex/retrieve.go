// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docindex

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// QueryOptions holds parameters for index queries.
type QueryOptions struct {
	// Query is an FTS5 full-text search string over document content.
	Query string

	// Source filters by source ID, e.g. "ontology:vocab-ttl".
	Source string

	// Kind filters by source kind: "ontology" or "examples".
	Kind string

	// Meta filters on metadata fields with AND semantics, e.g.
	// query_type=AskQuery.
	Meta map[string]string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Source == "" && q.Kind == "" && len(q.Meta) == 0
}

// QueryResult is one indexed document with its source attribution.
type QueryResult struct {
	ID       string            `json:"id" yaml:"id"`
	Content  string            `json:"content" yaml:"content"`
	Metadata map[string]string `json:"metadata" yaml:"metadata"`
	Source   string            `json:"source" yaml:"source"`
	Kind     string            `json:"kind" yaml:"kind"`
}

// Retrieve queries the index with optional full-text search and structured
// filters. Results are ranked by relevance for full-text queries and sorted
// by source and ID otherwise.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT d.id, d.content, d.metadata, s.id, s.kind, documents_fts.rank
			FROM documents_fts
			JOIN documents d ON d.rowid = documents_fts.rowid
			LEFT JOIN sources s ON d.source_id = s.id
			WHERE documents_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT d.id, d.content, d.metadata, s.id, s.kind, 0 AS rank
			FROM documents d
			LEFT JOIN sources s ON d.source_id = s.id
			WHERE 1=1`)
	}

	if opts.Source != "" {
		qb.WriteString(` AND d.source_id = ?`)
		args = append(args, opts.Source)
	}

	if opts.Kind != "" {
		qb.WriteString(` AND s.kind = ?`)
		args = append(args, opts.Kind)
	}

	metaKeys := make([]string, 0, len(opts.Meta))
	for k := range opts.Meta {
		metaKeys = append(metaKeys, k)
	}
	sort.Strings(metaKeys)
	for _, k := range metaKeys {
		qb.WriteString(` AND json_extract(d.metadata, '$.' || ?) = ?`)
		args = append(args, k, opts.Meta[k])
	}

	if useFTS {
		qb.WriteString(` ORDER BY documents_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY d.source_id, d.id`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr           QueryResult
			metadataJSON string
			sourceID     sql.NullString
			sourceKind   sql.NullString
			rank         float64
		)

		if err := rows.Scan(
			&qr.ID, &qr.Content, &metadataJSON, &sourceID, &sourceKind, &rank,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		json.Unmarshal([]byte(metadataJSON), &qr.Metadata)
		if sourceID.Valid {
			qr.Source = sourceID.String
		}
		if sourceKind.Valid {
			qr.Kind = sourceKind.String
		}

		results = append(results, qr)
	}

	return results, rows.Err()
}
