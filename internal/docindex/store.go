// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docindex persists harvested documents and builds a full-text
// retrieval index over them.
package docindex

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/rdf-harvest/pkg/types"
)

const dbFile = "harvest.db"

// Store manages the harvest index SQLite database.
type Store struct {
	db         *sql.DB
	indexDir   string
	maxResults int
}

// Source identifies where a batch of documents came from.
type Source struct {
	// ID is the loader name, e.g. "ontology:vocab-ttl".
	ID string

	// Kind groups sources: "ontology" or "examples".
	Kind string

	// Location is the original file location or endpoint URL.
	Location string
}

// NewStore opens or creates the index database at indexDir/harvest.db,
// creating the schema when it does not exist.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		indexDir:   cfg.IndexDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sources (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			location TEXT,
			harvested_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS documents (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			source_id TEXT NOT NULL REFERENCES sources(id),
			content TEXT NOT NULL,
			metadata TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_source_id ON documents(source_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='documents_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE documents_fts USING fts5(content, content=documents, content_rowid=rowid)`,
			`CREATE TRIGGER documents_ai AFTER INSERT ON documents BEGIN
				INSERT INTO documents_fts(rowid, content) VALUES (new.rowid, new.content);
			END`,
			`CREATE TRIGGER documents_ad AFTER DELETE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, content) VALUES('delete', old.rowid, old.content);
			END`,
			`CREATE TRIGGER documents_au AFTER UPDATE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, content) VALUES('delete', old.rowid, old.content);
				INSERT INTO documents_fts(rowid, content) VALUES (new.rowid, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Ingest stores one source's documents, replacing whatever the source held
// before. Re-harvesting an unchanged source is a no-op in effect because
// document IDs are deterministic. Documents repeating the same content and
// metadata share an ID and are stored once; the returned count is the
// number of rows written.
func (s *Store) Ingest(ctx context.Context, src Source, docs []types.Document) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE source_id = ?`, src.ID); err != nil {
		return 0, fmt.Errorf("deleting old documents: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sources (id, kind, location, harvested_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			kind=excluded.kind, location=excluded.location, harvested_at=excluded.harvested_at`,
		src.ID, src.Kind, src.Location, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("upserting source: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO documents (id, source_id, content, metadata)
		 VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	// Duplicate IDs must not reach the INSERT: resolving them through
	// REPLACE deletes the earlier row without firing documents_ad, which
	// strands that row's entry in the FTS index.
	inserted := 0
	seen := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		id := DocumentID(src.ID, doc)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		metadataJSON, err := json.Marshal(doc.Metadata)
		if err != nil {
			return inserted, fmt.Errorf("marshaling metadata: %w", err)
		}
		_, err = stmt.ExecContext(ctx,
			id, src.ID, doc.PageContent, string(metadataJSON),
		)
		if err != nil {
			return inserted, fmt.Errorf("inserting document: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return inserted, nil
}

// DocumentID derives a stable identifier for a document from its source and
// full contents. The same document always maps to the same ID, so repeated
// ingests do not grow the index.
func DocumentID(sourceID string, doc types.Document) string {
	h := sha256.New()
	h.Write([]byte(doc.PageContent))

	keys := make([]string, 0, len(doc.Metadata))
	for k := range doc.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(h, "\x00%s=%s", k, doc.Metadata[k])
	}

	return fmt.Sprintf("%s-%x", sourceID, h.Sum(nil)[:6])
}
