// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package harvest runs document loaders and holds the plumbing shared
// between them: the loader capability, the sequential batch runner, and
// the manifest and harvest file formats.
package harvest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/rdf-harvest/pkg/types"
)

// Loader is the capability every document source implements: a stable name
// for progress output and the document index, and a blocking Load that
// materializes every document before returning. Loaders share no state and
// a Load over an unchanged source yields the same documents.
type Loader interface {
	Name() string
	Load(ctx context.Context) ([]types.Document, error)
}

// Batch holds the documents one loader produced.
type Batch struct {
	Name      string
	Documents []types.Document
}

// Result summarizes a batch run.
type Result struct {
	Batches []Batch
	Failed  int
	Errors  []string
}

// DocumentCount returns the total number of documents across all batches.
func (r Result) DocumentCount() int {
	n := 0
	for _, b := range r.Batches {
		n += len(b.Documents)
	}
	return n
}

// HasFailures reports whether any loader failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Run loads every source in order, printing per-source status to w. A
// failing loader does not abort the run; its error is recorded and the
// remaining sources are still harvested. Only context cancellation stops
// the run early, returning the batches collected so far.
func Run(ctx context.Context, loaders []Loader, w io.Writer) (Result, error) {
	var result Result
	for _, l := range loaders {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		docs, err := l.Load(ctx)
		if err != nil {
			fmt.Fprintf(w, "failed    %s: %v\n", l.Name(), err)
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", l.Name(), err))
			continue
		}
		fmt.Fprintf(w, "harvested %s (%d documents)\n", l.Name(), len(docs))
		result.Batches = append(result.Batches, Batch{Name: l.Name(), Documents: docs})
	}

	fmt.Fprintf(w, "\nBatch summary: %d harvested, %d failed (%d documents)\n",
		len(result.Batches), result.Failed, result.DocumentCount())
	return result, nil
}

// Slug returns an identifier-safe form of a location or endpoint URL: the
// scheme is dropped and every other run of non-alphanumeric characters
// collapses to a single '-'.
func Slug(location string) string {
	if i := strings.Index(location, "://"); i >= 0 {
		location = location[i+3:]
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(location) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingDash = false
		} else {
			pendingDash = true
		}
	}
	return b.String()
}
