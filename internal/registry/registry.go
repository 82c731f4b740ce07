// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry talks to the external identifier registries: CrossRef
// for DOIs and ISSNs, the arXiv API for arXiv IDs, and Open Library for
// ISBNs. Confirmation is best-effort; ErrNotFound means "could not
// confirm", not "confirmed invalid", since a registry may simply be
// unreachable or lagging.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/bibmeta/internal/httputil"
	"github.com/pdiddy/bibmeta/pkg/types"
)

// ErrNotFound indicates the registry could not confirm the identifier.
var ErrNotFound = errors.New("identifier not found in registry")

// Resolver confirms identifier existence against a remote registry.
// Implementations return nil when the registry knows the identifier,
// ErrNotFound when it does not, and any other error for transport
// failures.
type Resolver interface {
	Confirm(ctx context.Context, kind types.Kind, canonical string) error
}

// Base URLs for the registries. Declared as vars so tests can substitute
// httptest servers.
var (
	crossrefWorksBase    = "https://api.crossref.org/works/"
	crossrefJournalsBase = "https://api.crossref.org/journals/"
	arxivAPIBase         = "https://export.arxiv.org/api/query"
	arxivEPrintBase      = "https://arxiv.org/e-print/"
	openLibraryBase      = "https://openlibrary.org/isbn/"
	openAlexWorksBase    = "https://api.openalex.org/works/"
	doiBase              = "https://doi.org/"
)

// Registry dispatches confirmation and metadata lookups to the per-kind
// registry clients. It implements Resolver.
type Registry struct {
	client *httputil.Client
	cfg    types.LookupConfig
}

// New creates a Registry with its own rate-limited HTTP client.
func New(cfg types.LookupConfig) *Registry {
	return &Registry{client: httputil.New(cfg), cfg: cfg}
}

// NewWithHTTPClient is like New but wraps the given http.Client, for tests.
func NewWithHTTPClient(cfg types.LookupConfig, hc *http.Client) *Registry {
	return &Registry{client: httputil.NewWithHTTPClient(cfg, hc), cfg: cfg}
}

// Confirm checks the identifier against its kind's registry.
func (r *Registry) Confirm(ctx context.Context, kind types.Kind, canonical string) error {
	switch kind {
	case types.KindDOI:
		return r.confirmDOI(ctx, canonical)
	case types.KindArxiv:
		return r.confirmArxiv(ctx, canonical)
	case types.KindISBN:
		return r.confirmISBN(ctx, canonical)
	case types.KindISSN:
		return r.confirmISSN(ctx, canonical)
	default:
		return fmt.Errorf("no registry for identifier kind %q", kind)
	}
}

// Metadata fetches a bibliographic record for the identifier from its
// kind's registry.
func (r *Registry) Metadata(ctx context.Context, id types.Identifier) (types.Reference, error) {
	switch id.Kind {
	case types.KindDOI:
		return r.doiMetadata(ctx, id.Canonical)
	case types.KindArxiv:
		return r.arxivMetadata(ctx, id.Canonical)
	case types.KindISBN:
		return r.isbnMetadata(ctx, id.Canonical)
	default:
		return types.Reference{}, fmt.Errorf("no metadata source for identifier kind %q", id.Kind)
	}
}

// checkStatus maps an HTTP status to the registry error taxonomy and
// drains the body on error so the connection can be reused.
func checkStatus(resp *http.Response, what string) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	default:
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s returned HTTP %d", what, resp.StatusCode)
	}
}
