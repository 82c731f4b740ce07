// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/bibmeta/internal/bibtex"
	"github.com/pdiddy/bibmeta/pkg/types"
)

// BibTeXForDOI fetches a BibTeX entry for the DOI via doi.org content
// negotiation (Accept: application/x-bibtex). The resolver answers 404
// for unregistered DOIs, which maps to ErrNotFound.
func (r *Registry) BibTeXForDOI(ctx context.Context, doi string) (string, error) {
	resp, err := r.client.Get(ctx, doiBase+doi, "application/x-bibtex")
	if err != nil {
		return "", fmt.Errorf("DOI content negotiation request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "doi.org"); err != nil {
		return "", err
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "x-bibtex") {
		return "", fmt.Errorf("doi.org returned %q instead of BibTeX", ct)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading BibTeX response: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// BibTeXForArxiv synthesizes a BibTeX entry for an arXiv ID from the
// metadata the arXiv API reports for it.
func (r *Registry) BibTeXForArxiv(ctx context.Context, arxivID string) (string, error) {
	ref, err := r.arxivMetadata(ctx, arxivID)
	if err != nil {
		return "", err
	}
	entry := bibtex.FromReference(ref, bibtex.Slugify("arxiv_"+arxivID))
	if entry.Type == "misc" {
		// Unpublished preprint: record where it lives.
		entry.Fields["howpublished"] = "arXiv:" + arxivID
	}
	return entry.String(), nil
}

// BibTeX fetches a BibTeX entry for any identifier with a registry that
// can produce one: DOIs through content negotiation, arXiv IDs through
// synthesis from API metadata, ISBNs through their Open Library record.
func (r *Registry) BibTeX(ctx context.Context, id types.Identifier) (string, error) {
	switch id.Kind {
	case types.KindDOI:
		return r.BibTeXForDOI(ctx, id.Canonical)
	case types.KindArxiv:
		return r.BibTeXForArxiv(ctx, id.Canonical)
	case types.KindISBN:
		ref, err := r.isbnMetadata(ctx, id.Canonical)
		if err != nil {
			return "", err
		}
		entry := bibtex.FromReference(ref, bibtex.DefaultKey(ref))
		entry.Type = "book"
		return entry.String(), nil
	default:
		return "", fmt.Errorf("no BibTeX source for identifier kind %q", id.Kind)
	}
}
