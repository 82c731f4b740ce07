// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paper

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pdiddy/bibmeta/internal/bbl"
	"github.com/pdiddy/bibmeta/internal/registry"
	"github.com/pdiddy/bibmeta/pkg/types"
)

// CitedReferences parses a .bbl file (or raw .bbl content) into references.
// When the Finder has a *registry.Registry as resolver, references that
// carry an arXiv ID but no DOI get the DOI arXiv records for them, so
// citation lists resolve to DOIs wherever possible.
func (f *Finder) CitedReferences(ctx context.Context, bblPathOrContent string) ([]types.Reference, error) {
	content := bblPathOrContent
	if data, err := os.ReadFile(bblPathOrContent); err == nil {
		content = string(data)
	}

	var detexer bbl.Detexer
	if f.Runner != nil {
		detexer = f.Runner
	}
	refs, err := bbl.Parse(ctx, detexer, content)
	if err != nil {
		return nil, err
	}

	reg, _ := f.Resolver.(*registry.Registry)
	if reg == nil {
		return refs, nil
	}

	for i := range refs {
		if refs[i].DOI() != "" {
			continue
		}
		arxivID := refs[i].ArxivID()
		if arxivID == "" {
			continue
		}
		doi, err := reg.DOIForArxiv(ctx, arxivID)
		if errors.Is(err, registry.ErrNotFound) {
			continue
		}
		if err != nil {
			f.warnf("resolving DOI for arXiv:%s: %v\n", arxivID, err)
			continue
		}
		refs[i].Identifiers = append(refs[i].Identifiers,
			types.Identifier{Kind: types.KindDOI, Raw: doi, Canonical: doi})
	}
	return refs, nil
}

// ArxivCitations downloads the e-print source for an arXiv ID, extracts
// its .bbl files, and parses every bibliography found into references.
// A preprint whose source carries no .bbl yields an empty list.
func (f *Finder) ArxivCitations(ctx context.Context, arxivID string) ([]types.Reference, error) {
	reg, ok := f.Resolver.(*registry.Registry)
	if !ok {
		return nil, fmt.Errorf("arXiv citation listing needs a registry resolver")
	}

	bbls, err := reg.BBLFiles(ctx, arxivID)
	if err != nil {
		return nil, fmt.Errorf("fetching sources for arXiv:%s: %w", arxivID, err)
	}

	var refs []types.Reference
	for _, content := range bbls {
		parsed, err := f.CitedReferences(ctx, content)
		if err != nil {
			// A source tree can mix real .bbl files with stubs.
			f.warnf("skipping unparseable bibliography in arXiv:%s: %v\n", arxivID, err)
			continue
		}
		refs = append(refs, parsed...)
	}
	return refs, nil
}
