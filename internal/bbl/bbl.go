// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bbl parses LaTeX-generated .bbl bibliography files into discrete
// references. Splitting is structural (one reference per \bibitem block);
// field extraction is heuristic and best-effort, so malformed input yields
// partial records rather than a hard failure.
package bbl

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/bibmeta/internal/ident"
	"github.com/pdiddy/bibmeta/internal/textextract"
	"github.com/pdiddy/bibmeta/pkg/types"
)

var (
	// bibitemRe delimits entries: \bibitem{key} or \bibitem[label]{key}.
	bibitemRe = regexp.MustCompile(`\\bibitem(?:\[[^\]]*\])?\{[^}]*\}`)

	// endBibliographyRe matches the closing macro and anything after it.
	endBibliographyRe = regexp.MustCompile(`(?s)\\end\{thebibliography\}.*`)
)

// ParseError reports .bbl content with no recognizable bibliography
// structure at all. Partial content never produces it.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable bibliography: %s", e.Reason)
}

// Detexer strips LaTeX markup from a fragment. *textextract.Runner
// implements it with OpenDeTeX; the package falls back to an internal
// macro stripper when the binary is missing.
type Detexer interface {
	Detex(ctx context.Context, latex string) (string, error)
}

// SplitBibitems cuts .bbl content into raw per-\bibitem blocks in source
// order. Text before the first \bibitem and after \end{thebibliography}
// is dropped.
func SplitBibitems(content string) []string {
	content = endBibliographyRe.ReplaceAllString(content, "")
	parts := bibitemRe.Split(content, -1)
	if len(parts) <= 1 {
		return nil
	}
	items := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		items = append(items, strings.TrimSpace(p))
	}
	return items
}

// Plaintext renders one bibitem block as cleaned plain text, going through
// the detexer when one is available and the internal LaTeX stripper
// otherwise (or when the detexer's tool is missing).
func Plaintext(ctx context.Context, d Detexer, bibitem string) string {
	if d != nil {
		if out, err := d.Detex(ctx, bibitem); err == nil {
			return out
		}
	}
	return textextract.CleanWhitespace(stripLatex(bibitem))
}

// Parse turns .bbl content into references, one per \bibitem, in source
// order. Each reference carries its cleaned plaintext, heuristically
// extracted fields, and any identifiers validated out of the entry text.
// Content without a single \bibitem yields a *ParseError.
func Parse(ctx context.Context, d Detexer, content string) ([]types.Reference, error) {
	items := SplitBibitems(content)
	if items == nil {
		return nil, &ParseError{Reason: "no \\bibitem entries found"}
	}

	refs := make([]types.Reference, 0, len(items))
	for _, item := range items {
		plain := Plaintext(ctx, d, item)
		ref := parseFields(plain)
		ref.Raw = plain
		for _, c := range ident.Extract(plain) {
			if id, err := ident.Validate(c); err == nil {
				ref.Identifiers = append(ref.Identifiers, id)
			}
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
