// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ident

import (
	"regexp"
	"strings"

	"github.com/pdiddy/bibmeta/pkg/types"
)

// Modern arXiv IDs (since April 2007): YYMM.NNNN or YYMM.NNNNN with an
// optional version suffix, e.g. "2303.12345v2". Legacy IDs pair an archive
// (optionally with a subject class) with a 7-digit YYMMNNN number,
// e.g. "hep-th/9901001" or "math.AG/0309136".
var (
	arxivModernRe = regexp.MustCompile(`(?:arXiv:)?\b(\d{4}\.\d{4,5}(?:v\d+)?)\b`)
	arxivLegacyRe = regexp.MustCompile(`\b([a-z-]+(?:\.[A-Za-z-]+)?)/(\d{2}(?:0[1-9]|1[0-2])\d{3})(v\d+)?\b`)

	arxivModernFullRe = regexp.MustCompile(`^\d{4}\.\d{4,5}(?:v\d+)?$`)
	arxivLegacyFullRe = regexp.MustCompile(`^([a-z-]+)(?:\.[A-Za-z-]+)?/\d{2}(?:0[1-9]|1[0-2])\d{3}(?:v\d+)?$`)
)

// legacyArchives lists the arXiv archives that issued pre-2007 identifiers,
// including the archives later merged into the main taxonomy. Legacy
// recognition requires the archive part to be in this set, so an arbitrary
// "word/1234567" in prose is not taken for an arXiv ID.
var legacyArchives = map[string]bool{
	"acc-phys": true, "adap-org": true, "alg-geom": true, "ao-sci": true,
	"astro-ph": true, "atom-ph": true, "bayes-an": true, "chao-dyn": true,
	"chem-ph": true, "cmp-lg": true, "comp-gas": true, "cond-mat": true,
	"cs": true, "dg-ga": true, "funct-an": true, "gr-qc": true,
	"hep-ex": true, "hep-lat": true, "hep-ph": true, "hep-th": true,
	"math": true, "math-ph": true, "mtrl-th": true, "nlin": true,
	"nucl-ex": true, "nucl-th": true, "patt-sol": true, "physics": true,
	"plasm-ph": true, "q-alg": true, "q-bio": true, "quant-ph": true,
	"solv-int": true, "supr-con": true,
}

// scanArxivIDs locates arXiv ID candidates, legacy and modern forms in a
// single pass, in position order.
func scanArxivIDs(text string) []Candidate {
	var out []Candidate

	for _, m := range arxivModernRe.FindAllStringSubmatchIndex(text, -1) {
		// Span of capture group 1: the ID without any "arXiv:" prefix.
		out = append(out, Candidate{
			Kind:  types.KindArxiv,
			Raw:   text[m[2]:m[3]],
			Start: m[2],
			End:   m[3],
		})
	}

	for _, m := range arxivLegacyRe.FindAllStringSubmatchIndex(text, -1) {
		archive := text[m[2]:m[3]]
		if idx := strings.IndexByte(archive, '.'); idx >= 0 {
			archive = archive[:idx]
		}
		if !legacyArchives[archive] {
			continue
		}
		out = append(out, Candidate{
			Kind:  types.KindArxiv,
			Raw:   text[m[0]:m[1]],
			Start: m[0],
			End:   m[1],
		})
	}

	sortCandidates(out)
	return out
}

// ExtractArxivIDs returns the distinct arXiv IDs found in text, in
// first-seen order.
func ExtractArxivIDs(text string) []string {
	var raws []string
	for _, c := range scanArxivIDs(text) {
		raws = append(raws, c.Raw)
	}
	return dedupe(raws)
}

// IsValidArxivID reports whether id is a well-formed canonical arXiv ID,
// legacy or modern.
func IsValidArxivID(id string) bool {
	if arxivModernFullRe.MatchString(id) {
		return true
	}
	m := arxivLegacyFullRe.FindStringSubmatch(id)
	return m != nil && legacyArchives[m[1]]
}

// normalizeArxivID validates an arXiv ID candidate. Canonicalization strips
// an optional "arXiv:" prefix and keeps the version suffix, so normalizing
// an already-canonical ID is a no-op.
func normalizeArxivID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	id = strings.TrimPrefix(id, "arXiv:")
	id = strings.TrimPrefix(id, "arxiv:")
	if !IsValidArxivID(id) {
		return "", invalid(types.KindArxiv, raw, "not a legacy or modern arXiv identifier")
	}
	return id, nil
}

// sortCandidates orders candidates by start offset (insertion sort; the
// per-text candidate count is small).
func sortCandidates(cs []Candidate) {
	for i := 1; i < len(cs); i++ {
		for j := i; j > 0 && cs[j].Start < cs[j-1].Start; j-- {
			cs[j], cs[j-1] = cs[j-1], cs[j]
		}
	}
}
