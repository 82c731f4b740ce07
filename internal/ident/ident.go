// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ident recognizes and validates bibliographic identifiers (DOI,
// arXiv ID, ISBN, ISSN) in free text. Recognition is regex-driven and
// per-kind; validation applies the kind's format grammar and checksum and
// produces the canonical form.
package ident

import (
	"iter"

	"github.com/pdiddy/bibmeta/pkg/types"
)

// Candidate is a possible identifier located in a block of text. It has not
// been validated yet; Raw is the matched substring and [Start, End) its
// byte span in the scanned text.
type Candidate struct {
	Kind  types.Kind
	Raw   string
	Start int
	End   int
}

// scanners maps each kind to its recognizer. Each recognizer returns
// candidate spans in position order and never yields overlapping spans
// within its own kind.
var scanners = map[types.Kind]func(text string) []Candidate{
	types.KindDOI:   scanDOIs,
	types.KindArxiv: scanArxivIDs,
	types.KindISBN:  scanISBNs,
	types.KindISSN:  scanISSNs,
}

// Scan yields identifier candidates found in text, one recognizer pass per
// kind. When no kinds are given all known kinds are scanned. Overlapping
// spans across kinds are resolved first-kind-wins in the order of
// types.Kinds (DOI before arXiv before ISBN before ISSN), so the same
// substring never surfaces under two kinds. The sequence is restartable:
// ranging over it again rescans the text.
func Scan(text string, kinds ...types.Kind) iter.Seq[Candidate] {
	if len(kinds) == 0 {
		kinds = types.Kinds
	}
	return func(yield func(Candidate) bool) {
		var claimed []Candidate
		for _, kind := range kinds {
			scan, ok := scanners[kind]
			if !ok {
				continue
			}
			for _, c := range scan(text) {
				if overlapsAny(c, claimed) {
					continue
				}
				claimed = append(claimed, c)
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Extract collects all candidates from Scan into a slice.
func Extract(text string, kinds ...types.Kind) []Candidate {
	var out []Candidate
	for c := range Scan(text, kinds...) {
		out = append(out, c)
	}
	return out
}

// validators maps each kind to its canonicalizer. Each returns the
// canonical form or a *ValidationError.
var validators = map[types.Kind]func(raw string) (string, error){
	types.KindDOI:   normalizeDOI,
	types.KindArxiv: normalizeArxivID,
	types.KindISBN:  normalizeISBN,
	types.KindISSN:  normalizeISSN,
}

// Validate checks a candidate against its kind's grammar and checksum and
// returns the immutable, canonicalized identifier. Validation is
// idempotent: validating an already-canonical value returns it unchanged.
func Validate(c Candidate) (types.Identifier, error) {
	validate, ok := validators[c.Kind]
	if !ok {
		return types.Identifier{}, invalid(c.Kind, c.Raw, "unknown identifier kind")
	}
	canonical, err := validate(c.Raw)
	if err != nil {
		return types.Identifier{}, err
	}
	return types.Identifier{Kind: c.Kind, Raw: c.Raw, Canonical: canonical}, nil
}

// Normalize validates a raw string as the given kind and returns its
// canonical form.
func Normalize(kind types.Kind, raw string) (string, error) {
	id, err := Validate(Candidate{Kind: kind, Raw: raw})
	if err != nil {
		return "", err
	}
	return id.Canonical, nil
}

func overlapsAny(c Candidate, claimed []Candidate) bool {
	for _, o := range claimed {
		if c.Start < o.End && o.Start < c.End {
			return true
		}
	}
	return false
}

// dedupe removes duplicate raw matches while preserving first-seen order.
func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
