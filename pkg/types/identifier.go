// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the bibmeta library:
// identifiers, bibliography references, extraction results, and the
// configuration structs passed into the stages.
package types

// Kind classifies an identifier.
type Kind string

const (
	KindDOI   Kind = "doi"
	KindArxiv Kind = "arxiv"
	KindISBN  Kind = "isbn"
	KindISSN  Kind = "issn"
)

// Kinds lists all identifier kinds in priority order. When two kinds could
// claim overlapping text, the earlier kind wins; within a kind the scanner
// takes the longest match.
var Kinds = []Kind{KindDOI, KindArxiv, KindISBN, KindISSN}

// Valid reports whether k is one of the known identifier kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Identifier is a validated identifier found in a document. Once built by a
// validator it is treated as immutable: Canonical satisfies the kind's
// format grammar and checksum.
type Identifier struct {
	// Kind is the identifier family (doi, arxiv, isbn, issn).
	Kind Kind `json:"kind" yaml:"kind"`

	// Raw is the substring as matched in the source text.
	Raw string `json:"raw" yaml:"raw"`

	// Canonical is the normalized form: separator-free for ISBN/ISSN,
	// prefix-free for arXiv IDs, trimmed for DOIs.
	Canonical string `json:"canonical" yaml:"canonical"`
}

// URL returns the resolver URL for the identifier, or an empty string for
// kinds without a canonical URL scheme.
func (id Identifier) URL() string {
	switch id.Kind {
	case KindDOI:
		return "https://doi.org/" + id.Canonical
	case KindArxiv:
		return "https://arxiv.org/abs/" + id.Canonical
	default:
		return ""
	}
}
