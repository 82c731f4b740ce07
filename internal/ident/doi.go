// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ident

import (
	"regexp"
	"strings"

	"github.com/pdiddy/bibmeta/pkg/types"
)

// doiRe matches DOIs in running text: a "10." prefix with a 4+ digit
// registrant (optionally dotted), a slash, and a suffix free of whitespace,
// quotes, and ampersands. The suffix class replaces the usual negative
// lookahead, which RE2 does not support.
var doiRe = regexp.MustCompile(`\b10\.[0-9]{4,9}(?:\.[0-9]+)*/[^"&'<>\s]+`)

// doiFullRe anchors doiRe for whole-string validation.
var doiFullRe = regexp.MustCompile(`^10\.[0-9]{4,9}(?:\.[0-9]+)*/[^"&'<>\s]+$`)

// scanDOIs locates DOI candidates in text. Trailing sentence punctuation is
// trimmed from each match, as are unbalanced closing parens and brackets
// (DOIs legitimately contain balanced ones, e.g. "10.1016/S0735-1097(98)00347-7").
func scanDOIs(text string) []Candidate {
	var out []Candidate
	for _, span := range doiRe.FindAllStringIndex(text, -1) {
		raw := trimDOITail(text[span[0]:span[1]])
		if raw == "" {
			continue
		}
		out = append(out, Candidate{
			Kind:  types.KindDOI,
			Raw:   raw,
			Start: span[0],
			End:   span[0] + len(raw),
		})
	}
	return out
}

// ExtractDOIs returns the distinct DOI strings found in text, in first-seen
// order, already trimmed of surrounding punctuation.
func ExtractDOIs(text string) []string {
	var raws []string
	for _, c := range scanDOIs(text) {
		raws = append(raws, c.Raw)
	}
	return dedupe(raws)
}

// IsValidDOI reports whether doi is a well-formed canonical DOI.
func IsValidDOI(doi string) bool {
	return doiFullRe.MatchString(doi)
}

// normalizeDOI validates a DOI candidate. The canonical form is the DOI
// itself with surrounding punctuation trimmed; DOIs carry no checksum.
func normalizeDOI(raw string) (string, error) {
	doi := trimDOITail(strings.TrimSpace(raw))
	doi = strings.TrimPrefix(doi, "doi:")
	doi = strings.TrimPrefix(doi, "DOI:")
	for _, prefix := range []string{"https://doi.org/", "http://doi.org/", "http://dx.doi.org/", "https://dx.doi.org/"} {
		doi = strings.TrimPrefix(doi, prefix)
	}
	if !IsValidDOI(doi) {
		return "", invalid(types.KindDOI, raw, "does not match the DOI grammar 10.<registrant>/<suffix>")
	}
	return doi, nil
}

// trimDOITail strips trailing punctuation that prose attaches to a DOI:
// sentence punctuation always, closing parens and brackets only when they
// have no matching opener inside the DOI.
func trimDOITail(doi string) string {
	for doi != "" {
		last := doi[len(doi)-1]
		switch last {
		case '.', ',', ';', ':':
			doi = doi[:len(doi)-1]
		case ')':
			if strings.Count(doi, ")") > strings.Count(doi, "(") {
				doi = doi[:len(doi)-1]
				continue
			}
			return doi
		case ']':
			if strings.Count(doi, "]") > strings.Count(doi, "[") {
				doi = doi[:len(doi)-1]
				continue
			}
			return doi
		default:
			return doi
		}
	}
	return doi
}
