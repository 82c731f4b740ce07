// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ident

import (
	"regexp"
	"strings"

	"github.com/pdiddy/bibmeta/pkg/types"
)

// issnRe matches the printed ISSN form NNNN-NNNC where the check character
// C is a digit or X.
var issnRe = regexp.MustCompile(`\b(\d{4})-(\d{3}[\dXx])\b`)

// scanISSNs locates ISSN candidates in text.
func scanISSNs(text string) []Candidate {
	var out []Candidate
	for _, span := range issnRe.FindAllStringIndex(text, -1) {
		out = append(out, Candidate{
			Kind:  types.KindISSN,
			Raw:   text[span[0]:span[1]],
			Start: span[0],
			End:   span[1],
		})
	}
	return out
}

// ExtractISSNs returns the distinct canonical ISSNs found in text that pass
// the mod-11 check digit, in first-seen order.
func ExtractISSNs(text string) []string {
	var canonical []string
	for _, c := range scanISSNs(text) {
		if issn, err := normalizeISSN(c.Raw); err == nil {
			canonical = append(canonical, issn)
		}
	}
	return dedupe(canonical)
}

// IsValidISSN reports whether s is a checksum-correct ISSN, with or
// without the conventional hyphen.
func IsValidISSN(s string) bool {
	_, err := normalizeISSN(s)
	return err == nil
}

// normalizeISSN validates an ISSN candidate and returns the canonical
// hyphen-free eight-character form with an uppercase X check digit.
// The check digit satisfies sum(w_i * d_i) ≡ 0 (mod 11) with weights
// 8..1 over all eight positions and X standing for 10.
func normalizeISSN(raw string) (string, error) {
	issn := strings.ToUpper(stripSeparators(raw))
	if len(issn) != 8 || !digitsWithCheckX(issn) {
		return "", invalid(types.KindISSN, raw, "an ISSN has 8 digits")
	}
	sum := 0
	for i, r := range issn {
		v := int(r - '0')
		if r == 'X' {
			if i != 7 {
				return "", invalid(types.KindISSN, raw, "X is only valid as the check digit")
			}
			v = 10
		}
		sum += (8 - i) * v
	}
	if sum%11 != 0 {
		return "", invalid(types.KindISSN, raw, "mod-11 check digit mismatch")
	}
	return issn, nil
}
