// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ident

import (
	"regexp"
	"strings"

	"github.com/pdiddy/bibmeta/pkg/types"
)

// isbnRe matches ISBN-like runs: digits with optional hyphen/space group
// separators and an optional X check digit, possibly preceded by an
// "ISBN[-10|-13]:" label. The run is validated by digit count afterwards:
// exactly 10, or exactly 13 starting with the 978/979 bookland prefix.
// A bare 13-digit run without that prefix is treated as noise.
var isbnRe = regexp.MustCompile(`(?i)\b(?:ISBN(?:-1[03])?:?\s*)?([0-9][0-9 -]{8,15}[0-9Xx])\b`)

// scanISBNs locates ISBN candidates in text.
func scanISBNs(text string) []Candidate {
	var out []Candidate
	for _, m := range isbnRe.FindAllStringSubmatchIndex(text, -1) {
		raw := text[m[2]:m[3]]
		if !isbnPlausible(raw) {
			continue
		}
		out = append(out, Candidate{
			Kind:  types.KindISBN,
			Raw:   raw,
			Start: m[2],
			End:   m[3],
		})
	}
	return out
}

// ExtractISBNs returns the distinct canonical ISBNs found in text that pass
// their checksum, in first-seen order.
func ExtractISBNs(text string) []string {
	var canonical []string
	for _, c := range scanISBNs(text) {
		if isbn, err := normalizeISBN(c.Raw); err == nil {
			canonical = append(canonical, isbn)
		}
	}
	return dedupe(canonical)
}

// IsValidISBN reports whether s is a checksum-correct ISBN-10 or ISBN-13,
// with or without separators.
func IsValidISBN(s string) bool {
	_, err := normalizeISBN(s)
	return err == nil
}

// normalizeISBN validates an ISBN candidate and returns the canonical
// separator-free form with an uppercase X check digit where present.
func normalizeISBN(raw string) (string, error) {
	isbn := stripSeparators(raw)
	isbn = strings.ToUpper(isbn)
	switch len(isbn) {
	case 10:
		if !isbn10ChecksumOK(isbn) {
			return "", invalid(types.KindISBN, raw, "ISBN-10 mod-11 checksum mismatch")
		}
	case 13:
		if !strings.HasPrefix(isbn, "978") && !strings.HasPrefix(isbn, "979") {
			return "", invalid(types.KindISBN, raw, "ISBN-13 must start with 978 or 979")
		}
		if !isbn13ChecksumOK(isbn) {
			return "", invalid(types.KindISBN, raw, "ISBN-13 weighted mod-10 checksum mismatch")
		}
	default:
		return "", invalid(types.KindISBN, raw, "an ISBN has 10 or 13 digits")
	}
	return isbn, nil
}

// isbnPlausible filters scanner matches by digit count and bookland prefix
// before any checksum is applied.
func isbnPlausible(raw string) bool {
	s := stripSeparators(raw)
	switch len(s) {
	case 10:
		return digitsWithCheckX(s)
	case 13:
		return (strings.HasPrefix(s, "978") || strings.HasPrefix(s, "979")) && allDigits(s)
	default:
		return false
	}
}

// isbn10ChecksumOK verifies the ISBN-10 checksum: the weighted sum
// 10*d1 + 9*d2 + ... + 1*d10 must be divisible by 11, with X standing for
// 10 in the final position.
func isbn10ChecksumOK(isbn string) bool {
	if !digitsWithCheckX(isbn) {
		return false
	}
	sum := 0
	for i, r := range isbn {
		v := int(r - '0')
		if r == 'X' {
			v = 10
		}
		sum += (10 - i) * v
	}
	return sum%11 == 0
}

// isbn13ChecksumOK verifies the ISBN-13 (EAN) checksum: digits weighted
// alternately 1 and 3 must sum to a multiple of 10.
func isbn13ChecksumOK(isbn string) bool {
	if !allDigits(isbn) {
		return false
	}
	sum := 0
	for i, r := range isbn {
		v := int(r - '0')
		if i%2 == 1 {
			v *= 3
		}
		sum += v
	}
	return sum%10 == 0
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// digitsWithCheckX reports whether s is all digits except for an optional
// X in the final (check) position.
func digitsWithCheckX(s string) bool {
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	if !allDigits(s[:len(s)-1]) {
		return false
	}
	return last == 'X' || last == 'x' || (last >= '0' && last <= '9')
}
