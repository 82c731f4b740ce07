// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bbl

import (
	"regexp"
	"strings"

	"github.com/pdiddy/bibmeta/pkg/types"
)

// authorBlockRe matches an author section like "Smith, A. and Jones, B."
// or "Brown, T. et al." at the start of a citation. It captures the author
// block so it can be separated from the title that follows.
var authorBlockRe = regexp.MustCompile(
	`^((?:[A-Z][a-z]+(?:,\s+[A-Z]\.?)?(?:,?\s+(?:and|&)\s+)?)+(?:\s*et\s+al\.)?)\s*[.]?\s+(.+)$`,
)

// yearRe matches a 4-digit year.
var yearRe = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)

// parseFields extracts author/title/venue/year from a plaintext citation.
// It identifies the author block with a regex, then splits the remainder
// into title and venue at period boundaries. Fields it cannot place stay
// empty.
func parseFields(raw string) types.Reference {
	ref := types.Reference{Year: extractYear(raw)}

	remainder := raw
	if m := authorBlockRe.FindStringSubmatch(raw); m != nil {
		ref.Authors = parseAuthors(strings.TrimRight(m[1], ". "))
		remainder = m[2]
	}

	parts := splitOnPeriods(remainder)
	if len(parts) >= 1 {
		ref.Title = strings.TrimSpace(parts[0])
	}
	if len(parts) >= 2 {
		ref.Venue = cleanVenue(parts[1])
	}
	return ref
}

// extractYear finds the first 4-digit year (19xx or 20xx) in the text.
func extractYear(text string) string {
	m := yearRe.FindStringSubmatch(text)
	if len(m) >= 2 {
		return m[1]
	}
	return ""
}

// initialRe matches single-letter author initials like "A." or "B." so
// they survive period-based splitting.
var initialRe = regexp.MustCompile(`\b([A-Z])\.`)

// splitOnPeriods splits a citation into segments at period boundaries,
// avoiding splits on common abbreviations (et al., e.g., i.e.) and
// single-letter initials.
func splitOnPeriods(text string) []string {
	safe := strings.ReplaceAll(text, "et al.", "et al\x00")
	safe = strings.ReplaceAll(safe, "e.g.", "e\x00g\x00")
	safe = strings.ReplaceAll(safe, "i.e.", "i\x00e\x00")
	safe = initialRe.ReplaceAllString(safe, "${1}\x00")

	parts := strings.Split(safe, ". ")

	var result []string
	for _, p := range parts {
		p = strings.ReplaceAll(p, "et al\x00", "et al.")
		p = strings.ReplaceAll(p, "e\x00g\x00", "e.g.")
		p = strings.ReplaceAll(p, "i\x00e\x00", "i.e.")
		p = strings.ReplaceAll(p, "\x00", ".")
		p = strings.TrimRight(p, ".")
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// parseAuthors splits an author block like "Smith, A. and Jones, B." into
// individual author names.
func parseAuthors(authorStr string) []string {
	authorStr = strings.TrimSpace(authorStr)
	if authorStr == "" {
		return nil
	}

	var authors []string
	for _, half := range strings.Split(authorStr, " and ") {
		half = strings.TrimSpace(strings.TrimSuffix(half, ","))
		if half == "" {
			continue
		}
		authors = append(authors, half)
	}
	return authors
}

// cleanVenue extracts the venue from a citation segment, removing the year
// and trailing punctuation.
func cleanVenue(text string) string {
	text = strings.TrimSpace(text)
	text = yearRe.ReplaceAllString(text, "")
	text = strings.TrimRight(text, "., ()")
	return strings.TrimSpace(text)
}
