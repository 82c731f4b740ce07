// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"regexp"
	"strings"
)

// Filename masks: placeholders are replaced from entry fields, then the
// result is slugified.
const (
	// DefaultPaperMask names paper files by first/last author, journal,
	// year, and the arXiv version when one is recorded.
	DefaultPaperMask = "{first}_{last}-{journal}-{year}{arxiv_version}"

	// DefaultBookMask names book files by authors and title.
	DefaultBookMask = "{authors} - {title}"
)

// Filename renders a filesystem-safe filename stem for the entry
// according to the mask. Unknown or absent fields render empty.
func Filename(e Entry, mask string) string {
	authors := splitAuthors(e.Fields["author"])

	first, last := "", ""
	if len(authors) > 0 {
		first = familyName(authors[0])
		last = familyName(authors[len(authors)-1])
	}

	families := make([]string, len(authors))
	for i, a := range authors {
		families[i] = familyName(a)
	}

	arxivVersion := ""
	if eprint := e.Fields["eprint"]; eprint != "" {
		if idx := strings.LastIndexByte(eprint, 'v'); idx > 0 {
			arxivVersion = "-" + eprint[idx:]
		}
	}

	name := strings.NewReplacer(
		"{first}", first,
		"{last}", last,
		"{authors}", strings.Join(families, ", "),
		"{journal}", e.Fields["journal"],
		"{title}", e.Fields["title"],
		"{year}", e.Fields["year"],
		"{arxiv_version}", arxivVersion,
	).Replace(mask)

	return Slugify(name)
}

var nonSlugRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Slugify reduces s to a filesystem-safe stem: runs of forbidden
// characters collapse to single underscores and the ends are trimmed.
func Slugify(s string) string {
	s = nonSlugRe.ReplaceAllString(strings.TrimSpace(s), "_")
	return strings.Trim(s, "_-")
}

// splitAuthors separates a BibTeX author field on " and ".
func splitAuthors(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parts := strings.Split(field, " and ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// familyName extracts the family name from "Family, Given" or
// "Given Family" author forms.
func familyName(author string) string {
	if idx := strings.Index(author, ","); idx >= 0 {
		return strings.TrimSpace(author[:idx])
	}
	fields := strings.Fields(author)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
