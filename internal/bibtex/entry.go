// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibtex reads, writes, and edits BibTeX entries and files. The
// parser is line-oriented and tolerant: it indexes entries by citation key
// and captures simple "field = {value}" pairs, which is what the rest of
// the library needs. It is not a full BibTeX grammar.
package bibtex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/bibmeta/pkg/types"
)

// Entry is one BibTeX record.
type Entry struct {
	// Type is the entry type without the "@" (article, book, misc...).
	Type string

	// Key is the citation key.
	Key string

	// Fields maps lower-cased field names to their values, braces removed.
	Fields map[string]string
}

// String renders the entry as BibTeX with fields in sorted order.
func (e Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", e.Type, e.Key)

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(&b, "\t%s = {%s},\n", name, e.Fields[name])
	}
	b.WriteString("}\n")
	return b.String()
}

// FromReference builds a BibTeX entry from a parsed reference. Empty
// fields are omitted; the entry type is article when a venue is known and
// misc otherwise.
func FromReference(ref types.Reference, key string) Entry {
	e := Entry{Type: "misc", Key: key, Fields: map[string]string{}}
	if ref.Venue != "" {
		e.Type = "article"
		e.Fields["journal"] = ref.Venue
	}
	if len(ref.Authors) > 0 {
		e.Fields["author"] = strings.Join(ref.Authors, " and ")
	}
	if ref.Title != "" {
		e.Fields["title"] = ref.Title
	}
	if ref.Year != "" {
		e.Fields["year"] = ref.Year
	}
	if doi := ref.DOI(); doi != "" {
		e.Fields["doi"] = doi
		e.Fields["url"] = "https://doi.org/" + doi
	}
	if arxivID := ref.ArxivID(); arxivID != "" {
		e.Fields["eprint"] = arxivID
		e.Fields["archiveprefix"] = "arXiv"
	}
	for _, id := range ref.Identifiers {
		if id.Kind == types.KindISBN {
			e.Fields["isbn"] = id.Canonical
		}
	}
	return e
}

// DefaultKey derives a citation key for a reference: the first author's
// family name and the year when available, else a slug of the title.
func DefaultKey(ref types.Reference) string {
	if len(ref.Authors) > 0 {
		name := ref.Authors[0]
		if idx := strings.Index(name, ","); idx > 0 {
			name = name[:idx]
		} else if fields := strings.Fields(name); len(fields) > 0 {
			name = fields[len(fields)-1]
		}
		return Slugify(name + "_" + ref.Year)
	}
	if ref.Title != "" {
		words := strings.Fields(ref.Title)
		if len(words) > 3 {
			words = words[:3]
		}
		return Slugify(strings.Join(words, "_"))
	}
	if arxivID := ref.ArxivID(); arxivID != "" {
		return Slugify("arxiv_" + arxivID)
	}
	return "unknown"
}
