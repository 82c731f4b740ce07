// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"strings"
	"testing"

	"github.com/pdiddy/bibmeta/pkg/types"
)

func TestEntryString(t *testing.T) {
	e := Entry{
		Type: "article",
		Key:  "smith2017",
		Fields: map[string]string{
			"title":  "Attention is all you need",
			"author": "Smith, A. and Jones, B.",
			"year":   "2017",
		},
	}
	got := e.String()
	want := "@article{smith2017,\n" +
		"\tauthor = {Smith, A. and Jones, B.},\n" +
		"\ttitle = {Attention is all you need},\n" +
		"\tyear = {2017},\n" +
		"}\n"
	if got != want {
		t.Errorf("String() = %q, want %q (fields must be sorted)", got, want)
	}
}

func TestFromReference(t *testing.T) {
	ref := types.Reference{
		Authors: []string{"Smith, A.", "Jones, B."},
		Title:   "Deep learning for document analysis",
		Venue:   "Pattern Recognition",
		Year:    "2015",
		Identifiers: []types.Identifier{
			{Kind: types.KindDOI, Raw: "10.1007/s10032-015-0249-8", Canonical: "10.1007/s10032-015-0249-8"},
		},
	}
	e := FromReference(ref, "smith2015")

	if e.Type != "article" {
		t.Errorf("Type = %q, want article (venue present)", e.Type)
	}
	if e.Key != "smith2015" {
		t.Errorf("Key = %q", e.Key)
	}
	wantFields := map[string]string{
		"author":  "Smith, A. and Jones, B.",
		"title":   "Deep learning for document analysis",
		"journal": "Pattern Recognition",
		"year":    "2015",
		"doi":     "10.1007/s10032-015-0249-8",
		"url":     "https://doi.org/10.1007/s10032-015-0249-8",
	}
	for name, want := range wantFields {
		if got := e.Fields[name]; got != want {
			t.Errorf("Fields[%q] = %q, want %q", name, got, want)
		}
	}
}

func TestFromReferenceArxivMisc(t *testing.T) {
	ref := types.Reference{
		Title: "A survey of identifier extraction",
		Identifiers: []types.Identifier{
			{Kind: types.KindArxiv, Raw: "arXiv:1501.04250", Canonical: "1501.04250"},
		},
	}
	e := FromReference(ref, "survey")

	if e.Type != "misc" {
		t.Errorf("Type = %q, want misc (no venue)", e.Type)
	}
	if e.Fields["eprint"] != "1501.04250" || e.Fields["archiveprefix"] != "arXiv" {
		t.Errorf("eprint fields = %q/%q", e.Fields["eprint"], e.Fields["archiveprefix"])
	}
	if _, ok := e.Fields["author"]; ok {
		t.Error("author field present, want omitted when unknown")
	}
}

func TestFromReferenceISBN(t *testing.T) {
	ref := types.Reference{
		Title: "Some Book",
		Identifiers: []types.Identifier{
			{Kind: types.KindISBN, Raw: "978-0-306-40615-7", Canonical: "9780306406157"},
		},
	}
	e := FromReference(ref, "book")
	if e.Fields["isbn"] != "9780306406157" {
		t.Errorf("isbn = %q, want the canonical form", e.Fields["isbn"])
	}
}

func TestDefaultKey(t *testing.T) {
	tests := []struct {
		name string
		ref  types.Reference
		want string
	}{
		{
			"family-comma author",
			types.Reference{Authors: []string{"Smith, A."}, Year: "2017"},
			"Smith_2017",
		},
		{
			"given family author",
			types.Reference{Authors: []string{"Alice Smith"}, Year: "2020"},
			"Smith_2020",
		},
		{
			"title fallback",
			types.Reference{Title: "Deep learning for document analysis"},
			"Deep_learning_for",
		},
		{
			"arxiv fallback",
			types.Reference{Identifiers: []types.Identifier{
				{Kind: types.KindArxiv, Canonical: "1501.04250"},
			}},
			"arxiv_1501.04250",
		},
		{
			"nothing known",
			types.Reference{},
			"unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultKey(tt.ref); got != tt.want {
				t.Errorf("DefaultKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntryStringParseRoundTrip(t *testing.T) {
	e := FromReference(types.Reference{
		Authors: []string{"Devlin, J."},
		Title:   "Pre-training deep bidirectional transformers",
		Venue:   "NAACL",
		Year:    "2019",
	}, "devlin2019")

	parsed, err := Parse(strings.NewReader(e.String()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("got %d entries, want 1", len(parsed))
	}
	if parsed[0].Key != "devlin2019" || parsed[0].Type != "article" {
		t.Errorf("round trip lost the head: %+v", parsed[0])
	}
	if parsed[0].Fields["title"] != e.Fields["title"] {
		t.Errorf("round trip title = %q, want %q", parsed[0].Fields["title"], e.Fields["title"])
	}
}
