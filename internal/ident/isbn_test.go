// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ident

import (
	"reflect"
	"testing"
)

func TestExtractISBNs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		// ISBN-10, with and without separators.
		{"isbn10 hyphenated", "published as ISBN 0-306-40615-2 in 1979", []string{"0306406152"}},
		{"isbn10 bare", "catalogued under 0306406152 today", []string{"0306406152"}},
		{"isbn10 check X", "ISBN: 0-9752298-0-X", []string{"097522980X"}},
		{"isbn10 spaces", "0 306 40615 2", []string{"0306406152"}},

		// ISBN-13 must carry the bookland prefix.
		{"isbn13 hyphenated", "ISBN-13: 978-0-306-40615-7", []string{"9780306406157"}},
		{"isbn13 bare", "9780306406157", []string{"9780306406157"}},
		{"isbn13 no bookland", "1234567890128 is an EAN, not an ISBN", nil},

		// Checksum failures are dropped silently during extraction.
		{"isbn10 bad check", "0-306-40615-3", nil},
		{"isbn13 bad check", "978-0-306-40615-8", nil},

		{"both forms deduped by canonical", "0306406152 and 0-306-40615-2", []string{"0306406152"}},
		{"empty text", "", nil},
		{"phone number", "call 555-123-4567 now", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractISBNs(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractISBNs(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalizeISBN(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"isbn10 canonical", "0306406152", "0306406152", false},
		{"isbn10 hyphenated", "0-306-40615-2", "0306406152", false},
		{"isbn10 lowercase x", "0-9752298-0-x", "097522980X", false},
		{"isbn13 canonical", "9780306406157", "9780306406157", false},
		{"isbn13 hyphenated", "978-0-306-40615-7", "9780306406157", false},
		{"isbn13 spaced", "978 0 306 40615 7", "9780306406157", false},

		{"isbn10 bad check digit", "0306406153", "", true},
		{"isbn13 bad check digit", "9780306406158", "", true},
		{"isbn13 no bookland", "1234567890128", "", true},
		{"nine digits", "030640615", "", true},
		{"twelve digits", "978030640615", "", true},
		{"X not last", "03064X6152", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeISBN(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("normalizeISBN(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("normalizeISBN(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIsValidISBN(t *testing.T) {
	valid := []string{"0306406152", "0-306-40615-2", "097522980X", "9780306406157", "978-0-306-40615-7"}
	for _, isbn := range valid {
		if !IsValidISBN(isbn) {
			t.Errorf("IsValidISBN(%q) = false, want true", isbn)
		}
	}
	invalid := []string{"", "0306406153", "9780306406158", "1234567890128", "030640615"}
	for _, isbn := range invalid {
		if IsValidISBN(isbn) {
			t.Errorf("IsValidISBN(%q) = true, want false", isbn)
		}
	}
}
