// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paper

import (
	"path/filepath"
	"testing"

	"github.com/pdiddy/bibmeta/internal/bibtex"
)

func TestTearNeeded(t *testing.T) {
	tests := []struct {
		name      string
		publisher string
		want      bool
	}{
		{"IOP exact", "IOP", true},
		{"IOP in full name", "IOP Publishing Ltd", true},
		{"case insensitive", "iop publishing", true},
		{"other publisher", "Springer", false},
		{"no publisher field", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := bibtex.Entry{Fields: map[string]string{}}
			if tt.publisher != "" {
				e.Fields["publisher"] = tt.publisher
			}
			if got := TearNeeded(e); got != tt.want {
				t.Errorf("TearNeeded(publisher=%q) = %v, want %v", tt.publisher, got, tt.want)
			}
		})
	}
}

func TestTearPageMissingFile(t *testing.T) {
	err := TearPage(filepath.Join(t.TempDir(), "absent.pdf"))
	if err == nil {
		t.Error("TearPage succeeded on a missing file")
	}
}

func TestTearIfNeededSkipsGoodPublishers(t *testing.T) {
	e := bibtex.Entry{Fields: map[string]string{"publisher": "Springer"}}
	torn, err := TearIfNeeded("ignored.pdf", e)
	if err != nil {
		t.Fatalf("TearIfNeeded: %v", err)
	}
	if torn {
		t.Error("TearIfNeeded modified a file it should have left alone")
	}
}
