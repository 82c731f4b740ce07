// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paper

import (
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pdiddy/bibmeta/internal/bibtex"
)

// badPublishers lists publishers that prepend a cover page to downloaded
// PDFs. Matching is substring, case-insensitive, against the BibTeX
// publisher field.
var badPublishers = []string{
	"IOP",
}

// TearNeeded reports whether a paper's first page should be torn off,
// judged by the publisher recorded in its BibTeX entry.
func TearNeeded(entry bibtex.Entry) bool {
	publisher := strings.ToLower(entry.Fields["publisher"])
	for _, bad := range badPublishers {
		if strings.Contains(publisher, strings.ToLower(bad)) {
			return true
		}
	}
	return false
}

// TearPage removes the first page of the PDF at path, in place. It
// refuses to tear a single-page document.
func TearPage(path string) error {
	pages, err := api.PageCountFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if pages <= 1 {
		return fmt.Errorf("%s has %d page(s), refusing to tear", path, pages)
	}
	if err := api.RemovePagesFile(path, "", []string{"1"}, nil); err != nil {
		return fmt.Errorf("removing first page of %s: %w", path, err)
	}
	return nil
}

// TearIfNeeded tears the first page of the PDF when the BibTeX entry's
// publisher is known to add one. It reports whether the file was modified.
func TearIfNeeded(path string, entry bibtex.Entry) (bool, error) {
	if !TearNeeded(entry) {
		return false, nil
	}
	if err := TearPage(path); err != nil {
		return false, err
	}
	return true, nil
}
