// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textextract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

const toolNative = "pdf-native"

// NativePDFText extracts text from a PDF in-process, without spawning
// pdftotext. Layout fidelity is lower than pdftotext's but it needs no
// system packages. maxPages bounds the number of pages read; zero or
// negative reads them all.
func NativePDFText(path string, maxPages int) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	if maxPages <= 0 || maxPages > r.NumPage() {
		maxPages = r.NumPage()
	}

	var b strings.Builder
	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages; identifiers usually sit on the
			// pages that do decode.
			continue
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
