// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textextract turns papers into plain text by invoking external
// extraction tools (pdftotext, djvutxt, OpenDeTeX's delatex) as
// subprocesses, with a pure-Go PDF reader as fallback. Tools are consumed
// as "plain text on stdout, non-zero exit is failure"; no retry is
// attempted here, the caller decides on a fallback adapter.
package textextract

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/bibmeta/pkg/types"
)

const (
	binPdftotext = "pdftotext"
	binDjvutxt   = "djvutxt"
	binDelatex   = "delatex"
)

// Runner invokes the external extraction tools. The zero value is not
// usable; construct with NewRunner.
type Runner struct {
	cfg  types.ExtractConfig
	exec executor
}

// NewRunner creates a Runner with the given extraction settings.
func NewRunner(cfg types.ExtractConfig) *Runner {
	return &Runner{cfg: cfg, exec: defaultExec}
}

// PDFToText extracts plain text from a PDF by running "pdftotext <file> -".
func (r *Runner) PDFToText(ctx context.Context, path string) (types.ExtractionResult, error) {
	return r.run(ctx, binPdftotext, []string{path, "-"}, nil, path)
}

// DjvuToText extracts plain text from a DjVu file by running "djvutxt <file>".
func (r *Runner) DjvuToText(ctx context.Context, path string) (types.ExtractionResult, error) {
	return r.run(ctx, binDjvutxt, []string{path}, nil, path)
}

// Detex strips LaTeX markup from the input by piping it through
// OpenDeTeX's "delatex -s". The output has its whitespace collapsed.
func (r *Runner) Detex(ctx context.Context, latex string) (string, error) {
	res, err := r.run(ctx, binDelatex, []string{"-s"}, strings.NewReader(latex), "")
	if err != nil {
		return "", err
	}
	return CleanWhitespace(res.Text), nil
}

// TextFromFile selects the adapter for path by extension and extracts
// plain text. PDFs go through pdftotext with the in-process reader as
// fallback when pdftotext is not installed (or first, when the
// configuration prefers it); DjVu files go through djvutxt. Other
// extensions are rejected.
func (r *Runner) TextFromFile(ctx context.Context, path string) (types.ExtractionResult, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		if r.cfg.PreferNative {
			return r.nativePDF(path)
		}
		if _, err := r.exec.LookPath(binPdftotext); err != nil {
			return r.nativePDF(path)
		}
		return r.PDFToText(ctx, path)
	case ".djvu":
		return r.DjvuToText(ctx, path)
	default:
		return types.ExtractionResult{}, fmt.Errorf("unsupported file type: %s", path)
	}
}

func (r *Runner) nativePDF(path string) (types.ExtractionResult, error) {
	text, err := NativePDFText(path, r.cfg.MaxPages)
	if err != nil {
		return types.ExtractionResult{}, err
	}
	return types.ExtractionResult{Text: text, Tool: toolNative}, nil
}

func (r *Runner) run(ctx context.Context, name string, args []string, stdin io.Reader, path string) (types.ExtractionResult, error) {
	if _, err := r.exec.LookPath(name); err != nil {
		return types.ExtractionResult{}, &ExtractionError{Tool: name, Path: path, Err: err}
	}
	stdout, stderr, exitCode, err := r.exec.RunCapture(ctx, name, args, stdin)
	if err != nil {
		return types.ExtractionResult{}, &ExtractionError{
			Tool:   name,
			Path:   path,
			Stderr: strings.TrimSpace(string(stderr)),
			Err:    err,
		}
	}
	return types.ExtractionResult{Text: string(stdout), Tool: name, ExitCode: exitCode}, nil
}

// CleanWhitespace collapses all runs of whitespace in text to single
// spaces and trims the ends.
func CleanWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
