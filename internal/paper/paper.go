// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paper orchestrates the stages: pick a text-extraction adapter
// for a file, run the identifier recognizers and validators over its text,
// and assemble the results. Adapter failures abort the call; per-candidate
// validation failures are collected and reported alongside the successes,
// since a paper may legitimately contain zero or many identifiers.
package paper

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/bibmeta/internal/ident"
	"github.com/pdiddy/bibmeta/internal/registry"
	"github.com/pdiddy/bibmeta/internal/textextract"
	"github.com/pdiddy/bibmeta/pkg/types"
)

// Finder runs identifier discovery over local files. Resolver is optional;
// when set, validated identifiers are additionally confirmed against their
// registries.
type Finder struct {
	Runner   *textextract.Runner
	Resolver registry.Resolver

	// W receives progress and per-item warnings; nil discards them.
	W io.Writer
}

// NewFinder creates a Finder with the given extraction settings and no
// registry confirmation.
func NewFinder(cfg types.ExtractConfig) *Finder {
	return &Finder{Runner: textextract.NewRunner(cfg), W: io.Discard}
}

// Invalid records one candidate that failed validation.
type Invalid struct {
	Kind types.Kind
	Raw  string
	Err  error
}

// Report is the outcome of one identifier-discovery call.
type Report struct {
	// File is the scanned file.
	File string

	// Tool names the extraction adapter that produced the text.
	Tool string

	// Identifiers holds the validated identifiers in kind-priority order.
	Identifiers []types.Identifier

	// Unconfirmed lists identifiers the registry could not confirm.
	// They are still present in Identifiers: "not found" is ambiguous,
	// not a hard negative.
	Unconfirmed []types.Identifier

	// Invalid lists candidates that failed format or checksum validation.
	Invalid []Invalid
}

// Best returns the highest-priority identifier of the report, which is the
// one most likely to identify the paper itself rather than a reference.
func (r Report) Best() (types.Identifier, bool) {
	if len(r.Identifiers) == 0 {
		return types.Identifier{}, false
	}
	return r.Identifiers[0], true
}

// FindIdentifiers extracts text from the file at path and reports every
// identifier found in it. The extraction adapter is chosen by extension;
// its failure aborts the call. Validation failures do not.
func (f *Finder) FindIdentifiers(ctx context.Context, path string) (Report, error) {
	res, err := f.Runner.TextFromFile(ctx, path)
	if err != nil {
		return Report{}, fmt.Errorf("extracting text from %s: %w", path, err)
	}
	report := f.scan(ctx, res.Text)
	report.File = path
	report.Tool = res.Tool
	return report, nil
}

// FindInText runs the recognizers and validators over already-extracted text.
func (f *Finder) FindInText(ctx context.Context, text string) Report {
	return f.scan(ctx, text)
}

func (f *Finder) scan(ctx context.Context, text string) Report {
	var report Report
	seen := map[types.Identifier]bool{}

	for _, c := range ident.Extract(text) {
		id, err := ident.Validate(c)
		if err != nil {
			report.Invalid = append(report.Invalid, Invalid{Kind: c.Kind, Raw: c.Raw, Err: err})
			continue
		}
		key := types.Identifier{Kind: id.Kind, Canonical: id.Canonical}
		if seen[key] {
			continue
		}
		seen[key] = true

		if f.Resolver != nil {
			switch err := f.Resolver.Confirm(ctx, id.Kind, id.Canonical); {
			case err == nil:
			case errors.Is(err, registry.ErrNotFound):
				report.Unconfirmed = append(report.Unconfirmed, id)
			default:
				// Transport failure: cannot confirm either way.
				report.Unconfirmed = append(report.Unconfirmed, id)
				f.warnf("confirming %s %s: %v\n", id.Kind, id.Canonical, err)
			}
		}
		report.Identifiers = append(report.Identifiers, id)
	}

	sortByKindPriority(report.Identifiers)
	return report
}

func (f *Finder) warnf(format string, args ...any) {
	if f.W != nil {
		fmt.Fprintf(f.W, format, args...)
	}
}

// sortByKindPriority orders identifiers by the kind priority in
// types.Kinds, keeping source order within a kind (stable insertion sort).
func sortByKindPriority(ids []types.Identifier) {
	rank := func(k types.Kind) int {
		for i, kind := range types.Kinds {
			if k == kind {
				return i
			}
		}
		return len(types.Kinds)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && rank(ids[j].Kind) < rank(ids[j-1].Kind); j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}
