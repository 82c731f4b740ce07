// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textextract

import "fmt"

// ExtractionError reports a failed text-extraction run: the external tool
// was missing, crashed, or exited non-zero.
type ExtractionError struct {
	// Tool is the program that failed (e.g. "pdftotext").
	Tool string

	// Path is the input file, empty for stdin-fed tools.
	Path string

	// Stderr holds the tool's captured standard error, trimmed.
	Stderr string

	// Err is the underlying exec error.
	Err error
}

func (e *ExtractionError) Error() string {
	msg := fmt.Sprintf("%s failed", e.Tool)
	if e.Path != "" {
		msg += " on " + e.Path
	}
	msg += ": " + e.Err.Error()
	if e.Stderr != "" {
		msg += " (" + e.Stderr + ")"
	}
	return msg
}

func (e *ExtractionError) Unwrap() error { return e.Err }
