// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Reference is one parsed bibliography entry. Field extraction is
// heuristic: fields that cannot be confidently extracted are left empty
// rather than guessed.
type Reference struct {
	// Raw is the cleaned plaintext of the entry as it appeared in the source.
	Raw string `json:"raw" yaml:"raw"`

	// Authors lists the authors in source order, if they could be split out.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Title is the entry title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Venue is the journal or proceedings name.
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`

	// Year is the 4-digit publication year as a string ("" when unknown).
	Year string `json:"year,omitempty" yaml:"year,omitempty"`

	// Identifiers holds any validated identifiers found inside the entry.
	Identifiers []Identifier `json:"identifiers,omitempty" yaml:"identifiers,omitempty"`
}

// DOI returns the first DOI among the reference's identifiers, or "".
func (r Reference) DOI() string {
	for _, id := range r.Identifiers {
		if id.Kind == KindDOI {
			return id.Canonical
		}
	}
	return ""
}

// ArxivID returns the first arXiv ID among the reference's identifiers, or "".
func (r Reference) ArxivID() string {
	for _, id := range r.Identifiers {
		if id.Kind == KindArxiv {
			return id.Canonical
		}
	}
	return ""
}

// ExtractionResult is the output of one text-extraction adapter run.
// It is transient: produced and consumed within a single orchestration call.
type ExtractionResult struct {
	// Text is the captured standard output of the extraction tool.
	Text string `json:"text" yaml:"text"`

	// Tool names the adapter that produced the text
	// (e.g. "pdftotext", "djvutxt", "pdf-native").
	Tool string `json:"tool" yaml:"tool"`

	// ExitCode is the tool's exit status (0 for the native adapter).
	ExitCode int `json:"exit_code" yaml:"exit_code"`
}
