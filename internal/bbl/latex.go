// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bbl

import (
	"regexp"
	"strings"
)

// Fallback LaTeX stripping for when OpenDeTeX is not installed. It keeps
// the argument of text-level macros, drops structural macros entirely, and
// unescapes the common special characters.
var (
	// commentRe matches a LaTeX comment; the leading group keeps the
	// preceding character so escaped \% survives.
	commentRe = regexp.MustCompile(`(?m)(^|[^\\])%.*$`)

	// keepArgRe matches macros whose argument is running text worth keeping.
	// url, doi and eprint stay here: natbib-style entries carry their
	// identifier inside those arguments.
	keepArgRe = regexp.MustCompile(`\\(?:emph|textit|textbf|textsc|texttt|mbox|text|em|it|bf|url|doi|eprint)\{([^{}]*)\}`)

	// hrefRe keeps both the link target and the link text.
	hrefRe = regexp.MustCompile(`\\href\{([^{}]*)\}\{([^{}]*)\}`)

	// dropArgRe matches macros whose argument is markup, not prose.
	dropArgRe = regexp.MustCompile(`\\(?:label|cite)\{[^{}]*\}`)

	// bareMacroRe matches any remaining \macro, with or without a star.
	bareMacroRe = regexp.MustCompile(`\\[A-Za-z@]+\*?`)
)

// stripLatex removes LaTeX markup from a bibliography fragment. The result
// can still be rough around math and exotic accents; the downstream field
// heuristics tolerate that.
func stripLatex(s string) string {
	s = commentRe.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, "~", " ")
	s = strings.ReplaceAll(s, "\\&", "&")
	s = strings.ReplaceAll(s, "\\%", "%")
	s = strings.ReplaceAll(s, "\\_", "_")
	s = strings.ReplaceAll(s, "\\$", "$")
	s = strings.ReplaceAll(s, "``", `"`)
	s = strings.ReplaceAll(s, "''", `"`)
	s = strings.ReplaceAll(s, "--", "-")

	s = hrefRe.ReplaceAllString(s, "$1 $2")

	// Run the argument-keeping pass a few times for shallow nesting
	// like \emph{\textbf{...}}.
	for range 3 {
		next := keepArgRe.ReplaceAllString(s, "$1")
		if next == s {
			break
		}
		s = next
	}
	s = dropArgRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\\newblock", " ")
	s = bareMacroRe.ReplaceAllString(s, "")
	s = strings.NewReplacer("{", "", "}", "", "$", "").Replace(s)
	return s
}
