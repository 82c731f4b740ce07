// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "bibmeta/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// LookupConfig holds settings for registry lookups (CrossRef, arXiv,
// Open Library).
type LookupConfig struct {
	HTTPConfig `yaml:",inline"`

	// Mailto is an optional contact address appended to CrossRef and
	// OpenAlex requests for their polite pools.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty"`

	// RequestsPerSecond caps the outbound request rate to the registries.
	// Zero disables client-side rate limiting.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}

// ExtractConfig holds settings for text extraction from local files.
type ExtractConfig struct {
	// PreferNative extracts PDF text in-process instead of invoking
	// pdftotext, even when pdftotext is installed.
	PreferNative bool `json:"prefer_native" yaml:"prefer_native"`

	// MaxPages bounds how many pages the native PDF adapter reads.
	// Zero means all pages.
	MaxPages int `json:"max_pages" yaml:"max_pages"`
}
