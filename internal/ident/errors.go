// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ident

import (
	"fmt"

	"github.com/pdiddy/bibmeta/pkg/types"
)

// ValidationError reports a candidate that failed its kind's format grammar
// or checksum.
type ValidationError struct {
	Kind   types.Kind
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Input, e.Reason)
}

func invalid(kind types.Kind, input, reason string) *ValidationError {
	return &ValidationError{Kind: kind, Input: input, Reason: reason}
}
