// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bibmeta/internal/ident"
	"github.com/pdiddy/bibmeta/internal/secrets"
	"github.com/pdiddy/bibmeta/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultRate      = 1.0 // requests per second toward the registries
	defaultUserAgent = "bibmeta/0.1"
)

// lookupConfig assembles the registry lookup settings from flags, the
// config file, and .secrets/.
func lookupConfig(cmd *cobra.Command) types.LookupConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}

	mailto := viper.GetString("mailto")
	mailto = secrets.Get(loadedSecrets, "crossref-mailto", mailto)

	rps := viper.GetFloat64("requests_per_second")
	if rps == 0 {
		rps = defaultRate
	}

	return types.LookupConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		Mailto:            mailto,
		RequestsPerSecond: rps,
	}
}

// extractConfig assembles the text-extraction settings from flags.
func extractConfig(cmd *cobra.Command) types.ExtractConfig {
	native, _ := cmd.Flags().GetBool("native")
	maxPages, _ := cmd.Flags().GetInt("max-pages")
	return types.ExtractConfig{PreferNative: native, MaxPages: maxPages}
}

// classify turns a raw identifier argument into a validated Identifier by
// trying each kind in priority order.
func classify(raw string) (types.Identifier, error) {
	for _, kind := range types.Kinds {
		if canonical, err := ident.Normalize(kind, raw); err == nil {
			return types.Identifier{Kind: kind, Raw: raw, Canonical: canonical}, nil
		}
	}
	return types.Identifier{}, fmt.Errorf("unrecognized identifier format: %q", raw)
}
