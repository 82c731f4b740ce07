// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bibmeta/internal/registry"
)

var metaCmd = &cobra.Command{
	Use:   "meta <identifier>",
	Short: "Fetch bibliographic metadata for an identifier",
	Long: `Meta looks up an identifier in its registry -- CrossRef for DOIs,
the arXiv API for arXiv IDs, Open Library for ISBNs -- and prints the
record as YAML.`,
	Args: cobra.ExactArgs(1),
	RunE: runMeta,
}

var bibtexCmd = &cobra.Command{
	Use:   "bibtex <identifier>",
	Short: "Fetch a BibTeX entry for an identifier",
	Long: `Bibtex fetches a BibTeX record: DOIs through doi.org content
negotiation, arXiv IDs synthesized from API metadata, ISBNs from their
Open Library record.`,
	Args: cobra.ExactArgs(1),
	RunE: runBibtex,
}

var oaCmd = &cobra.Command{
	Use:   "oa <doi>",
	Short: "Find an open-access PDF for a DOI",
	Long:  `Oa queries OpenAlex for an open-access location of the given DOI.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runOA,
}

func init() {
	for _, c := range []*cobra.Command{metaCmd, bibtexCmd, oaCmd} {
		c.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
		rootCmd.AddCommand(c)
	}
}

func runMeta(cmd *cobra.Command, args []string) error {
	id, err := classify(args[0])
	if err != nil {
		return err
	}

	reg := registry.New(lookupConfig(cmd))
	ref, err := reg.Metadata(cmd.Context(), id)
	if errors.Is(err, registry.ErrNotFound) {
		return fmt.Errorf("%s %s: not found in its registry (may be unregistered or the registry unreachable)", id.Kind, id.Canonical)
	}
	if err != nil {
		return err
	}
	return yaml.NewEncoder(os.Stdout).Encode(ref)
}

func runBibtex(cmd *cobra.Command, args []string) error {
	id, err := classify(args[0])
	if err != nil {
		return err
	}

	reg := registry.New(lookupConfig(cmd))
	entry, err := reg.BibTeX(cmd.Context(), id)
	if errors.Is(err, registry.ErrNotFound) {
		return fmt.Errorf("%s %s: not found in its registry", id.Kind, id.Canonical)
	}
	if err != nil {
		return err
	}
	fmt.Println(entry)
	return nil
}

func runOA(cmd *cobra.Command, args []string) error {
	id, err := classify(args[0])
	if err != nil {
		return err
	}

	reg := registry.New(lookupConfig(cmd))
	url, err := reg.OAVersion(cmd.Context(), id.Canonical)
	if err != nil {
		return err
	}
	if url == "" {
		return fmt.Errorf("no open-access PDF known for %s", id.Canonical)
	}
	fmt.Println(url)
	return nil
}
