// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bibmeta/internal/paper"
	"github.com/pdiddy/bibmeta/internal/registry"
	"github.com/pdiddy/bibmeta/pkg/types"
)

var citationsCmd = &cobra.Command{
	Use:   "citations <file.bbl>",
	Short: "Parse a .bbl bibliography into reference records",
	Long: `Citations splits a LaTeX .bbl file into one record per \bibitem,
strips markup (through OpenDeTeX when installed), extracts author/title/
year heuristically, and lists any identifiers found inside each entry.
With --resolve, references carrying only an arXiv ID also get the DOI
arXiv records for them.`,
	Args: cobra.ExactArgs(1),
	RunE: runCitations,
}

var arxivCitationsCmd = &cobra.Command{
	Use:   "arxiv-citations <arxiv-id>",
	Short: "List the references cited by an arXiv preprint",
	Long: `Arxiv-citations downloads the e-print source of a preprint,
extracts its .bbl bibliography files, and parses them into reference
records.`,
	Args: cobra.ExactArgs(1),
	RunE: runArxivCitations,
}

func init() {
	citationsCmd.Flags().Bool("resolve", false, "resolve arXiv-only references to DOIs")
	citationsCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	arxivCitationsCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(citationsCmd)
	rootCmd.AddCommand(arxivCitationsCmd)
}

func runCitations(cmd *cobra.Command, args []string) error {
	finder := paper.NewFinder(extractConfig(cmd))
	finder.W = os.Stderr
	if resolve, _ := cmd.Flags().GetBool("resolve"); resolve {
		finder.Resolver = registry.New(lookupConfig(cmd))
	}

	refs, err := finder.CitedReferences(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return yaml.NewEncoder(os.Stdout).Encode(refs)
}

func runArxivCitations(cmd *cobra.Command, args []string) error {
	id, err := classify(args[0])
	if err != nil {
		return err
	}
	if id.Kind != types.KindArxiv {
		return fmt.Errorf("%q is a %s, not an arXiv ID", args[0], id.Kind)
	}

	finder := paper.NewFinder(extractConfig(cmd))
	finder.W = os.Stderr
	finder.Resolver = registry.New(lookupConfig(cmd))

	refs, err := finder.ArxivCitations(cmd.Context(), id.Canonical)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		fmt.Fprintln(os.Stderr, "no bibliography found in the e-print source")
		return nil
	}
	return yaml.NewEncoder(os.Stdout).Encode(refs)
}
