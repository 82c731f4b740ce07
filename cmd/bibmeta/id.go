// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bibmeta/internal/paper"
	"github.com/pdiddy/bibmeta/internal/registry"
)

var idCmd = &cobra.Command{
	Use:   "id [files...]",
	Short: "Find identifiers (DOI, arXiv, ISBN, ISSN) in papers",
	Long: `Id extracts text from each file (PDF via pdftotext or the built-in
reader, DjVu via djvutxt) and reports every valid identifier found in it,
most relevant kind first. With --confirm, each identifier is additionally
checked against its registry.`,
	RunE: runID,
}

func init() {
	idCmd.Flags().Bool("confirm", false, "confirm identifiers against the registries")
	idCmd.Flags().Bool("native", false, "use the built-in PDF reader instead of pdftotext")
	idCmd.Flags().Int("max-pages", 0, "pages read by the built-in PDF reader (0 = all)")
	idCmd.Flags().Bool("all", false, "print all identifiers instead of the best one")
	idCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(idCmd)
}

func runID(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more PDF or DjVu files")
	}

	finder := paper.NewFinder(extractConfig(cmd))
	finder.W = os.Stderr
	if confirm, _ := cmd.Flags().GetBool("confirm"); confirm {
		finder.Resolver = registry.New(lookupConfig(cmd))
	}
	printAll, _ := cmd.Flags().GetBool("all")

	failures := 0
	for _, path := range args {
		report, err := finder.FindIdentifiers(cmd.Context(), path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed:  %s (%v)\n", path, err)
			failures++
			continue
		}

		if printAll {
			for _, id := range report.Identifiers {
				fmt.Printf("%s\t%s\t%s\n", path, id.Kind, id.Canonical)
			}
			continue
		}
		if best, ok := report.Best(); ok {
			fmt.Printf("%s\t%s\t%s\n", path, best.Kind, best.Canonical)
		} else {
			fmt.Printf("%s\t-\t-\n", path)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d file(s) failed", failures)
	}
	return nil
}
