// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bibmeta/internal/bibtex"
	"github.com/pdiddy/bibmeta/internal/paper"
)

var tearCmd = &cobra.Command{
	Use:   "tear <file.pdf>",
	Short: "Remove a publisher cover page from a PDF",
	Long: `Tear removes the first page of a PDF in place. Some publishers
prepend a cover page to downloaded papers; with --bib and --key the page
is only torn when the entry's publisher is known to do that.`,
	Args: cobra.ExactArgs(1),
	RunE: runTear,
}

func init() {
	tearCmd.Flags().String("bib", "", "BibTeX file holding the paper's entry")
	tearCmd.Flags().String("key", "", "citation key of the paper in the BibTeX file")

	rootCmd.AddCommand(tearCmd)
}

func runTear(cmd *cobra.Command, args []string) error {
	path := args[0]
	bibPath, _ := cmd.Flags().GetString("bib")
	key, _ := cmd.Flags().GetString("key")

	if bibPath == "" {
		if err := paper.TearPage(path); err != nil {
			return err
		}
		fmt.Printf("torn: %s\n", path)
		return nil
	}

	entry, ok, err := bibtex.Get(bibPath, key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no entry %q in %s", key, bibPath)
	}

	torn, err := paper.TearIfNeeded(path, entry)
	if err != nil {
		return err
	}
	if torn {
		fmt.Printf("torn: %s\n", path)
	} else {
		fmt.Printf("kept: %s (publisher not known to add cover pages)\n", path)
	}
	return nil
}
