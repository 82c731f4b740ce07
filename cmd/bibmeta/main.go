// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bibmeta CLI, a thin veneer over
// the library: identifier discovery, citation parsing, metadata and BibTeX
// lookups, and PDF cover-page tearing.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bibmeta/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds contact addresses and keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the bibmeta CLI.
var rootCmd = &cobra.Command{
	Use:   "bibmeta",
	Short: "Extract identifiers and citation metadata from scientific papers",
	Long: `bibmeta finds DOI, arXiv, ISBN, and ISSN identifiers in papers
(PDF/DjVu), parses LaTeX .bbl bibliographies into reference lists, and
fetches metadata and BibTeX records from the public registries (CrossRef,
arXiv, Open Library).

Text extraction shells out to pdftotext, djvutxt, and OpenDeTeX when they
are installed, with a built-in PDF reader as fallback.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bibmeta.yaml or ~/.config/bibmeta/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bibmeta")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bibmeta"))
		}
	}

	viper.SetEnvPrefix("BIBMETA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
