// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// cfgFile overrides the default faktor.toml lookup.
	cfgFile string
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "faktor",
		Short: "Structured-matrix factorizations and solves",
		Long: `faktor factors matrices read from plain text files and answers
determinant and linear-system queries with them.

Matrix files hold one row per line, entries separated by whitespace;
blank lines and lines starting with '#' are skipped.

Examples:
  faktor backend                 Report the active compute backend
  faktor det a.txt               Determinant of the matrix in a.txt
  faktor solve a.txt b.txt       Solve A*X = B`,
	}
)

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./faktor.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(backendCmd)
	rootCmd.AddCommand(detCmd)
	rootCmd.AddCommand(solveCmd)
}

func initLogging() {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}
